package layout

import (
	"math"
	"strconv"
	"strings"
)

const mmPerInch = 25.4

// InchesToMm converts a CSS-like length in inches to millimeters.
// Unit suffixes and any other noise characters are stripped, so "1in",
// ".5in" and plain numbers are all accepted. Malformed input degrades
// to 0 rather than erroring. The minus sign is stripped along with the
// rest of the noise, so negative lengths are read as positive
// magnitudes; callers rely on this.
func InchesToMm(raw string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, raw)

	inches, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}

	return math.Round(inches*mmPerInch*100) / 100
}
