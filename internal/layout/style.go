package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedStyle indicates a style declaration without a ':' separator.
var ErrMalformedStyle = errors.New("malformed style declaration")

// StyleValue extracts the value of a named property from a semicolon
// delimited list of "key: value" declarations, as found in the style
// attribute of a layout region.
//
// Every declaration whose key matches name contributes its trimmed value
// to the result by concatenation. With a single match this returns the
// trimmed value; repeated declarations of the same property concatenate
// with no separator. Callers depend on that exact fold.
//
// Optional mutators post-process the extracted string in order.
// A declaration lacking ':' is a hard error, not skipped.
func StyleValue(name, style string, mutators ...func(string) string) (string, error) {
	var result string

	for _, decl := range strings.Split(style, ";") {
		if strings.TrimSpace(decl) == "" {
			continue
		}

		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			return "", fmt.Errorf("%w: %q", ErrMalformedStyle, strings.TrimSpace(decl))
		}

		if strings.TrimSpace(key) == strings.TrimSpace(name) {
			result += strings.TrimSpace(value)
		}
	}

	for _, fn := range mutators {
		result = fn(result)
	}

	return result, nil
}
