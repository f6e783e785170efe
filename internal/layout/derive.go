package layout

import (
	"strconv"
	"strings"
)

// minEdgeMarginMm is the smallest top or bottom margin (in millimeters)
// allowed when a header or footer occupies that edge. Without the floor
// the band would overlap body text.
const minEdgeMarginMm = 5

// Deriver converts a page Descriptor into the physical RenderConfig.
//
// CorrectBottomMargin changes which page property feeds the bottom margin.
// Historically the bottom margin was computed from the page's margin-top
// declaration; that reading is preserved as the default so existing
// layouts keep their geometry. Set CorrectBottomMargin to read
// margin-bottom instead.
type Deriver struct {
	CorrectBottomMargin bool
}

// Derive computes the full renderer configuration from a parsed layout
// descriptor. A nil descriptor means no custom layout: only the
// structural defaults are returned.
func (d *Deriver) Derive(desc *Descriptor) (RenderConfig, error) {
	cfg := DefaultConfig()
	if desc == nil {
		return cfg, nil
	}

	hasHeader := desc.Header.present()
	hasFooter := desc.Footer.present()

	headerSpacing := 0.0
	if hasHeader {
		v, err := StyleValue(KeyMarginBottom, desc.Header.style())
		if err != nil {
			return nil, err
		}
		headerSpacing = InchesToMm(v)
	}

	footerSpacing := 0.0
	if hasFooter {
		v, err := StyleValue(KeyMarginTop, desc.Footer.style())
		if err != nil {
			return nil, err
		}
		footerSpacing = InchesToMm(v)
	}

	pageTop, err := StyleValue(KeyMarginTop, desc.Style)
	if err != nil {
		return nil, err
	}
	marginTop := max(floorFor(hasHeader), InchesToMm(pageTop)) + headerSpacing

	// The bottom margin reads the page's margin-top declaration unless
	// the corrected mode is on. See Deriver.
	bottomProperty := KeyMarginTop
	if d.CorrectBottomMargin {
		bottomProperty = KeyMarginBottom
	}
	pageBottom, err := StyleValue(bottomProperty, desc.Style)
	if err != nil {
		return nil, err
	}
	marginBottom := max(floorFor(hasFooter), InchesToMm(pageBottom)) + footerSpacing

	marginLeft, err := StyleValue(KeyMarginLeft, desc.Style)
	if err != nil {
		return nil, err
	}
	marginRight, err := StyleValue(KeyMarginRight, desc.Style)
	if err != nil {
		return nil, err
	}

	cfg[KeyMarginTop] = marginTop
	cfg[KeyMarginBottom] = marginBottom
	cfg[KeyMarginLeft] = InchesToMm(marginLeft)
	cfg[KeyMarginRight] = InchesToMm(marginRight)
	cfg[KeyHeaderSpacing] = headerSpacing
	cfg[KeyFooterSpacing] = footerSpacing

	if desc.Header != nil {
		cfg[KeyHeaderLeft] = desc.Header.Left
		cfg[KeyHeaderCenter] = desc.Header.Center
		cfg[KeyHeaderRight] = desc.Header.Right
		if err := deriveFont(cfg, desc.Header.style(), KeyHeaderFontName, KeyHeaderFontSize); err != nil {
			return nil, err
		}
	}
	if desc.Footer != nil {
		cfg[KeyFooterLeft] = desc.Footer.Left
		cfg[KeyFooterCenter] = desc.Footer.Center
		cfg[KeyFooterRight] = desc.Footer.Right
		if err := deriveFont(cfg, desc.Footer.style(), KeyFooterFontName, KeyFooterFontSize); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// deriveFont extracts font-family and font-size from a region style into
// cfg. Font-family fallback lists collapse to the primary font; font-size
// is coerced to an integer, 0 when absent or malformed.
func deriveFont(cfg RenderConfig, style, nameKey, sizeKey string) error {
	family, err := StyleValue("font-family", style, firstFont)
	if err != nil {
		return err
	}
	cfg[nameKey] = family

	size, err := StyleValue("font-size", style)
	if err != nil {
		return err
	}
	cfg[sizeKey] = coerceInt(size)
	return nil
}

// firstFont keeps only the primary font of a comma-separated family list.
func firstFont(family string) string {
	first, _, _ := strings.Cut(family, ",")
	return strings.TrimSpace(first)
}

// coerceInt converts a style value to an integer, 0 on failure.
func coerceInt(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// floorFor returns the minimum edge margin when a band is present.
func floorFor(present bool) float64 {
	if present {
		return minEdgeMarginMm
	}
	return 0
}
