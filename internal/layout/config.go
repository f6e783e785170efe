package layout

// RenderConfig is the flat option map handed to the PDF engine. Margins
// and spacings are numeric millimeters, header and footer cells are
// literal strings that may still contain engine placeholder tokens.
type RenderConfig map[string]any

// Renderer option keys.
const (
	KeyEnableForms    = "enable-forms"
	KeyPageSize       = "page-size"
	KeyMarginTop      = "margin-top"
	KeyMarginBottom   = "margin-bottom"
	KeyMarginLeft     = "margin-left"
	KeyMarginRight    = "margin-right"
	KeyHeaderLeft     = "header-left"
	KeyHeaderCenter   = "header-center"
	KeyHeaderRight    = "header-right"
	KeyHeaderSpacing  = "header-spacing"
	KeyHeaderFontName = "header-font-name"
	KeyHeaderFontSize = "header-font-size"
	KeyFooterLeft     = "footer-left"
	KeyFooterCenter   = "footer-center"
	KeyFooterRight    = "footer-right"
	KeyFooterSpacing  = "footer-spacing"
	KeyFooterFontName = "footer-font-name"
	KeyFooterFontSize = "footer-font-size"
)

// DefaultPageSize is the paper format used when no layout overrides it.
const DefaultPageSize = "Letter"

// DefaultConfig returns the structural defaults applied to every run.
// Derived values are merged on top and win on key collision.
func DefaultConfig() RenderConfig {
	return RenderConfig{
		KeyEnableForms: true,
		KeyPageSize:    DefaultPageSize,
	}
}
