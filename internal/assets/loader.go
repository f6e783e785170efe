package assets

// Well-known asset names.
const (
	// PageTemplateName is the HTML shell wrapping combined content.
	PageTemplateName = "page"

	// LayoutTemplateName is the optional page-geometry template.
	LayoutTemplateName = "layout"

	// DefaultStyleName is the built-in CSS style.
	DefaultStyleName = "default"
)

// Loader defines the contract for loading CSS styles and templates.
// Implementations may load from embedded assets, the filesystem, or both.
type Loader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads a template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)

	// FindTemplate loads a template that is allowed to be absent.
	// Absence is reported through found, not an error, so callers can
	// branch to default behavior without error inspection.
	FindTemplate(name string) (content string, found bool, err error)
}
