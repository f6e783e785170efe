package docpdf

import "context"

// RenderEngine abstracts PDF generation so different backends can
// consume the derived render configuration.
type RenderEngine interface {
	// Render produces PDF bytes from assembled HTML and the derived
	// option map. The call blocks until the engine finishes; failures
	// are surfaced, never retried internally.
	Render(ctx context.Context, htmlContent string, cfg RenderConfig) ([]byte, error)

	// Close releases engine resources (browser instances, temp state).
	Close() error
}

// Compile-time interface implementation checks.
var (
	_ RenderEngine = (*WkhtmltopdfEngine)(nil)
	_ RenderEngine = (*ChromeEngine)(nil)
)
