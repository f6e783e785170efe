package docpdf

import "errors"

// Sentinel errors for library operations.
var (
	// Configuration errors.
	ErrNoSourceDirs     = errors.New("no source directories configured")
	ErrInvalidAssetPath = errors.New("invalid asset path")

	// Discovery errors.
	ErrNoMarkdownFiles = errors.New("no markdown files found")

	// Rendering errors.
	ErrRenderProcess  = errors.New("PDF rendering process failed")
	ErrEngineClosed   = errors.New("engine is closed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPDFGeneration  = errors.New("PDF generation failed")

	// Output errors.
	ErrWritePDF = errors.New("failed to write PDF file")
)
