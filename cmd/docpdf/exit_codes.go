package main

import (
	"errors"
	"os"

	docpdf "github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/assets"
	"github.com/alnah/go-docpdf/internal/config"
)

// Exit codes for the docpdf CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful compilation
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or validation
	ExitIO      = 3 // File not found, permission denied
	ExitRender  = 4 // PDF engine errors
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Renderer errors (exit 4)
	if errors.Is(err, docpdf.ErrRenderProcess) ||
		errors.Is(err, docpdf.ErrBrowserConnect) ||
		errors.Is(err, docpdf.ErrPageCreate) ||
		errors.Is(err, docpdf.ErrPageLoad) ||
		errors.Is(err, docpdf.ErrPDFGeneration) {
		return ExitRender
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, docpdf.ErrNoMarkdownFiles) ||
		errors.Is(err, docpdf.ErrWritePDF) ||
		errors.Is(err, ErrOutputExists) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrConfigInvalid) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, docpdf.ErrNoSourceDirs) ||
		errors.Is(err, docpdf.ErrInvalidAssetPath) ||
		errors.Is(err, assets.ErrStyleNotFound) ||
		errors.Is(err, assets.ErrTemplateNotFound) ||
		errors.Is(err, ErrBadToken) ||
		errors.Is(err, ErrBadTimeout) {
		return ExitUsage
	}

	return ExitGeneral
}
