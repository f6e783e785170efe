package docpdf

import (
	"time"

	"github.com/alnah/go-docpdf/internal/pipeline"
)

// Stage re-exports the pipeline stages for hook registration.
type Stage = pipeline.Stage

// Pipeline stages, in firing order.
const (
	StageFileLoad = pipeline.StageFileLoad
	StageMarkdown = pipeline.StageMarkdown
	StageHTML     = pipeline.StageHTML
)

// FileContext identifies the document a hook is operating on.
type FileContext = pipeline.FileContext

// Hook mutates stage content for a single file.
type Hook = pipeline.Hook

// RenderConfig is the flat option map handed to the PDF engine: numeric
// margins in millimeters, header and footer text and font settings, and
// structural defaults.
type RenderConfig map[string]any

// Project describes one compilation run.
type Project struct {
	// Title appears in the page shell and is available to the layout
	// template.
	Title string

	// SourceDirs are the directories searched (non-recursively) for
	// *.md files. At least one is required.
	SourceDirs []string

	// BaseDir, when set, resolves relative links and images in every
	// file against this directory instead of each file's own.
	BaseDir string

	// Tokens is substituted into generated HTML during the token
	// rendering step. Empty by default.
	Tokens map[string]any

	// HTMLOnly skips PDF generation; the result carries HTML only.
	HTMLOnly bool
}

// Filter is a caller-supplied content callable retained for extensions.
// The core pipeline does not invoke filters; their calling contract is
// owned by whoever registers them.
type Filter func(string) string

// Option configures a Compiler.
type Option func(*Compiler)

// compilerConfig holds internal configuration for Compiler.
type compilerConfig struct {
	timeout             time.Duration
	styleInput          string
	resolvedStyle       string
	assetPath           string
	layoutName          string
	correctBottomMargin bool
	concurrency         int
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout sets the PDF rendering timeout.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("docpdf: WithTimeout duration must be positive")
	}
	return func(c *Compiler) {
		c.cfg.timeout = d
	}
}

// WithStyle sets the CSS injected into the assembled page. Accepts a
// style name from the asset set, a path to a .css file, or raw CSS
// content.
func WithStyle(style string) Option {
	return func(c *Compiler) {
		c.cfg.styleInput = style
	}
}

// WithAssetPath overrides templates and styles from a project directory;
// anything not present there falls back to the embedded defaults.
func WithAssetPath(path string) Option {
	return func(c *Compiler) {
		c.cfg.assetPath = path
	}
}

// WithLayout selects the layout template name. Defaults to "layout".
func WithLayout(name string) Option {
	return func(c *Compiler) {
		c.cfg.layoutName = name
	}
}

// WithCorrectBottomMargin derives the bottom page margin from the
// layout's margin-bottom declaration. By default the historical reading
// of margin-top is preserved; see internal geometry notes.
func WithCorrectBottomMargin() Option {
	return func(c *Compiler) {
		c.cfg.correctBottomMargin = true
	}
}

// WithEngine sets the PDF rendering engine.
func WithEngine(engine RenderEngine) Option {
	return func(c *Compiler) {
		c.engine = engine
	}
}

// WithHook registers a content mutator at a pipeline stage. Hooks fire
// in registration order.
func WithHook(stage Stage, hook Hook) Option {
	return func(c *Compiler) {
		c.hooks.Register(stage, hook)
	}
}

// WithConcurrency bounds parallel per-file HTML generation. Values
// below 1 select the number of CPUs.
func WithConcurrency(n int) Option {
	return func(c *Compiler) {
		c.cfg.concurrency = n
	}
}
