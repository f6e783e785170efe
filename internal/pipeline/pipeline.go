package pipeline

import (
	"context"
	"fmt"
	"os"
)

// Renderer runs a single source document through the transformation
// pipeline: raw bytes to front-matter-stripped markdown to an HTML
// fragment with tokens substituted. Hooks fire between the fixed steps.
//
// A Renderer is safe for concurrent use across files as long as the
// registered hooks are; all per-file state travels in FileContext.
type Renderer struct {
	hooks     *Hooks
	converter HTMLConverter
	tokens    map[string]any
}

// NewRenderer creates a Renderer. A nil hooks registry means every stage
// passes through; a nil converter selects the goldmark default.
func NewRenderer(hooks *Hooks, converter HTMLConverter, tokens map[string]any) *Renderer {
	if converter == nil {
		converter = NewGoldmarkConverter()
	}
	return &Renderer{hooks: hooks, converter: converter, tokens: tokens}
}

// Rendered is the outcome of running one file through the pipeline.
type Rendered struct {
	// HTML is the final fragment, tokens substituted.
	HTML string
	// Meta is the file's front-matter mapping, empty when absent.
	Meta map[string]any
}

// RenderFile reads the file named by fctx and runs the full pipeline.
// Every error propagates: a missing file, malformed front-matter, a
// failing hook or a token rendering error all abort the run.
func (r *Renderer) RenderFile(ctx context.Context, fctx FileContext) (*Rendered, error) {
	raw, err := os.ReadFile(fctx.Path) // #nosec G304 -- collector produced the path
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fctx.Path, err)
	}

	content, err := r.hooks.Fire(ctx, StageFileLoad, fctx, string(raw))
	if err != nil {
		return nil, fmt.Errorf("fileload hook for %s: %w", fctx.Path, err)
	}

	meta, body, err := SplitFrontMatter(content)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fctx.Path, err)
	}

	body = PreprocessMarkdown(body)

	body, err = r.hooks.Fire(ctx, StageMarkdown, fctx, body)
	if err != nil {
		return nil, fmt.Errorf("markdown hook for %s: %w", fctx.Path, err)
	}

	htmlContent, err := r.converter.ToHTML(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("converting %s: %w", fctx.Path, err)
	}

	htmlContent, err = r.hooks.Fire(ctx, StageHTML, fctx, htmlContent)
	if err != nil {
		return nil, fmt.Errorf("html hook for %s: %w", fctx.Path, err)
	}

	htmlContent, err = RenderTokens(htmlContent, r.tokens)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", fctx.Path, err)
	}

	return &Rendered{HTML: htmlContent, Meta: meta}, nil
}
