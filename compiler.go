package docpdf

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-docpdf/internal/assets"
	"github.com/alnah/go-docpdf/internal/fileutil"
	"github.com/alnah/go-docpdf/internal/layout"
	"github.com/alnah/go-docpdf/internal/pipeline"
)

// Compiler orchestrates the markdown-to-PDF compilation pipeline.
// Create with NewCompiler, use Compile per run, and Close when done.
type Compiler struct {
	cfg           compilerConfig
	assetLoader   assets.Loader
	hooks         *pipeline.Hooks
	htmlConverter pipeline.HTMLConverter
	deriver       *layout.Deriver
	engine        RenderEngine
	filters       []namedFilter
}

// namedFilter pairs a registered filter with its removal key.
type namedFilter struct {
	name string
	fn   Filter
}

// NewCompiler creates a Compiler with default configuration.
// Use options to customize behavior (e.g., WithTimeout, WithEngine,
// WithHook). Returns an error if asset loading fails.
func NewCompiler(opts ...Option) (*Compiler, error) {
	c := &Compiler{
		cfg: compilerConfig{
			timeout:    defaultTimeout,
			layoutName: assets.LayoutTemplateName,
			styleInput: assets.DefaultStyleName,
		},
		assetLoader:   assets.NewEmbeddedLoader(),
		hooks:         pipeline.NewHooks(),
		htmlConverter: pipeline.NewGoldmarkConverter(),
	}

	for _, opt := range opts {
		opt(c)
	}

	// Handle WithAssetPath: layer the project directory over the
	// embedded defaults.
	if c.cfg.assetPath != "" {
		resolver, err := assets.NewResolver(c.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		c.assetLoader = resolver
	}

	// Resolve style input (name, path, or CSS content) to CSS content.
	if err := c.resolveStyle(); err != nil {
		return nil, err
	}

	c.deriver = &layout.Deriver{CorrectBottomMargin: c.cfg.correctBottomMargin}

	// Create the default engine if not injected.
	if c.engine == nil {
		c.engine = NewWkhtmltopdfEngine()
	}

	return c, nil
}

// CompileResult carries the assembled HTML, the derived renderer
// configuration, and (unless HTMLOnly) the PDF bytes.
type CompileResult struct {
	HTML   []byte
	PDF    []byte
	Config RenderConfig
}

// Compile runs the full pipeline over every markdown file found in the
// project's source directories and returns the combined result.
// The context is used for cancellation and timeout.
func (c *Compiler) Compile(ctx context.Context, project Project) (*CompileResult, error) {
	files, err := CollectSourceFiles(project.SourceDirs)
	if err != nil {
		return nil, err
	}

	fragments, err := c.renderFiles(ctx, files, project)
	if err != nil {
		return nil, err
	}

	pageHTML, err := c.assemblePage(project.Title, fragments)
	if err != nil {
		return nil, err
	}

	cfg, err := c.deriveConfig(project.Title)
	if err != nil {
		return nil, err
	}

	result := &CompileResult{
		HTML:   []byte(pageHTML),
		Config: cfg,
	}

	if project.HTMLOnly {
		return result, nil
	}

	renderCtx := ctx
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		renderCtx, cancel = context.WithTimeout(ctx, c.cfg.timeout)
		defer cancel()
	}

	pdf, err := c.engine.Render(renderCtx, pageHTML, cfg)
	if err != nil {
		return nil, fmt.Errorf("rendering PDF: %w", err)
	}
	result.PDF = pdf

	return result, nil
}

// Close releases engine resources.
func (c *Compiler) Close() error {
	if c.engine != nil {
		return c.engine.Close()
	}
	return nil
}

// AddFilter registers a named content filter. Filters are retained in
// registration order for extensions built on top of the compiler; the
// core pipeline never invokes them.
func (c *Compiler) AddFilter(name string, fn Filter) {
	c.filters = append(c.filters, namedFilter{name: name, fn: fn})
}

// RemoveFilter removes every filter registered under name.
func (c *Compiler) RemoveFilter(name string) {
	kept := c.filters[:0]
	for _, f := range c.filters {
		if f.name != name {
			kept = append(kept, f)
		}
	}
	c.filters = kept
}

// Filters returns the registered filters in order.
func (c *Compiler) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	for i, f := range c.filters {
		out[i] = f.fn
	}
	return out
}

// renderFiles runs the per-file pipeline over every source file,
// bounded-concurrently. Output order follows the sorted input order
// regardless of completion order.
func (c *Compiler) renderFiles(ctx context.Context, files []string, project Project) ([]string, error) {
	renderer := pipeline.NewRenderer(c.hooks, c.htmlConverter, project.Tokens)

	limit := c.cfg.concurrency
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	fragments := make([]string, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, path := range files {
		g.Go(func() error {
			fctx := pipeline.FileContext{Path: path, Dir: filepath.Dir(path)}
			rendered, err := renderer.RenderFile(gctx, fctx)
			if err != nil {
				return err
			}

			baseDir := project.BaseDir
			if baseDir == "" {
				baseDir = fctx.Dir
			}
			html, err := pipeline.ResolveRelativeLinks(rendered.HTML, baseDir)
			if err != nil {
				return fmt.Errorf("resolving links in %s: %w", path, err)
			}

			fragments[i] = html
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return fragments, nil
}

// assemblePage wraps the concatenated fragments in the page template and
// injects the resolved style.
func (c *Compiler) assemblePage(title string, fragments []string) (string, error) {
	shell, err := c.assetLoader.LoadTemplate(assets.PageTemplateName)
	if err != nil {
		return "", fmt.Errorf("loading page template: %w", err)
	}

	pageHTML, err := pipeline.RenderTokens(shell, map[string]any{
		"Title":   title,
		"Content": strings.Join(fragments, "\n"),
	})
	if err != nil {
		return "", fmt.Errorf("rendering page template: %w", err)
	}

	return pipeline.InjectCSS(pageHTML, c.cfg.resolvedStyle), nil
}

// deriveConfig reads the optional layout template and derives the
// renderer configuration. A missing layout is not an error: the
// structural defaults apply.
func (c *Compiler) deriveConfig(title string) (RenderConfig, error) {
	source, found, err := c.assetLoader.FindTemplate(c.cfg.layoutName)
	if err != nil {
		return nil, fmt.Errorf("loading layout template: %w", err)
	}

	var desc *layout.Descriptor
	if found {
		desc, err = layout.ParseDescriptor(source, title)
		if err != nil {
			return nil, err
		}
	}

	cfg, err := c.deriver.Derive(desc)
	if err != nil {
		return nil, err
	}
	return RenderConfig(cfg), nil
}

// resolveStyle resolves the style input (name, path, or CSS content) to
// CSS content. Called during NewCompiler after options are applied and
// the asset loader is configured.
func (c *Compiler) resolveStyle() error {
	input := c.cfg.styleInput
	if input == "" {
		return nil
	}

	// File path? (contains / or \)
	if fileutil.IsFilePath(input) {
		content, err := os.ReadFile(input) // #nosec G304 -- user-provided path
		if err != nil {
			return fmt.Errorf("loading style file %q: %w", input, err)
		}
		c.cfg.resolvedStyle = string(content)
		return nil
	}

	// CSS content? (contains {)
	if fileutil.IsCSS(input) {
		c.cfg.resolvedStyle = input
		return nil
	}

	// Style name -> use asset loader
	css, err := c.assetLoader.LoadStyle(input)
	if err != nil {
		return fmt.Errorf("loading style %q: %w", input, err)
	}
	c.cfg.resolvedStyle = css
	return nil
}

// SaveTo writes the compiled PDF to path. When path already exists and
// overwrite is false, nothing is written and SaveTo reports false with
// no error. Every other failure is an error.
func (r *CompileResult) SaveTo(path string, overwrite bool) (bool, error) {
	if fileutil.FileExists(path) && !overwrite {
		return false, nil
	}

	// #nosec G306 -- PDF output files are intended to be readable
	if err := os.WriteFile(path, r.PDF, 0o644); err != nil {
		return false, fmt.Errorf("%w: %v", ErrWritePDF, err)
	}
	return true, nil
}
