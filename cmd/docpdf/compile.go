package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	docpdf "github.com/alnah/go-docpdf"
	"github.com/alnah/go-docpdf/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput      = errors.New("no source directories specified")
	ErrOutputExists = errors.New("output file exists (use --overwrite)")
	ErrBadToken     = errors.New("invalid token, expected key=value")
	ErrBadTimeout   = errors.New("invalid timeout duration")
)

const filePermissions = 0o644

// defaultOutputName is used when neither flags nor config name an output.
const defaultOutputName = "document"

// runCompile orchestrates one compilation run.
func runCompile(ctx context.Context, positionalArgs []string, flags *compileFlags, deps *Dependencies) error {
	cfg := config.DefaultConfig()
	var err error
	if flags.common.config != "" {
		cfg, err = config.LoadConfig(flags.common.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over config values.
	mergeFlags(flags, cfg)

	sourceDirs := positionalArgs
	if len(sourceDirs) == 0 {
		sourceDirs = cfg.Sources.Dirs
	}
	if len(sourceDirs) == 0 {
		return ErrNoInput
	}

	tokens, err := mergeTokens(cfg.Tokens, flags.document.tokens)
	if err != nil {
		return err
	}

	opts, err := buildOptions(cfg)
	if err != nil {
		return err
	}

	compiler, err := docpdf.NewCompiler(opts...)
	if err != nil {
		return err
	}
	defer compiler.Close()

	project := docpdf.Project{
		Title:      cfg.Document.Title,
		SourceDirs: sourceDirs,
		BaseDir:    cfg.Sources.BaseDir,
		Tokens:     tokens,
		HTMLOnly:   cfg.Output.HTMLOnly,
	}

	if flags.common.verbose {
		fmt.Fprintf(deps.Stderr, "Compiling %s\n", strings.Join(sourceDirs, ", "))
	}

	result, err := compiler.Compile(ctx, project)
	if err != nil {
		return err
	}

	outputPath := resolveOutputPath(cfg)
	if err := writeResult(result, outputPath, cfg.Output); err != nil {
		return err
	}

	if !flags.common.quiet {
		size := len(result.PDF)
		if cfg.Output.HTMLOnly {
			size = len(result.HTML)
		}
		fmt.Fprintf(deps.Stdout, "Wrote %s (%d bytes)\n", outputPath, size)
	}
	return nil
}

// mergeFlags applies CLI flag values over the loaded config.
func mergeFlags(flags *compileFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.baseDir != "" {
		cfg.Sources.BaseDir = flags.document.baseDir
	}
	if flags.assets.style != "" {
		cfg.Style.Name = flags.assets.style
	}
	if flags.assets.assetPath != "" {
		cfg.Style.AssetPath = flags.assets.assetPath
	}
	if flags.assets.layout != "" {
		cfg.Layout.Template = flags.assets.layout
	}
	if flags.output.correctBottomMargin {
		cfg.Layout.CorrectBottomMargin = true
	}
	if flags.engine.name != "" {
		cfg.Engine.Name = flags.engine.name
	}
	if flags.engine.binary != "" {
		cfg.Engine.Binary = flags.engine.binary
	}
	if flags.engine.timeout != "" {
		cfg.Engine.Timeout = flags.engine.timeout
	}
	if flags.engine.workers > 0 {
		cfg.Engine.Workers = flags.engine.workers
	}
	if flags.output.path != "" {
		cfg.Output.Path = flags.output.path
	}
	if flags.output.overwrite {
		cfg.Output.Overwrite = true
	}
	if flags.output.htmlOnly {
		cfg.Output.HTMLOnly = true
	}
}

// mergeTokens layers key=value flag tokens over config tokens.
func mergeTokens(base map[string]any, pairs []string) (map[string]any, error) {
	if len(base) == 0 && len(pairs) == 0 {
		return nil, nil
	}

	tokens := make(map[string]any, len(base)+len(pairs))
	for k, v := range base {
		tokens[k] = v
	}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", ErrBadToken, pair)
		}
		tokens[key] = value
	}
	return tokens, nil
}

// buildOptions translates config into compiler options.
func buildOptions(cfg *config.Config) ([]docpdf.Option, error) {
	var opts []docpdf.Option

	timeout := time.Duration(0)
	if cfg.Engine.Timeout != "" {
		d, err := time.ParseDuration(cfg.Engine.Timeout)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrBadTimeout, cfg.Engine.Timeout)
		}
		timeout = d
		opts = append(opts, docpdf.WithTimeout(d))
	}

	if cfg.Style.Name != "" {
		opts = append(opts, docpdf.WithStyle(cfg.Style.Name))
	}
	if cfg.Style.AssetPath != "" {
		opts = append(opts, docpdf.WithAssetPath(cfg.Style.AssetPath))
	}
	if cfg.Layout.Template != "" {
		opts = append(opts, docpdf.WithLayout(cfg.Layout.Template))
	}
	if cfg.Layout.CorrectBottomMargin {
		opts = append(opts, docpdf.WithCorrectBottomMargin())
	}
	if cfg.Engine.Workers > 0 {
		opts = append(opts, docpdf.WithConcurrency(cfg.Engine.Workers))
	}

	if engine := buildEngine(cfg, timeout); engine != nil {
		opts = append(opts, docpdf.WithEngine(engine))
	}
	return opts, nil
}

// buildEngine selects the configured renderer, nil for the default.
func buildEngine(cfg *config.Config, timeout time.Duration) docpdf.RenderEngine {
	switch strings.ToLower(cfg.Engine.Name) {
	case config.EngineChrome:
		return docpdf.NewChromeEngine(timeout)
	case config.EngineWkhtmltopdf:
		if cfg.Engine.Binary != "" {
			return docpdf.NewWkhtmltopdfEngineWith(cfg.Engine.Binary, nil)
		}
		return nil
	default:
		if cfg.Engine.Binary != "" {
			return docpdf.NewWkhtmltopdfEngineWith(cfg.Engine.Binary, nil)
		}
		return nil
	}
}

// resolveOutputPath picks the output file, deriving the extension from
// the output mode.
func resolveOutputPath(cfg *config.Config) string {
	if cfg.Output.Path != "" {
		return cfg.Output.Path
	}
	if cfg.Output.HTMLOnly {
		return defaultOutputName + ".html"
	}
	return defaultOutputName + ".pdf"
}

// writeResult writes the compiled document, honoring the overwrite flag.
func writeResult(result *docpdf.CompileResult, path string, out config.OutputConfig) error {
	if out.HTMLOnly {
		if !out.Overwrite {
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%w: %s", ErrOutputExists, path)
			}
		}
		if err := os.WriteFile(path, result.HTML, filePermissions); err != nil {
			return fmt.Errorf("writing HTML: %w", err)
		}
		return nil
	}

	written, err := result.SaveTo(path, out.Overwrite)
	if err != nil {
		return err
	}
	if !written {
		return fmt.Errorf("%w: %s", ErrOutputExists, path)
	}
	return nil
}
