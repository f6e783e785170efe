package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document metadata flags.
type documentFlags struct {
	title   string
	baseDir string
	tokens  []string
}

// assetFlags holds styling and layout flags.
type assetFlags struct {
	style     string
	assetPath string
	layout    string
}

// engineFlags holds PDF renderer flags.
type engineFlags struct {
	name    string
	binary  string
	timeout string
	workers int
}

// outputFlags holds output destination flags.
type outputFlags struct {
	path                string
	overwrite           bool
	htmlOnly            bool
	correctBottomMargin bool
}

// compileFlags holds all flags for the compile command.
type compileFlags struct {
	common   commonFlags
	document documentFlags
	assets   assetFlags
	engine   engineFlags
	output   outputFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// addDocumentFlags adds document metadata flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title")
	fs.StringVar(&f.baseDir, "base-dir", "", "base directory for relative links")
	fs.StringArrayVar(&f.tokens, "token", nil, "token substitution as key=value (repeatable)")
}

// addAssetFlags adds styling and layout flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.style, "style", "", "CSS style name, file path, or raw CSS")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
	fs.StringVar(&f.layout, "layout", "", "layout template name")
}

// addEngineFlags adds renderer flags to a FlagSet.
func addEngineFlags(fs *flag.FlagSet, f *engineFlags) {
	fs.StringVar(&f.name, "engine", "", "PDF engine: wkhtmltopdf, chrome")
	fs.StringVar(&f.binary, "engine-binary", "", "override the wkhtmltopdf binary path")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "PDF generation timeout (e.g., 30s, 2m)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.path, "output", "o", "", "output file path")
	fs.BoolVar(&f.overwrite, "overwrite", false, "replace an existing output file")
	fs.BoolVar(&f.htmlOnly, "html-only", false, "output HTML only, skip PDF")
	fs.BoolVar(&f.correctBottomMargin, "correct-bottom-margin", false,
		"derive the bottom margin from the layout's margin-bottom")
}

// parseCompileFlags parses compile command flags and returns positional args.
func parseCompileFlags(args []string) (*compileFlags, []string, error) {
	fs := flag.NewFlagSet("compile", flag.ContinueOnError)
	f := &compileFlags{}

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addAssetFlags(fs, &f.assets)
	addEngineFlags(fs, &f.engine)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printCompileUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
