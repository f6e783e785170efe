// Package docpdf compiles a directory of Markdown documents into a
// single styled PDF.
//
// # Quick Start
//
// Create a compiler, compile a project, and save the result:
//
//	comp, err := docpdf.NewCompiler()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer comp.Close()
//
//	result, err := comp.Compile(ctx, docpdf.Project{
//	    Title:      "Handbook",
//	    SourceDirs: []string{"docs"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	written, err := result.SaveTo("handbook.pdf", false)
//
// SaveTo reports false without error when the output already exists and
// overwrite was not requested. The result also carries the assembled
// HTML for debugging; use Project.HTMLOnly to skip PDF generation.
//
// # Compilation Pipeline
//
// Every markdown file found in the source directories moves through the
// same sequence:
//
//  1. Raw load, then fileload-stage hooks
//  2. Front-matter normalization and extraction
//  3. Markdown preprocessing, then markdown-stage hooks
//  4. Markdown to HTML via Goldmark (GFM, syntax highlighting)
//  5. html-stage hooks, then token substitution
//
// The per-file fragments are concatenated in sorted path order, wrapped
// in the page template, and styled. Page geometry (margins, header and
// footer bands) derives from an optional layout template carrying
// CSS-like inline styles; without one, structural defaults apply.
//
// # Hooks
//
// Register content mutators at any pipeline stage:
//
//	comp, err := docpdf.NewCompiler(
//	    docpdf.WithHook(docpdf.StageMarkdown, func(ctx context.Context, fctx docpdf.FileContext, body string) (string, error) {
//	        return strings.ReplaceAll(body, "TODO", ""), nil
//	    }),
//	)
//
// # PDF Engines
//
// The default engine shells out to the wkhtmltopdf binary. The Chrome
// engine renders through headless Chrome via go-rod instead:
//
//	comp, err := docpdf.NewCompiler(docpdf.WithEngine(docpdf.NewChromeEngine(30 * time.Second)))
//
// For containers and CI environments, set ROD_NO_SANDBOX=1 to disable
// the Chrome sandbox and ROD_BROWSER_BIN to use a pre-installed browser.
package docpdf
