package docpdf

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/alnah/go-docpdf/internal/fileutil"
	"github.com/alnah/go-docpdf/internal/layout"
)

// Paper dimensions in inches, by page-size option value.
var paperSizes = map[string][2]float64{
	"letter": {8.5, 11},
	"a4":     {8.27, 11.69},
	"legal":  {8.5, 14},
}

const mmPerInch = 25.4

// ChromeEngine renders PDFs through headless Chrome via go-rod,
// consuming the same option map as the external engine. Rod downloads a
// managed Chromium on first run if none is found.
type ChromeEngine struct {
	browser *rod.Browser
	timeout time.Duration
	closed  bool
}

// NewChromeEngine creates a ChromeEngine with the given per-render
// timeout.
func NewChromeEngine(timeout time.Duration) *ChromeEngine {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ChromeEngine{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (e *ChromeEngine) ensureBrowser() error {
	if e.closed {
		return ErrEngineClosed
	}
	if e.browser != nil {
		return nil
	}

	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}

	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	e.browser = rod.New().ControlURL(u)
	if err := e.browser.Connect(); err != nil {
		e.browser = nil
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}
	return nil
}

// Render loads the HTML in a fresh page and prints it with the geometry
// from cfg.
func (e *ChromeEngine) Render(ctx context.Context, htmlContent string, cfg RenderConfig) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := e.ensureBrowser(); err != nil {
		return nil, err
	}

	tmpPath, cleanup, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanup()

	page, err := e.browser.Page(proto.TargetCreateTarget{URL: "file://" + tmpPath})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	timeout := e.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	if err := page.Timeout(timeout).WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	reader, err := page.PDF(buildPrintOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPDFGeneration, err)
	}

	pdfBuf, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("%w: reading PDF stream: %v", ErrPDFGeneration, err)
	}
	return pdfBuf, nil
}

// Close releases browser resources. A closed engine cannot render again.
func (e *ChromeEngine) Close() error {
	e.closed = true
	if e.browser != nil {
		err := e.browser.Close()
		e.browser = nil
		return err
	}
	return nil
}

// buildPrintOptions maps the derived option map onto Chrome's print
// parameters. Chrome measures in inches, so millimeter margins convert
// back.
func buildPrintOptions(cfg RenderConfig) *proto.PagePrintToPDF {
	size := paperSizes["letter"]
	if name, ok := cfg[layout.KeyPageSize].(string); ok {
		if dims, known := paperSizes[strings.ToLower(name)]; known {
			size = dims
		}
	}

	opts := &proto.PagePrintToPDF{
		PaperWidth:      floatPtr(size[0]),
		PaperHeight:     floatPtr(size[1]),
		MarginTop:       marginPtr(cfg, layout.KeyMarginTop),
		MarginBottom:    marginPtr(cfg, layout.KeyMarginBottom),
		MarginLeft:      marginPtr(cfg, layout.KeyMarginLeft),
		MarginRight:     marginPtr(cfg, layout.KeyMarginRight),
		PrintBackground: true,
	}

	header := bandTemplate(cfg, layout.KeyHeaderLeft, layout.KeyHeaderCenter, layout.KeyHeaderRight,
		layout.KeyHeaderFontName, layout.KeyHeaderFontSize)
	footer := bandTemplate(cfg, layout.KeyFooterLeft, layout.KeyFooterCenter, layout.KeyFooterRight,
		layout.KeyFooterFontName, layout.KeyFooterFontSize)

	if header != "" || footer != "" {
		opts.DisplayHeaderFooter = true
		opts.HeaderTemplate = orEmptySpan(header)
		opts.FooterTemplate = orEmptySpan(footer)
	}

	return opts
}

// marginPtr converts a millimeter margin from cfg to Chrome's inch
// pointer, nil when absent.
func marginPtr(cfg RenderConfig, key string) *float64 {
	mm, ok := cfg[key].(float64)
	if !ok {
		return nil
	}
	return floatPtr(mm / mmPerInch)
}

// bandTemplate builds Chrome's header or footer HTML from the three band
// cells. Engine placeholder tokens become Chrome's counter spans.
func bandTemplate(cfg RenderConfig, leftKey, centerKey, rightKey, fontKey, sizeKey string) string {
	left := substitutePageTokens(stringValue(cfg, leftKey))
	center := substitutePageTokens(stringValue(cfg, centerKey))
	right := substitutePageTokens(stringValue(cfg, rightKey))

	if strings.TrimSpace(left+center+right) == "" {
		return ""
	}

	font := stringValue(cfg, fontKey)
	if font == "" {
		font = "Helvetica"
	}
	sizePx := 10
	if n, ok := cfg[sizeKey].(int); ok && n > 0 {
		sizePx = n
	}

	return fmt.Sprintf(
		`<div style="font-size: %dpx; font-family: %s; width: 100%%; padding: 0 0.5in; display: flex; justify-content: space-between;">`+
			`<span>%s</span><span>%s</span><span>%s</span></div>`,
		sizePx, font, left, center, right)
}

// substitutePageTokens converts renderer placeholder tokens to Chrome's
// native counter elements.
func substitutePageTokens(s string) string {
	s = strings.ReplaceAll(s, layout.PageNumberToken, `<span class="pageNumber"></span>`)
	return strings.ReplaceAll(s, layout.TotalPagesToken, `<span class="totalPages"></span>`)
}

// stringValue reads a string option, empty when absent.
func stringValue(cfg RenderConfig, key string) string {
	s, _ := cfg[key].(string)
	return s
}

// orEmptySpan substitutes Chrome's minimal no-op template for an empty
// band.
func orEmptySpan(s string) string {
	if s == "" {
		return "<span></span>"
	}
	return s
}

// floatPtr returns a pointer to a float64 value.
func floatPtr(v float64) *float64 {
	return &v
}
