package docpdf

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func TestChromeEngineClosed(t *testing.T) {
	t.Parallel()

	engine := NewChromeEngine(time.Second)
	if err := engine.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	_, err := engine.Render(context.Background(), "<p>x</p>", RenderConfig{})
	if !errors.Is(err, ErrEngineClosed) {
		t.Errorf("Render() after Close error = %v, want ErrEngineClosed", err)
	}
}

func TestBuildPrintOptionsDefaults(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(RenderConfig{})

	if opts.PaperWidth == nil || *opts.PaperWidth != 8.5 {
		t.Errorf("PaperWidth = %v, want letter width 8.5", opts.PaperWidth)
	}
	if opts.PaperHeight == nil || *opts.PaperHeight != 11.0 {
		t.Errorf("PaperHeight = %v, want letter height 11", opts.PaperHeight)
	}
	if opts.MarginTop != nil {
		t.Errorf("MarginTop = %v, want nil when unset", *opts.MarginTop)
	}
	if opts.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter = true with no bands")
	}
}

func TestBuildPrintOptionsPaperSize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		size       string
		wantWidth  float64
		wantHeight float64
	}{
		{"a4 case-insensitive", "A4", 8.27, 11.69},
		{"legal", "legal", 8.5, 14},
		{"unknown falls back to letter", "tabloid", 8.5, 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := buildPrintOptions(RenderConfig{"page-size": tt.size})
			if *opts.PaperWidth != tt.wantWidth || *opts.PaperHeight != tt.wantHeight {
				t.Errorf("paper = %vx%v, want %vx%v",
					*opts.PaperWidth, *opts.PaperHeight, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestBuildPrintOptionsMargins(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(RenderConfig{
		"margin-top":  25.4,
		"margin-left": 12.7,
	})

	if opts.MarginTop == nil || math.Abs(*opts.MarginTop-1.0) > 1e-9 {
		t.Errorf("MarginTop = %v, want 1 inch", opts.MarginTop)
	}
	if opts.MarginLeft == nil || math.Abs(*opts.MarginLeft-0.5) > 1e-9 {
		t.Errorf("MarginLeft = %v, want 0.5 inch", opts.MarginLeft)
	}
	if opts.MarginBottom != nil {
		t.Error("MarginBottom set without a config value")
	}
}

func TestBuildPrintOptionsHeaderFooter(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(RenderConfig{
		"header-left":      "My Title",
		"header-font-name": "Georgia",
		"header-font-size": 10,
		"footer-center":    "[page] of [topage]",
	})

	if !opts.DisplayHeaderFooter {
		t.Fatal("DisplayHeaderFooter = false with bands present")
	}
	if !strings.Contains(opts.HeaderTemplate, "My Title") {
		t.Errorf("HeaderTemplate = %q, want title cell", opts.HeaderTemplate)
	}
	if !strings.Contains(opts.HeaderTemplate, "Georgia") || !strings.Contains(opts.HeaderTemplate, "10px") {
		t.Errorf("HeaderTemplate = %q, want font styling", opts.HeaderTemplate)
	}
	if !strings.Contains(opts.FooterTemplate, `<span class="pageNumber"></span>`) {
		t.Errorf("FooterTemplate = %q, want page counter span", opts.FooterTemplate)
	}
	if !strings.Contains(opts.FooterTemplate, `<span class="totalPages"></span>`) {
		t.Errorf("FooterTemplate = %q, want total pages span", opts.FooterTemplate)
	}
	if strings.Contains(opts.FooterTemplate, "[page]") {
		t.Errorf("FooterTemplate = %q, want placeholder tokens substituted", opts.FooterTemplate)
	}
}

func TestBuildPrintOptionsOnlyFooter(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(RenderConfig{"footer-right": "[page]"})

	if !opts.DisplayHeaderFooter {
		t.Fatal("DisplayHeaderFooter = false with footer present")
	}
	if opts.HeaderTemplate != "<span></span>" {
		t.Errorf("HeaderTemplate = %q, want empty span placeholder", opts.HeaderTemplate)
	}
	if opts.FooterTemplate == "<span></span>" {
		t.Error("FooterTemplate collapsed despite footer content")
	}
}

func TestBuildPrintOptionsBlankBandsIgnored(t *testing.T) {
	t.Parallel()

	opts := buildPrintOptions(RenderConfig{
		"header-left":   "  ",
		"footer-center": "",
	})
	if opts.DisplayHeaderFooter {
		t.Error("DisplayHeaderFooter = true with whitespace-only bands")
	}
}
