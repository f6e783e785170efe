package pipeline_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-docpdf/internal/pipeline"
)

// writeSource drops a markdown file into a temp dir and returns its context.
func writeSource(t *testing.T, content string) pipeline.FileContext {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing source file: %v", err)
	}
	return pipeline.FileContext{Path: path, Dir: dir}
}

func TestRenderFile(t *testing.T) {
	t.Parallel()

	r := pipeline.NewRenderer(nil, nil, nil)
	fctx := writeSource(t, "---\ntitle: Greeting\n---\n# Hello\n\nworld\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}

	if !strings.Contains(got.HTML, "<h1") || !strings.Contains(got.HTML, "Hello") {
		t.Errorf("RenderFile() HTML missing heading: %q", got.HTML)
	}
	if strings.Contains(got.HTML, "title: Greeting") {
		t.Errorf("front-matter leaked into HTML: %q", got.HTML)
	}
	if got.Meta["title"] != "Greeting" {
		t.Errorf("Meta[title] = %v, want Greeting", got.Meta["title"])
	}
}

func TestRenderFileWithoutFrontMatter(t *testing.T) {
	t.Parallel()

	r := pipeline.NewRenderer(nil, nil, nil)
	fctx := writeSource(t, "# No metadata here\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.Contains(got.HTML, "No metadata here") {
		t.Errorf("RenderFile() HTML = %q", got.HTML)
	}
	if len(got.Meta) != 0 {
		t.Errorf("Meta = %v, want empty", got.Meta)
	}
}

func TestRenderFileWithThematicBreak(t *testing.T) {
	t.Parallel()

	// A horizontal rule in a file without front-matter must not be
	// mistaken for a closing fence.
	r := pipeline.NewRenderer(nil, nil, nil)
	fctx := writeSource(t, "# Title\n\nsome text\n\n---\n\nmore text\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.Contains(got.HTML, "some text") || !strings.Contains(got.HTML, "more text") {
		t.Errorf("RenderFile() HTML missing body text: %q", got.HTML)
	}
	if !strings.Contains(got.HTML, "<hr") {
		t.Errorf("thematic break not rendered as rule: %q", got.HTML)
	}
	if len(got.Meta) != 0 {
		t.Errorf("Meta = %v, want empty", got.Meta)
	}
}

func TestRenderFileMarkdownHook(t *testing.T) {
	t.Parallel()

	hooks := pipeline.NewHooks()
	hooks.Register(pipeline.StageMarkdown, func(_ context.Context, _ pipeline.FileContext, p string) (string, error) {
		return strings.ToUpper(p), nil
	})

	r := pipeline.NewRenderer(hooks, nil, nil)
	fctx := writeSource(t, "shout this\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.Contains(got.HTML, "SHOUT THIS") {
		t.Errorf("markdown hook output missing from HTML: %q", got.HTML)
	}
}

func TestRenderFileFileLoadHook(t *testing.T) {
	t.Parallel()

	hooks := pipeline.NewHooks()
	hooks.Register(pipeline.StageFileLoad, func(_ context.Context, _ pipeline.FileContext, p string) (string, error) {
		// Inject front-matter from the hook; the pipeline must parse it.
		return "---\ntitle: Injected\n---\n" + p, nil
	})

	r := pipeline.NewRenderer(hooks, nil, nil)
	fctx := writeSource(t, "body text\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if got.Meta["title"] != "Injected" {
		t.Errorf("Meta[title] = %v, want Injected", got.Meta["title"])
	}
}

func TestRenderFileHTMLHook(t *testing.T) {
	t.Parallel()

	hooks := pipeline.NewHooks()
	hooks.Register(pipeline.StageHTML, func(_ context.Context, _ pipeline.FileContext, p string) (string, error) {
		return p + "<!-- appended -->", nil
	})

	r := pipeline.NewRenderer(hooks, nil, nil)
	fctx := writeSource(t, "text\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.HasSuffix(got.HTML, "<!-- appended -->") {
		t.Errorf("html hook output missing: %q", got.HTML)
	}
}

func TestRenderFileTokens(t *testing.T) {
	t.Parallel()

	r := pipeline.NewRenderer(nil, nil, map[string]any{"project": "docpdf"})
	fctx := writeSource(t, "Made with [[ .project ]].\n")

	got, err := r.RenderFile(context.Background(), fctx)
	if err != nil {
		t.Fatalf("RenderFile() error = %v", err)
	}
	if !strings.Contains(got.HTML, "Made with docpdf.") {
		t.Errorf("token substitution missing: %q", got.HTML)
	}
}

func TestRenderFileMissingFile(t *testing.T) {
	t.Parallel()

	r := pipeline.NewRenderer(nil, nil, nil)
	fctx := pipeline.FileContext{Path: filepath.Join(t.TempDir(), "absent.md")}

	_, err := r.RenderFile(context.Background(), fctx)
	if err == nil {
		t.Fatal("RenderFile() on missing file: want error, got nil")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("RenderFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestRenderFileHookError(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("boom")
	hooks := pipeline.NewHooks()
	hooks.Register(pipeline.StageMarkdown, func(_ context.Context, _ pipeline.FileContext, _ string) (string, error) {
		return "", wantErr
	})

	r := pipeline.NewRenderer(hooks, nil, nil)
	fctx := writeSource(t, "text\n")

	_, err := r.RenderFile(context.Background(), fctx)
	if !errors.Is(err, wantErr) {
		t.Errorf("RenderFile() error = %v, want %v", err, wantErr)
	}
}

func TestPreprocessMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "crlf normalized", content: "a\r\nb", want: "a\nb"},
		{name: "bare cr normalized", content: "a\rb", want: "a\nb"},
		{name: "blank lines compressed", content: "a\n\n\n\n\nb", want: "a\n\nb"},
		{name: "already clean", content: "a\n\nb", want: "a\n\nb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pipeline.PreprocessMarkdown(tt.content); got != tt.want {
				t.Errorf("PreprocessMarkdown(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestRenderTokensIdentity(t *testing.T) {
	t.Parallel()

	const content = "<p>plain html, no markers</p>"
	got, err := pipeline.RenderTokens(content, nil)
	if err != nil {
		t.Fatalf("RenderTokens() error = %v", err)
	}
	if got != content {
		t.Errorf("RenderTokens() = %q, want input unchanged", got)
	}
}

func TestRenderTokensKeepsGoTemplateSyntax(t *testing.T) {
	t.Parallel()

	// Markdown code fences often contain Go template braces; those must
	// survive token rendering untouched.
	const content = "<code>{{ .NotAToken }}</code>"
	got, err := pipeline.RenderTokens(content, map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("RenderTokens() error = %v", err)
	}
	if got != content {
		t.Errorf("RenderTokens() = %q, want %q", got, content)
	}
}
