package docpdf_test

import (
	"context"
	"errors"
	"os"
	"reflect"
	"strings"
	"testing"

	docpdf "github.com/alnah/go-docpdf"
)

// fakeRunner simulates the external binary by writing canned bytes to
// the output path given as the final argument.
type fakeRunner struct {
	name   string
	args   []string
	output []byte
	stderr string
	err    error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) (string, string, error) {
	f.name = name
	f.args = args
	if f.err != nil {
		return "", f.stderr, f.err
	}
	outPath := args[len(args)-1]
	if err := os.WriteFile(outPath, f.output, 0o600); err != nil {
		return "", "", err
	}
	return "", "", nil
}

func TestWkhtmltopdfEngineRender(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: []byte("%PDF-1.4 fake")}
	engine := docpdf.NewWkhtmltopdfEngineWith("fake-binary", runner)

	cfg := docpdf.RenderConfig{
		"enable-forms": true,
		"page-size":    "Letter",
		"margin-top":   30.48,
	}
	pdf, err := engine.Render(context.Background(), "<html><body>x</body></html>", cfg)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if string(pdf) != "%PDF-1.4 fake" {
		t.Errorf("Render() = %q, want runner output", pdf)
	}

	if runner.name != "fake-binary" {
		t.Errorf("invoked %q, want fake-binary", runner.name)
	}
	// Final two arguments are the input HTML path and output PDF path.
	if len(runner.args) < 2 {
		t.Fatalf("args = %v, want flags plus two paths", runner.args)
	}
	htmlPath := runner.args[len(runner.args)-2]
	if !strings.HasSuffix(htmlPath, ".html") {
		t.Errorf("input path = %q, want .html temp file", htmlPath)
	}
	if !strings.HasSuffix(runner.args[len(runner.args)-1], ".pdf") {
		t.Errorf("output path = %q, want .pdf temp file", runner.args[len(runner.args)-1])
	}
}

func TestWkhtmltopdfEngineProcessFailure(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{err: errors.New("exit status 1"), stderr: "ContentNotFound"}
	engine := docpdf.NewWkhtmltopdfEngineWith("", runner)

	_, err := engine.Render(context.Background(), "<p>x</p>", docpdf.RenderConfig{})
	if !errors.Is(err, docpdf.ErrRenderProcess) {
		t.Fatalf("Render() error = %v, want ErrRenderProcess", err)
	}
	if !strings.Contains(err.Error(), "ContentNotFound") {
		t.Errorf("Render() error = %v, want stderr included", err)
	}
}

func TestBuildEngineArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  docpdf.RenderConfig
		want []string
	}{
		{
			name: "empty config",
			cfg:  docpdf.RenderConfig{},
			want: nil,
		},
		{
			name: "true bool becomes bare flag",
			cfg:  docpdf.RenderConfig{"enable-forms": true},
			want: []string{"--enable-forms"},
		},
		{
			name: "false bool is omitted",
			cfg:  docpdf.RenderConfig{"enable-forms": false},
			want: nil,
		},
		{
			name: "float formatted without trailing zeros",
			cfg:  docpdf.RenderConfig{"margin-top": 30.48},
			want: []string{"--margin-top", "30.48"},
		},
		{
			name: "int and string values",
			cfg:  docpdf.RenderConfig{"header-font-size": 10, "page-size": "Letter"},
			want: []string{"--header-font-size", "10", "--page-size", "Letter"},
		},
		{
			name: "keys sorted for reproducible invocations",
			cfg: docpdf.RenderConfig{
				"page-size":    "A4",
				"enable-forms": true,
				"margin-left":  25.4,
			},
			want: []string{"--enable-forms", "--margin-left", "25.4", "--page-size", "A4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := docpdf.BuildEngineArgs(tt.cfg)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("BuildEngineArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}
