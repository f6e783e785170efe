package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alnah/go-docpdf/internal/config"
)

func TestMergeTokens(t *testing.T) {
	t.Parallel()

	t.Run("flag tokens win over config", func(t *testing.T) {
		t.Parallel()

		tokens, err := mergeTokens(
			map[string]any{"version": "1.0", "client": "ACME"},
			[]string{"version=2.0"},
		)
		if err != nil {
			t.Fatalf("mergeTokens() error = %v", err)
		}
		if tokens["version"] != "2.0" {
			t.Errorf("version = %v, want flag value", tokens["version"])
		}
		if tokens["client"] != "ACME" {
			t.Errorf("client = %v, want config value retained", tokens["client"])
		}
	})

	t.Run("empty inputs yield nil", func(t *testing.T) {
		t.Parallel()

		tokens, err := mergeTokens(nil, nil)
		if err != nil || tokens != nil {
			t.Errorf("mergeTokens(nil, nil) = %v, %v", tokens, err)
		}
	})

	t.Run("malformed pair", func(t *testing.T) {
		t.Parallel()

		for _, pair := range []string{"noequals", "=value"} {
			if _, err := mergeTokens(nil, []string{pair}); !errors.Is(err, ErrBadToken) {
				t.Errorf("mergeTokens(%q) error = %v, want ErrBadToken", pair, err)
			}
		}
	})

	t.Run("value may contain equals", func(t *testing.T) {
		t.Parallel()

		tokens, err := mergeTokens(nil, []string{"query=a=b"})
		if err != nil {
			t.Fatalf("mergeTokens() error = %v", err)
		}
		if tokens["query"] != "a=b" {
			t.Errorf("query = %v, want a=b", tokens["query"])
		}
	})
}

func TestMergeFlags(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{
		Document: config.DocumentConfig{Title: "From Config"},
		Engine:   config.EngineConfig{Name: "wkhtmltopdf", Workers: 2},
	}
	flags := &compileFlags{
		document: documentFlags{title: "From Flag"},
		engine:   engineFlags{name: "chrome"},
		output:   outputFlags{overwrite: true, htmlOnly: true},
	}

	mergeFlags(flags, cfg)

	if cfg.Document.Title != "From Flag" {
		t.Errorf("Title = %q, want flag value", cfg.Document.Title)
	}
	if cfg.Engine.Name != "chrome" {
		t.Errorf("Engine.Name = %q, want flag value", cfg.Engine.Name)
	}
	if cfg.Engine.Workers != 2 {
		t.Errorf("Workers = %d, want config value retained", cfg.Engine.Workers)
	}
	if !cfg.Output.Overwrite || !cfg.Output.HTMLOnly {
		t.Errorf("Output = %+v, want overwrite and htmlOnly set", cfg.Output)
	}
}

func TestBuildOptionsBadTimeout(t *testing.T) {
	t.Parallel()

	for _, timeout := range []string{"banana", "-5s", "0s"} {
		cfg := &config.Config{Engine: config.EngineConfig{Timeout: timeout}}
		if _, err := buildOptions(cfg); !errors.Is(err, ErrBadTimeout) {
			t.Errorf("buildOptions(timeout=%q) error = %v, want ErrBadTimeout", timeout, err)
		}
	}
}

func TestResolveOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Config
		want string
	}{
		{
			name: "explicit path wins",
			cfg:  config.Config{Output: config.OutputConfig{Path: "out/report.pdf"}},
			want: "out/report.pdf",
		},
		{
			name: "default pdf name",
			cfg:  config.Config{},
			want: "document.pdf",
		},
		{
			name: "default html name in html-only mode",
			cfg:  config.Config{Output: config.OutputConfig{HTMLOnly: true}},
			want: "document.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := resolveOutputPath(&tt.cfg); got != tt.want {
				t.Errorf("resolveOutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseCompileFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseCompileFlags([]string{
		"docs", "appendix",
		"--title", "Manual",
		"-o", "manual.pdf",
		"--token", "version=3",
		"--token", "client=ACME",
		"--html-only",
		"-w", "4",
	})
	if err != nil {
		t.Fatalf("parseCompileFlags() error = %v", err)
	}
	if len(positional) != 2 || positional[0] != "docs" {
		t.Errorf("positional = %v", positional)
	}
	if flags.document.title != "Manual" || flags.output.path != "manual.pdf" {
		t.Errorf("flags = %+v", flags)
	}
	if len(flags.document.tokens) != 2 {
		t.Errorf("tokens = %v, want two entries", flags.document.tokens)
	}
	if !flags.output.htmlOnly || flags.engine.workers != 4 {
		t.Errorf("flags = %+v", flags)
	}
}

func TestRunCompileHTMLOnly(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "doc.md"), []byte("# Hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(t.TempDir(), "out.html")

	var stdout, stderr bytes.Buffer
	deps := &Dependencies{Stdout: &stdout, Stderr: &stderr}
	flags := &compileFlags{
		document: documentFlags{title: "Hello Doc"},
		output:   outputFlags{path: outPath, htmlOnly: true},
	}

	if err := runCompile(context.Background(), []string{srcDir}, flags, deps); err != nil {
		t.Fatalf("runCompile() error = %v", err)
	}

	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(html), "Hello") {
		t.Errorf("output missing content:\n%s", html)
	}
	if !strings.Contains(stdout.String(), "Wrote "+outPath) {
		t.Errorf("stdout = %q, want write confirmation", stdout.String())
	}
}

func TestRunCompileOutputExists(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "doc.md"), []byte("# Hello"), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(t.TempDir(), "out.html")
	if err := os.WriteFile(outPath, []byte("existing"), 0o600); err != nil {
		t.Fatal(err)
	}

	deps := &Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	flags := &compileFlags{output: outputFlags{path: outPath, htmlOnly: true}}

	err := runCompile(context.Background(), []string{srcDir}, flags, deps)
	if !errors.Is(err, ErrOutputExists) {
		t.Fatalf("runCompile() error = %v, want ErrOutputExists", err)
	}
	if got, _ := os.ReadFile(outPath); string(got) != "existing" {
		t.Errorf("output file modified without overwrite")
	}

	flags.output.overwrite = true
	if err := runCompile(context.Background(), []string{srcDir}, flags, deps); err != nil {
		t.Fatalf("runCompile() with overwrite error = %v", err)
	}
}

func TestRunCompileNoInput(t *testing.T) {
	t.Parallel()

	deps := &Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := runCompile(context.Background(), nil, &compileFlags{}, deps)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("runCompile() error = %v, want ErrNoInput", err)
	}
}

func TestRunCompileWithConfigFile(t *testing.T) {
	t.Parallel()

	srcDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(srcDir, "doc.md"), []byte("Version [[ .version ]]"), 0o600); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(t.TempDir(), "out.html")

	configPath := filepath.Join(t.TempDir(), "project.yaml")
	configYAML := "document:\n  title: Configured\nsources:\n  dirs:\n    - " + srcDir +
		"\noutput:\n  path: " + outPath + "\n  htmlOnly: true\ntokens:\n  version: \"7\"\n"
	if err := os.WriteFile(configPath, []byte(configYAML), 0o600); err != nil {
		t.Fatal(err)
	}

	deps := &Dependencies{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	flags := &compileFlags{common: commonFlags{config: configPath}}

	if err := runCompile(context.Background(), nil, flags, deps); err != nil {
		t.Fatalf("runCompile() error = %v", err)
	}

	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if !strings.Contains(string(html), "Version 7") {
		t.Errorf("config tokens not applied, got:\n%s", html)
	}
	if !strings.Contains(string(html), "<title>Configured</title>") {
		t.Errorf("config title not applied, got:\n%s", html)
	}
}
