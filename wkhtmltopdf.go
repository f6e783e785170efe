package docpdf

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strconv"

	"github.com/alnah/go-docpdf/internal/fileutil"
	"github.com/alnah/go-docpdf/internal/process"
)

// DefaultEngineBinary is the external renderer invoked by the default
// engine.
const DefaultEngineBinary = "wkhtmltopdf"

// CommandRunner abstracts command execution to enable testing without
// real subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes the command, killing the whole process tree when the
// context is cancelled.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.Cancel = func() error {
		if cmd.Process != nil {
			process.KillProcessGroup(cmd.Process.Pid)
		}
		return cmd.Process.Kill()
	}

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

// WkhtmltopdfEngine renders PDFs by invoking the wkhtmltopdf binary with
// the derived option map translated to command-line flags.
type WkhtmltopdfEngine struct {
	binary string
	runner CommandRunner
}

// NewWkhtmltopdfEngine creates the default external-process engine.
func NewWkhtmltopdfEngine() *WkhtmltopdfEngine {
	return &WkhtmltopdfEngine{binary: DefaultEngineBinary, runner: &ExecRunner{}}
}

// NewWkhtmltopdfEngineWith creates an engine with a custom binary and
// runner (for testing or alternative wkhtmltopdf builds).
func NewWkhtmltopdfEngineWith(binary string, runner CommandRunner) *WkhtmltopdfEngine {
	if binary == "" {
		binary = DefaultEngineBinary
	}
	if runner == nil {
		runner = &ExecRunner{}
	}
	return &WkhtmltopdfEngine{binary: binary, runner: runner}
}

// Render writes the HTML to a temp file, invokes the binary, and reads
// back the produced PDF.
func (e *WkhtmltopdfEngine) Render(ctx context.Context, htmlContent string, cfg RenderConfig) ([]byte, error) {
	htmlPath, cleanupHTML, err := fileutil.WriteTempFile(htmlContent, "html")
	if err != nil {
		return nil, err
	}
	defer cleanupHTML()

	pdfPath, cleanupPDF, err := fileutil.WriteTempFile("", "pdf")
	if err != nil {
		return nil, err
	}
	defer cleanupPDF()

	args := append(BuildEngineArgs(cfg), htmlPath, pdfPath)
	if _, stderr, err := e.runner.Run(ctx, e.binary, args...); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderProcess, stderr, err)
	}

	pdf, err := os.ReadFile(pdfPath) // #nosec G304 -- temp path created above
	if err != nil {
		return nil, fmt.Errorf("%w: reading output: %v", ErrRenderProcess, err)
	}
	return pdf, nil
}

// Close is a no-op; the engine holds no persistent resources.
func (e *WkhtmltopdfEngine) Close() error {
	return nil
}

// BuildEngineArgs converts the option map into command-line flags, in
// sorted key order so invocations are reproducible. Booleans become bare
// flags when true and are omitted when false; numbers are formatted
// without a unit suffix (the renderer defaults to millimeters).
func BuildEngineArgs(cfg RenderConfig) []string {
	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var args []string
	for _, k := range keys {
		flag := "--" + k
		switch v := cfg[k].(type) {
		case bool:
			if v {
				args = append(args, flag)
			}
		case float64:
			args = append(args, flag, strconv.FormatFloat(v, 'f', -1, 64))
		case int:
			args = append(args, flag, strconv.Itoa(v))
		case string:
			args = append(args, flag, v)
		default:
			args = append(args, flag, fmt.Sprint(v))
		}
	}
	return args
}
