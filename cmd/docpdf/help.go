package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  compile    Compile markdown directories into one PDF")
	fmt.Fprintln(w, "  init       Write a starter config file")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'docpdf help <command>' for details on a specific command.")
}

// printCompileUsage prints usage for the compile command.
func printCompileUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: docpdf compile <dir> [<dir>...] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Compile every markdown file in the given directories into one PDF.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  dir    Source directory searched (non-recursively) for *.md files")
	fmt.Fprintln(w, "         (optional if the config file lists sources.dirs)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file path")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --overwrite           Replace an existing output file")
	fmt.Fprintln(w, "      --html-only           Output HTML only, skip PDF")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>           Document title")
	fmt.Fprintln(w, "      --base-dir <path>     Base directory for relative links")
	fmt.Fprintln(w, "      --token <k=v>         Token substitution (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling and Layout:")
	fmt.Fprintln(w, "      --style <s>           CSS style name, file path, or raw CSS")
	fmt.Fprintln(w, "      --asset-path <path>   Custom asset directory")
	fmt.Fprintln(w, "      --layout <s>          Layout template name")
	fmt.Fprintln(w, "      --correct-bottom-margin")
	fmt.Fprintln(w, "                            Derive the bottom margin from margin-bottom")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Engine:")
	fmt.Fprintln(w, "      --engine <s>          PDF engine: wkhtmltopdf, chrome")
	fmt.Fprintln(w, "      --engine-binary <s>   Override the wkhtmltopdf binary path")
	fmt.Fprintln(w, "  -t, --timeout <d>         PDF generation timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed progress")
}

// runHelp prints help for a specific command.
func runHelp(args []string, deps *Dependencies) {
	if len(args) == 0 {
		printUsage(deps.Stdout)
		return
	}

	switch args[0] {
	case "compile":
		printCompileUsage(deps.Stdout)
	case "init":
		fmt.Fprintln(deps.Stdout, "Usage: docpdf init [path]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Write a starter config file (default: docpdf.yaml).")
		fmt.Fprintln(deps.Stdout, "Refuses to replace an existing file.")
	case "version":
		fmt.Fprintln(deps.Stdout, "Usage: docpdf version")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(deps.Stdout, "Usage: docpdf help [command]")
		fmt.Fprintln(deps.Stdout)
		fmt.Fprintln(deps.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
	}
}
