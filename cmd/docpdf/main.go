package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containerized environments.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verboseRequested(os.Args[1:]) {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	defer stop()

	deps := DefaultDeps()
	code := run(ctx, os.Args[1:], deps)
	stop()
	os.Exit(code)
}

// verboseRequested checks the raw arguments before flag parsing so
// GOMAXPROCS logging can be decided up front.
func verboseRequested(args []string) bool {
	return slices.Contains(args, "-v") || slices.Contains(args, "--verbose")
}

// run dispatches the command and returns the process exit code.
func run(ctx context.Context, args []string, deps *Dependencies) int {
	if len(args) == 0 {
		printUsage(deps.Stderr)
		return ExitUsage
	}

	switch args[0] {
	case "compile":
		flags, positional, err := parseCompileFlags(args[1:])
		if err != nil {
			return ExitUsage
		}
		if err := runCompile(ctx, positional, flags, deps); err != nil {
			if errors.Is(err, ErrNoInput) {
				fmt.Fprintln(deps.Stderr, err)
				printCompileUsage(deps.Stderr)
				return ExitUsage
			}
			fmt.Fprintln(deps.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "init":
		if err := runInit(args[1:], deps); err != nil {
			fmt.Fprintln(deps.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess
	case "version":
		fmt.Fprintf(deps.Stdout, "docpdf %s\n", Version)
		return ExitSuccess
	case "help", "--help", "-h":
		runHelp(args[1:], deps)
		return ExitSuccess
	default:
		fmt.Fprintf(deps.Stderr, "Unknown command: %s\n", args[0])
		printUsage(deps.Stderr)
		return ExitUsage
	}
}
