package main

import (
	"io"
	"os"
)

// Dependencies carries the streams docpdf commands write to. Progress
// messages and the "Wrote <path>" confirmations go to Stdout, errors and
// usage go to Stderr. Tests swap in buffers to assert command output.
type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer
}

// DefaultDeps wires the process streams used when docpdf runs as a binary.
func DefaultDeps() *Dependencies {
	return &Dependencies{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
