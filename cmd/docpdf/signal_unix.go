//go:build !windows

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// notifyContext ties SIGINT and SIGTERM to the context handed to
// runCompile, so an interrupted compile stops rendering mid-flight and
// the PDF engine (a wkhtmltopdf process or a headless Chrome) shuts
// down instead of being orphaned. Call stop() to restore the default
// signal behavior.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
