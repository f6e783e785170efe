//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext ties Ctrl+C to the context handed to runCompile, so an
// interrupted compile stops rendering and the PDF engine shuts down
// instead of being orphaned. SIGTERM does not exist on Windows, so only
// os.Interrupt is watched. Call stop() to restore the default behavior.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
