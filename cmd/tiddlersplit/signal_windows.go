//go:build windows

package main

import (
	"context"
	"os"
	"os/signal"
)

// notifyContext cancels the split between records on Ctrl+C.
// syscall.SIGTERM is not delivered on Windows.
func notifyContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt)
}
