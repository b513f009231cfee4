package app

import (
	"context"
	"os/signal"
	"syscall"
)

// Context returns a background context cancelled on SIGINT or SIGTERM.
// Commands check it between reading and writing, so an interrupted merge
// leaves the base file as it was.
func Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
