// Package sigctx derives the process lifetime context from the
// termination signals the deployment sends.
package sigctx

import (
	"context"
	"os/signal"
	"syscall"
)

// NotifyContext returns a context that ends on SIGINT, SIGTERM or
// SIGQUIT. The cancel func releases the signal watcher.
func NotifyContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(),
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
}
