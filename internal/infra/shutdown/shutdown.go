package shutdown

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Signals are the signals that cancel an invocation.
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// WithSignals returns a context canceled on the first of Signals. A second
// signal is left to the default handler, so it terminates the process.
// stop releases the signal registration and must be called.
func WithSignals(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, Signals...)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case <-sigCh:
			cancel()
			signal.Stop(sigCh)
		case <-ctx.Done():
		}
	}()

	stop := func() {
		cancel()
		<-done
		signal.Stop(sigCh)
	}
	return ctx, stop
}
