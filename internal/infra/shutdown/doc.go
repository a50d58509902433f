// Package shutdown ties the lifetime of one invocation to process signals.
//
// Usage:
//
//	ctx, stop := shutdown.WithSignals(context.Background())
//	defer stop()
//	// pass ctx to the runner; it is canceled on SIGINT or SIGTERM
package shutdown
