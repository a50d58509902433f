package logger

import "context"

type contextKey string

const (
	loggerKey contextKey = "deno.logger"
	modeKey   contextKey = "deno.mode"
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, l Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger from context.
// Returns the default logger if none is set.
func FromContext(ctx context.Context) Logger {
	if l, ok := ctx.Value(loggerKey).(Logger); ok {
		return l
	}
	return Default()
}

// WithMode records the selected operating mode (run, info, eval, fmt, none).
func WithMode(ctx context.Context, mode string) context.Context {
	return context.WithValue(ctx, modeKey, mode)
}

// ModeFromContext extracts the operating mode from context.
func ModeFromContext(ctx context.Context) string {
	if m, ok := ctx.Value(modeKey).(string); ok {
		return m
	}
	return ""
}

// L is FromContext enriched with the mode recorded in ctx.
func L(ctx context.Context) Logger {
	l := FromContext(ctx)
	if mode := ModeFromContext(ctx); mode != "" {
		l = l.With("mode", mode)
	}
	return l
}
