// Package logger provides structured logging for the deno front end.
//
//   - logger.go: slog-backed Logger, level and format selection
//   - context.go: logger and operating-mode propagation through context
//
// The front end is quiet by default (warn level). -D/--log-debug switches
// the invocation's logger to debug, which traces argument classification
// and engine configuration calls.
package logger
