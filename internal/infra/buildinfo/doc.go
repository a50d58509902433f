// Package buildinfo provides build information for the deno front end.
//
// This package exposes build-time information injected via ldflags:
//
//   - Version: Semantic version (e.g., "0.3.0")
//   - Commit: Git commit hash
//   - BuildTime: Build timestamp
//
// The Go version is taken from the running binary.
package buildinfo
