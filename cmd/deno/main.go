// Package main provides the entry point for deno.
//
// deno classifies its command line into runtime flags, a mode and the
// argument vector seen by the script, forwards engine options, and hands
// the result to the script runner.
package main

import (
	"context"
	"os"

	"github.com/yndnr/deno-go/internal/cli/command"
	"github.com/yndnr/deno-go/internal/infra/shutdown"
)

func main() {
	ctx, stop := shutdown.WithSignals(context.Background())
	code := command.Main(ctx, os.Args[1:])
	stop()
	os.Exit(code)
}
