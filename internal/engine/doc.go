// Package engine is the boundary to the script engine's process-wide
// configuration.
//
// The front end never mutates engine state while parsing. It produces an
// Options value and the caller hands it to Apply exactly once, before any
// script runs:
//
//	opts := flags.EngineOptions(res)
//	if err := engine.Apply(ctx, v8, opts); err != nil { ... }
//	if opts.PrintHelp { return } // the engine printed its own help
//
// Configurator is not safe for concurrent use; engines typically keep a
// single global flag table.
package engine
