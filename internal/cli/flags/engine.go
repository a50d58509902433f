package flags

import "github.com/yndnr/deno-go/internal/engine"

// EngineOptions extracts --v8-options and --v8-flags into the configuration
// object the caller passes to engine.Apply. Option names are not checked.
func EngineOptions(res *ParseResult) engine.Options {
	return engine.Options{
		PrintHelp: res.Present(FlagV8Options),
		Flags:     engine.SplitFlags(res.Values(FlagV8Flags)...),
	}
}
