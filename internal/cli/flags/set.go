package flags

import "github.com/yndnr/deno-go/internal/engine"

// Invocation is everything the front end derives from one argv.
type Invocation struct {
	Result *ParseResult
	Flags  RuntimeFlags
	Argv   []string // residual argv for the script engine
	Engine engine.Options
}

// SetFlags parses args (without the program name) and assembles the runtime
// flags, the residual argv and the engine options.
func SetFlags(args []string) (Invocation, error) {
	res, err := Parse(args)
	if err != nil {
		return Invocation{}, err
	}
	return Invocation{
		Result: res,
		Flags:  Build(res),
		Argv:   Residual(res),
		Engine: EngineOptions(res),
	}, nil
}
