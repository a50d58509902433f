package flags

import "fmt"

// Residual builds the argv handed to the script engine: ProgramName, then
// the subcommand's positionals or the script path and its arguments. The
// result is opaque here and is never parsed again.
func Residual(res *ParseResult) []string {
	argv := []string{ProgramName}

	switch sel := res.Selection.(type) {
	case Eval:
		argv = append(argv, sel.Code)
	case Info:
		argv = append(argv, sel.File)
	case Fmt:
		argv = append(argv, sel.Files...)
	case RunScript:
		argv = append(argv, sel.Path)
		argv = append(argv, sel.Args...)
	case NoSelection, nil:
	default:
		panic(fmt.Sprintf("flags: unknown selection %T", sel))
	}

	return argv
}
