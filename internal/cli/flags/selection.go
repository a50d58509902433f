package flags

// Selection is the operating mode chosen by an invocation. Exactly one of
// NoSelection, Info, Eval, Fmt or RunScript is produced by every successful
// Parse.
type Selection interface {
	selection()
}

// NoSelection means only global flags were given (e.g. "deno --version").
type NoSelection struct{}

// Info is "deno info <file>".
type Info struct {
	File string
}

// Eval is "deno eval <code>".
type Eval struct {
	Code string
}

// Fmt is "deno fmt <files>...".
type Fmt struct {
	Files []string
}

// RunScript is the default mode: the first word that is not a flag or a
// subcommand names the script, and everything after it belongs to the script.
type RunScript struct {
	Path string
	Args []string
}

func (NoSelection) selection() {}
func (Info) selection()        {}
func (Eval) selection()        {}
func (Fmt) selection()         {}
func (RunScript) selection()   {}

// ModeName returns a short label for logs and printed plans.
func ModeName(s Selection) string {
	switch s.(type) {
	case Info:
		return CmdInfo
	case Eval:
		return CmdEval
	case Fmt:
		return CmdFmt
	case RunScript:
		return "run"
	default:
		return "none"
	}
}
