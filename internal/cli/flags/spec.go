package flags

// ProgramName is the placeholder that starts every residual argv and every
// argv forwarded to the engine.
const ProgramName = "deno"

// UsageLine is attached to every parse error.
const UsageLine = "deno [OPTIONS] [SUBCOMMAND]"

// Canonical flag names.
const (
	FlagVersion            = "version"
	FlagAllowRead          = "allow-read"
	FlagAllowWrite         = "allow-write"
	FlagAllowNet           = "allow-net"
	FlagAllowEnv           = "allow-env"
	FlagAllowRun           = "allow-run"
	FlagAllowHighPrecision = "allow-high-precision"
	FlagAllowAll           = "allow-all"
	FlagNoPrompt           = "no-prompt"
	FlagLogDebug           = "log-debug"
	FlagReload             = "reload"
	FlagV8Options          = "v8-options"
	FlagV8Flags            = "v8-flags"
	FlagTypes              = "types"
	FlagPrefetch           = "prefetch"
)

// Subcommand names.
const (
	CmdInfo = "info"
	CmdEval = "eval"
	CmdFmt  = "fmt"
)

// FlagDef declares one global flag.
type FlagDef struct {
	Name       string
	Short      rune // 0 when the flag has no short spelling
	Long       string
	TakesValue bool
	Usage      string
	// Implies lists flags that are set whenever this one is present.
	Implies []string
}

// Arity is the positional requirement of a subcommand.
type Arity int

const (
	ExactlyOne Arity = iota + 1
	OneOrMore
)

// SubcommandDef declares one built-in subcommand.
type SubcommandDef struct {
	Name  string
	Arg   string // positional placeholder shown in help
	Arity Arity
	Usage string
}

var flagDefs = []FlagDef{
	{Name: FlagVersion, Short: 'v', Long: "version", Usage: "Print the version"},
	{Name: FlagAllowRead, Long: "allow-read", Usage: "Allow file system read access"},
	{Name: FlagAllowWrite, Long: "allow-write", Usage: "Allow file system write access"},
	{Name: FlagAllowNet, Long: "allow-net", Usage: "Allow network access"},
	{Name: FlagAllowEnv, Long: "allow-env", Usage: "Allow environment access"},
	{Name: FlagAllowRun, Long: "allow-run", Usage: "Allow running subprocesses"},
	{Name: FlagAllowHighPrecision, Long: "allow-high-precision", Usage: "Allow high precision time measurement"},
	{
		Name:  FlagAllowAll,
		Short: 'A',
		Long:  "allow-all",
		Usage: "Allow all permissions",
		Implies: []string{
			FlagAllowRead, FlagAllowWrite, FlagAllowNet,
			FlagAllowEnv, FlagAllowRun, FlagAllowHighPrecision,
		},
	},
	{Name: FlagNoPrompt, Long: "no-prompt", Usage: "Do not use prompts"},
	{Name: FlagLogDebug, Short: 'D', Long: "log-debug", Usage: "Log debug output"},
	{Name: FlagReload, Short: 'r', Long: "reload", Usage: "Reload source code cache (recompile TypeScript)"},
	{Name: FlagV8Options, Long: "v8-options", Usage: "Print V8 command line options"},
	{Name: FlagV8Flags, Long: "v8-flags", TakesValue: true, Usage: "Set V8 command line options"},
	{Name: FlagTypes, Long: "types", Usage: "Print runtime TypeScript declarations"},
	{Name: FlagPrefetch, Long: "prefetch", Usage: "Prefetch the dependencies"},
}

var subcommandDefs = []SubcommandDef{
	{Name: CmdInfo, Arg: "file", Arity: ExactlyOne, Usage: "Show source file related info"},
	{Name: CmdEval, Arg: "code", Arity: ExactlyOne, Usage: "Eval script"},
	{Name: CmdFmt, Arg: "files", Arity: OneOrMore, Usage: "Format files"},
}

var (
	byLong    = make(map[string]FlagDef, len(flagDefs))
	byShort   = make(map[rune]FlagDef)
	byName    = make(map[string]FlagDef, len(flagDefs))
	subByName = make(map[string]SubcommandDef, len(subcommandDefs))
)

func init() {
	for _, f := range flagDefs {
		byLong[f.Long] = f
		byName[f.Name] = f
		if f.Short != 0 {
			byShort[f.Short] = f
		}
	}
	for _, s := range subcommandDefs {
		subByName[s.Name] = s
	}
}

// Flags returns the global flag catalog in declaration order.
func Flags() []FlagDef {
	out := make([]FlagDef, len(flagDefs))
	copy(out, flagDefs)
	return out
}

// Subcommands returns the built-in subcommands in declaration order.
func Subcommands() []SubcommandDef {
	out := make([]SubcommandDef, len(subcommandDefs))
	copy(out, subcommandDefs)
	return out
}

// LookupLong finds a flag by its long spelling, without the leading dashes.
func LookupLong(long string) (FlagDef, bool) {
	f, ok := byLong[long]
	return f, ok
}

// LookupShort finds a flag by its short spelling.
func LookupShort(short rune) (FlagDef, bool) {
	f, ok := byShort[short]
	return f, ok
}

// LookupName finds a flag by canonical name.
func LookupName(name string) (FlagDef, bool) {
	f, ok := byName[name]
	return f, ok
}

// LookupSubcommand finds a built-in subcommand.
func LookupSubcommand(name string) (SubcommandDef, bool) {
	s, ok := subByName[name]
	return s, ok
}
