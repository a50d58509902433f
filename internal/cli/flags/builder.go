package flags

// RuntimeFlags are the permission and behavior switches of one invocation.
// Build returns them by value; there is nothing to mutate afterwards.
type RuntimeFlags struct {
	LogDebug           bool `json:"log_debug" yaml:"log_debug"`
	Version            bool `json:"version" yaml:"version"`
	Reload             bool `json:"reload" yaml:"reload"`
	AllowRead          bool `json:"allow_read" yaml:"allow_read"`
	AllowWrite         bool `json:"allow_write" yaml:"allow_write"`
	AllowNet           bool `json:"allow_net" yaml:"allow_net"`
	AllowEnv           bool `json:"allow_env" yaml:"allow_env"`
	AllowRun           bool `json:"allow_run" yaml:"allow_run"`
	AllowHighPrecision bool `json:"allow_high_precision" yaml:"allow_high_precision"`
	NoPrompts          bool `json:"no_prompts" yaml:"no_prompts"`
	Types              bool `json:"types" yaml:"types"`
	Prefetch           bool `json:"prefetch" yaml:"prefetch"`
	Info               bool `json:"info" yaml:"info"`
	Fmt                bool `json:"fmt" yaml:"fmt"`
	Eval               bool `json:"eval" yaml:"eval"`
}

// setters maps canonical flag names to their RuntimeFlags field. Flags that
// only feed the engine (v8-options, v8-flags) and umbrella flags have none.
var setters = map[string]func(*RuntimeFlags){
	FlagLogDebug:           func(f *RuntimeFlags) { f.LogDebug = true },
	FlagVersion:            func(f *RuntimeFlags) { f.Version = true },
	FlagReload:             func(f *RuntimeFlags) { f.Reload = true },
	FlagAllowRead:          func(f *RuntimeFlags) { f.AllowRead = true },
	FlagAllowWrite:         func(f *RuntimeFlags) { f.AllowWrite = true },
	FlagAllowNet:           func(f *RuntimeFlags) { f.AllowNet = true },
	FlagAllowEnv:           func(f *RuntimeFlags) { f.AllowEnv = true },
	FlagAllowRun:           func(f *RuntimeFlags) { f.AllowRun = true },
	FlagAllowHighPrecision: func(f *RuntimeFlags) { f.AllowHighPrecision = true },
	FlagNoPrompt:           func(f *RuntimeFlags) { f.NoPrompts = true },
	FlagTypes:              func(f *RuntimeFlags) { f.Types = true },
	FlagPrefetch:           func(f *RuntimeFlags) { f.Prefetch = true },
}

// Build maps a ParseResult onto RuntimeFlags. Umbrella flags set every flag
// they imply; setting a field twice is harmless.
func Build(res *ParseResult) RuntimeFlags {
	var flags RuntimeFlags

	for _, name := range res.PresentFlags() {
		def, _ := LookupName(name)
		if set, ok := setters[def.Name]; ok {
			set(&flags)
		}
		for _, implied := range def.Implies {
			setters[implied](&flags)
		}
	}

	switch res.Selection.(type) {
	case Info:
		flags.Info = true
	case Eval:
		flags.Eval = true
	case Fmt:
		flags.Fmt = true
	case RunScript, NoSelection:
	}

	return flags
}

// Permissions lists the granted permission flags by canonical name.
func (f RuntimeFlags) Permissions() []string {
	var granted []string
	for _, p := range []struct {
		name string
		on   bool
	}{
		{FlagAllowRead, f.AllowRead},
		{FlagAllowWrite, f.AllowWrite},
		{FlagAllowNet, f.AllowNet},
		{FlagAllowEnv, f.AllowEnv},
		{FlagAllowRun, f.AllowRun},
		{FlagAllowHighPrecision, f.AllowHighPrecision},
	} {
		if p.on {
			granted = append(granted, p.name)
		}
	}
	return granted
}
