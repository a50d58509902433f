package engine

import (
	"context"
	"errors"
	"strings"

	"github.com/yndnr/deno-go/internal/telemetry/logger"
)

// ProgramName is argv[0] of every forwarded option list.
const ProgramName = "deno"

// HelpOption asks the engine to print its option help.
const HelpOption = "--v8-options"

// ErrNoConfigurator is returned by Apply when there is something to forward
// but nobody to forward it to.
var ErrNoConfigurator = errors.New("engine: no configurator")

// Options is the engine configuration requested by one invocation.
type Options struct {
	// PrintHelp is set by --v8-options. The caller stops after Apply.
	PrintHelp bool `json:"print_help,omitempty" yaml:"print_help,omitempty"`
	// Flags are the tuning options from --v8-flags, in order, without argv[0].
	Flags []string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// Empty reports whether nothing needs forwarding.
func (o Options) Empty() bool {
	return !o.PrintHelp && len(o.Flags) == 0
}

// HelpArgv is the argv sent for a help request.
func (o Options) HelpArgv() []string {
	return []string{ProgramName, HelpOption}
}

// FlagArgv is the argv sent for tuning options, or nil if there are none.
func (o Options) FlagArgv() []string {
	if len(o.Flags) == 0 {
		return nil
	}
	return append([]string{ProgramName}, o.Flags...)
}

// SplitFlags turns --v8-flags values into individual options. Each value is
// a comma-separated list; empty items are dropped.
func SplitFlags(values ...string) []string {
	var out []string
	for _, v := range values {
		for _, item := range strings.Split(v, ",") {
			if item = strings.TrimSpace(item); item != "" {
				out = append(out, item)
			}
		}
	}
	return out
}

// Configurator receives engine options in command-line form. It returns the
// arguments it did not recognize, argv[0] included, the way V8's
// SetFlagsFromCommandLine leaves them behind.
type Configurator interface {
	SetFlags(argv []string) []string
}

// Apply forwards opts to c: the help request first, then the tuning options.
// Each is sent at most once. Option names are not inspected; whatever the
// engine rejects is logged and otherwise ignored.
func Apply(ctx context.Context, c Configurator, opts Options) error {
	if opts.Empty() {
		return nil
	}
	if c == nil {
		return ErrNoConfigurator
	}

	log := logger.L(ctx)

	if opts.PrintHelp {
		log.Debug("forwarding engine help request")
		c.SetFlags(opts.HelpArgv())
		return nil
	}

	argv := opts.FlagArgv()
	log.Debug("forwarding engine flags", "argv", argv)
	rest := c.SetFlags(argv)
	if len(rest) > 1 {
		log.Warn("engine ignored unrecognized flags", "flags", rest[1:])
	}
	return nil
}
