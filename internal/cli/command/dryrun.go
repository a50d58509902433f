package command

import (
	"context"
	"io"

	"github.com/yndnr/deno-go/internal/cli/config"
	"github.com/yndnr/deno-go/internal/cli/flags"
	"github.com/yndnr/deno-go/internal/cli/output"
	"github.com/yndnr/deno-go/internal/engine"
	"github.com/yndnr/deno-go/internal/telemetry/logger"
)

// Plan is what the front end hands to the script engine.
type Plan struct {
	Mode  string             `json:"mode" yaml:"mode"`
	Flags flags.RuntimeFlags `json:"flags" yaml:"flags"`
	Argv  []string           `json:"argv" yaml:"argv"`
	// ScriptArgs are the arguments after the script path, as given.
	ScriptArgs []string       `json:"script_args,omitempty" yaml:"script_args,omitempty"`
	Engine     engine.Options `json:"engine" yaml:"engine,omitempty"`
	Env        config.Config  `json:"env" yaml:"env"`
}

// Runner executes a plan. The script engine implements it.
type Runner interface {
	Run(ctx context.Context, plan Plan) error
}

// DryRun prints the plan instead of executing it: YAML on a terminal, JSON
// otherwise.
type DryRun struct {
	Out io.Writer
	// Format overrides terminal detection when set.
	Format output.Format
}

// Run implements Runner.
func (d *DryRun) Run(ctx context.Context, plan Plan) error {
	format := d.Format
	if format == "" {
		format = output.Detect(d.Out)
	}
	logger.L(ctx).Debug("printing plan", "format", format)
	return output.NewFormatter(format).Format(d.Out, plan)
}
