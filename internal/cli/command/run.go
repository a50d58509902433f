package command

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/yndnr/deno-go/internal/cli/config"
	"github.com/yndnr/deno-go/internal/cli/flags"
	"github.com/yndnr/deno-go/internal/engine"
	"github.com/yndnr/deno-go/internal/infra/buildinfo"
	"github.com/yndnr/deno-go/internal/telemetry/logger"
)

// ExitError carries the process exit code for a failed invocation.
type ExitError struct {
	Code int
	Err  error
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// App is one configured front end. The zero value is not usable; use New.
type App struct {
	stdout       io.Writer
	stderr       io.Writer
	runner       Runner
	configurator engine.Configurator
	loadConfig   func() (*config.Config, error)
}

// Option configures an App.
type Option func(*App)

// WithStdout sets where help, version and runner output go.
func WithStdout(w io.Writer) Option {
	return func(a *App) {
		a.stdout = w
	}
}

// WithStderr sets where errors and logs go.
func WithStderr(w io.Writer) Option {
	return func(a *App) {
		a.stderr = w
	}
}

// WithRunner replaces the dry-run runner with a real script engine.
func WithRunner(r Runner) Option {
	return func(a *App) {
		a.runner = r
	}
}

// WithConfigurator sets the engine configuration sink.
func WithConfigurator(c engine.Configurator) Option {
	return func(a *App) {
		a.configurator = c
	}
}

// New creates an App writing to the process's stdout and stderr, with a
// dry-run runner on stdout and a recording engine configurator on stderr.
func New(opts ...Option) *App {
	a := &App{
		stdout:     os.Stdout,
		stderr:     os.Stderr,
		loadConfig: config.Load,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.runner == nil {
		a.runner = &DryRun{Out: a.stdout}
	}
	if a.configurator == nil {
		a.configurator = &engine.Recorder{Out: a.stderr}
	}
	return a
}

// Run handles one invocation. args excludes the program name. Failures are
// reported on stderr and returned as *ExitError.
func (a *App) Run(ctx context.Context, args []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return a.fail(config.Default(), err)
	}

	inv, err := flags.SetFlags(args)
	if err != nil {
		return a.fail(cfg, err)
	}

	if inv.Result.Help {
		text, err := HelpText()
		if err != nil {
			return a.fail(cfg, err)
		}
		fmt.Fprint(a.stdout, text)
		return nil
	}

	log, err := logger.New(logger.ForDebug(inv.Flags.LogDebug, a.stderr))
	if err != nil {
		return a.fail(cfg, err)
	}
	ctx = logger.WithLogger(ctx, log)
	ctx = logger.WithMode(ctx, flags.ModeName(inv.Result.Selection))

	logger.L(ctx).Debug("arguments classified",
		"flags", inv.Result.PresentFlags(),
		"permissions", inv.Flags.Permissions(),
		"argv", inv.Argv,
		"deno_dir", cfg.DenoDir,
	)

	if err := engine.Apply(ctx, a.configurator, inv.Engine); err != nil {
		return a.fail(cfg, err)
	}
	if inv.Engine.PrintHelp {
		return nil
	}

	if inv.Flags.Version {
		fmt.Fprintln(a.stdout, buildinfo.String())
		return nil
	}

	plan := Plan{
		Mode:       flags.ModeName(inv.Result.Selection),
		Flags:      inv.Flags,
		Argv:       inv.Argv,
		ScriptArgs: inv.Result.Trailing(),
		Engine:     inv.Engine,
		Env:        *cfg,
	}
	if err := a.runner.Run(ctx, plan); err != nil {
		return a.fail(cfg, err)
	}
	return nil
}

func (a *App) fail(cfg *config.Config, err error) error {
	prefix := color.New(color.FgRed, color.Bold)
	if cfg.NoColor {
		prefix.DisableColor()
	}

	fmt.Fprintf(a.stderr, "%s %v\n", prefix.Sprint("error:"), err)
	if ue, ok := flags.AsUsageError(err); ok {
		fmt.Fprintf(a.stderr, "\nUSAGE:\n    %s\n\nFor more information try --help\n", ue.Usage)
	}
	return &ExitError{Code: 1, Err: err}
}

// Main runs one invocation and returns the process exit code.
func Main(ctx context.Context, args []string, opts ...Option) int {
	err := New(opts...).Run(ctx, args)
	if err == nil {
		return 0
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return 1
}
