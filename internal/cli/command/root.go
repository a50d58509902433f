package command

import (
	"bytes"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/deno-go/internal/cli/config"
	"github.com/yndnr/deno-go/internal/cli/flags"
	"github.com/yndnr/deno-go/internal/infra/buildinfo"
)

var envHelp = fmt.Sprintf(`ENVIRONMENT VARIABLES:
   %-10s Set deno's base directory
   %-10s Set to disable color
`, config.EnvDenoDir, config.EnvNoColor)

// HelpApp describes the flag catalog as a cli.App. It is only used to render
// help; parsing never goes through it.
func HelpApp() *cli.App {
	app := &cli.App{
		Name:                  flags.ProgramName,
		HelpName:              flags.ProgramName,
		Usage:                 "A secure TypeScript runtime",
		UsageText:             flags.UsageLine + "\n" + flags.ProgramName + " <script> [ARGS]...",
		Version:               buildinfo.Version,
		HideVersion:           true,
		HideHelp:              true,
		Flags:                 globalFlags(),
		Commands:              subcommands(),
		CustomAppHelpTemplate: cli.AppHelpTemplate + "\n" + envHelp,
	}
	return app
}

// globalFlags mirrors the flag catalog, plus the built-in help flag.
func globalFlags() []cli.Flag {
	var out []cli.Flag
	for _, def := range flags.Flags() {
		var aliases []string
		if def.Short != 0 {
			aliases = []string{string(def.Short)}
		}
		if def.TakesValue {
			out = append(out, &cli.StringFlag{
				Name:    def.Long,
				Aliases: aliases,
				Usage:   def.Usage,
			})
			continue
		}
		out = append(out, &cli.BoolFlag{
			Name:    def.Long,
			Aliases: aliases,
			Usage:   def.Usage,
		})
	}
	return append(out, &cli.BoolFlag{
		Name:    "help",
		Aliases: []string{"h"},
		Usage:   "Prints help information",
	})
}

func subcommands() []*cli.Command {
	var out []*cli.Command
	for _, sub := range flags.Subcommands() {
		argsUsage := "<" + sub.Arg + ">"
		if sub.Arity == flags.OneOrMore {
			argsUsage += "..."
		}
		out = append(out, &cli.Command{
			Name:      sub.Name,
			Usage:     sub.Usage,
			ArgsUsage: argsUsage,
		})
	}
	// Not a real command: any other first word is the script to run.
	return append(out, &cli.Command{
		Name:  "<script>",
		Usage: "Script to run",
	})
}

// HelpText renders the help screen.
func HelpText() (string, error) {
	var buf bytes.Buffer

	app := HelpApp()
	app.Writer = &buf
	app.Setup()

	if err := cli.ShowAppHelp(cli.NewContext(app, nil, nil)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
