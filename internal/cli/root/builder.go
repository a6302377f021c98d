package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/cli/spec"
)

const (
	shellCommand = "shell"
	runCommand   = "run"
	runAlias     = "exec"
)

// BuildApp constructs the process CLI. Every spec command that is not
// shell-only becomes a subcommand whose raw arguments go to the dispatcher
// untouched.
func BuildApp(specDoc *spec.Spec, deps Dependencies) (*cli.Command, error) {
	if specDoc == nil {
		return nil, fmt.Errorf("spec is nil")
	}
	if deps.Open == nil {
		return nil, fmt.Errorf("session opener is nil")
	}
	app := &cli.Command{
		Name:            specDoc.App.Name,
		Usage:           specDoc.App.Summary,
		Description:     specDoc.App.Summary,
		Flags:           globalFlags(),
		Writer:          deps.Stdout,
		ErrWriter:       deps.Stderr,
		HideHelpCommand: true,
		// Exit codes are mapped by the caller; never exit from inside Run.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
	app.Before = func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
		if cmd != nil && cmd.Bool(flagVersion) {
			out := deps.Stdout
			if out == nil {
				out = io.Discard
			}
			_, _ = fmt.Fprintf(out, "%s %s\n", specDoc.App.Name, deps.Version)
			return ctx, cli.Exit("", 0)
		}
		return ctx, nil
	}
	app.Action = func(ctx context.Context, cmd *cli.Command) error {
		return runShell(ctx, cmd, deps)
	}
	app.Commands = append(app.Commands,
		&cli.Command{
			Name:  shellCommand,
			Usage: "start the interactive shell (default)",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runShell(ctx, cmd, deps)
			},
		},
		&cli.Command{
			Name:            runCommand,
			Aliases:         []string{runAlias},
			Usage:           "run one command by name or alias",
			ArgsUsage:       "NAME [ARGS...]",
			SkipFlagParsing: true,
			Action: func(ctx context.Context, cmd *cli.Command) error {
				args := cmd.Args().Slice()
				if len(args) == 0 {
					return cli.Exit("run: command name is required", 1)
				}
				return runOnce(ctx, cmd, deps, args[0], args[1:])
			},
		},
	)
	for _, cmdSpec := range specDoc.ProcessCommands() {
		sub, err := buildCommand(cmdSpec, deps)
		if err != nil {
			return nil, err
		}
		app.Commands = append(app.Commands, sub)
	}
	return app, nil
}

func buildCommand(cmdSpec spec.Command, deps Dependencies) (*cli.Command, error) {
	def, err := command.DefinitionFromSpec(cmdSpec)
	if err != nil {
		return nil, err
	}
	name := cmdSpec.Name
	return &cli.Command{
		Name:            name,
		Aliases:         cmdSpec.Aliases,
		Usage:           def.Description,
		ArgsUsage:       def.Params.Format(),
		Hidden:          cmdSpec.Hidden,
		SkipFlagParsing: true,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runOnce(ctx, cmd, deps, name, cmd.Args().Slice())
		},
	}, nil
}

func runShell(ctx context.Context, cmd *cli.Command, deps Dependencies) error {
	session, err := deps.Open(ctx, deps, globalsFrom(cmd.Root()), true)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()
	return session.Shell(ctx)
}

func runOnce(ctx context.Context, cmd *cli.Command, deps Dependencies, name string, args []string) error {
	session, err := deps.Open(ctx, deps, globalsFrom(cmd.Root()), false)
	if err != nil {
		return err
	}
	defer func() { _ = session.Close() }()
	if err := session.Dispatch(ctx, name, args); err != nil {
		if errors.Is(err, command.ErrQuit) {
			return nil
		}
		return cli.Exit("", 1)
	}
	return nil
}
