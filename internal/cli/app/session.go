package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/regenrek/shelf/internal/bookshelf"
	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/cli/library"
	"github.com/regenrek/shelf/internal/cli/root"
	"github.com/regenrek/shelf/internal/cli/shell"
	"github.com/regenrek/shelf/internal/cli/spec"
	"github.com/regenrek/shelf/internal/config"
	"github.com/regenrek/shelf/internal/identity"
	"github.com/regenrek/shelf/internal/output"
)

// Session wires one opened books file to the command registry.
type Session struct {
	specDoc  *spec.Spec
	console  *output.Console
	shelf    *bookshelf.Shelf
	disp     *command.Dispatcher
	input    *shell.Input
	settings func() config.Config
}

// Opener returns a root.Opener bound to specDoc.
func Opener(specDoc *spec.Spec) root.Opener {
	return func(ctx context.Context, deps root.Dependencies, g root.Globals, interactive bool) (root.Session, error) {
		return Open(ctx, specDoc, deps, g, interactive)
	}
}

// Open loads config and the books file and registers every command.
func Open(_ context.Context, specDoc *spec.Spec, deps root.Dependencies, g root.Globals, interactive bool) (*Session, error) {
	if specDoc == nil {
		return nil, fmt.Errorf("spec is nil")
	}
	settings, err := newSettings(g)
	if err != nil {
		return nil, err
	}
	cfg := settings()
	mode, err := cfg.ColorMode()
	if err != nil {
		return nil, err
	}
	stdout := deps.Stdout
	if stdout == nil {
		stdout = io.Discard
	}
	console := output.NewConsole(stdout, mode)

	dataPath, err := cfg.ResolveDataFile()
	if err != nil {
		return nil, fmt.Errorf("resolve data file: %w", err)
	}
	shelf, err := bookshelf.Open(dataPath)
	if err != nil {
		return nil, err
	}

	s := &Session{specDoc: specDoc, console: console, shelf: shelf, settings: settings}
	var prompter library.Prompter
	if interactive {
		if deps.Stdin == nil {
			return nil, fmt.Errorf("interactive shell needs stdin")
		}
		input, err := shell.NewInput(deps.Stdin, stdout)
		if err != nil {
			return nil, err
		}
		s.input = input
		prompter = input
	} else {
		prompter = &library.StreamPrompter{In: deps.Stdin, Out: stdout}
	}

	lib, err := library.New(library.Deps{
		Shelf:       shelf,
		Settings:    settings,
		Prompter:    prompter,
		ClearScreen: console.ClearScreen,
		Version:     deps.Version,
		AppName:     appName(specDoc, deps),
		InShell:     interactive,
	})
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	reg, err := command.BuildRegistry(specDoc, lib.Operations())
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	lib.Attach(reg)
	s.disp = command.NewDispatcher(reg, console, slog.Default())
	slog.Debug("session opened",
		slog.String("data_file", shelf.Path()),
		slog.Int("books", shelf.Len()),
		slog.Bool("interactive", interactive),
	)
	return s, nil
}

// newSettings returns a func yielding the effective config: the file,
// reloaded when it changes, then the environment, then flags. A file that
// stops parsing keeps the last good values.
func newSettings(g root.Globals) (func() config.Config, error) {
	path := g.ConfigFile
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, fmt.Errorf("resolve config path: %w", err)
		}
	}
	loader := config.NewLoader(path)
	base, err := loader.Load()
	if err != nil {
		return nil, err
	}
	overrides := config.Overrides{
		DataFile: g.DataFile,
		Color:    g.EffectiveColor(),
		LogLevel: g.LogLevel,
	}
	effective := func(cfg config.Config) config.Config {
		return cfg.WithEnv().WithOverrides(overrides)
	}
	if err := effective(base).Validate(); err != nil {
		return nil, err
	}
	return func() config.Config {
		cfg, err := loader.Load()
		if err != nil {
			slog.Warn("config reload failed, keeping previous values", slog.String("path", loader.Path()), slog.Any("err", err))
			return effective(base)
		}
		base = cfg
		return effective(cfg)
	}, nil
}

func appName(specDoc *spec.Spec, deps root.Dependencies) string {
	if name := strings.TrimSpace(deps.AppName); name != "" {
		return name
	}
	if name := strings.TrimSpace(specDoc.App.Name); name != "" {
		return name
	}
	return identity.CLIName
}

func (s *Session) Dispatch(ctx context.Context, name string, args []string) error {
	return s.disp.Dispatch(ctx, name, args)
}

// Shell runs the interactive loop on the session's input.
func (s *Session) Shell(ctx context.Context) error {
	if s.input == nil {
		return fmt.Errorf("session was not opened for the shell")
	}
	s.console.SetTitle(identity.BrandName)
	sh, err := shell.New(shell.Options{
		Input:       s.input,
		Out:         s.console,
		Dispatcher:  s.disp,
		Settings:    s.settings,
		Banner:      s.specDoc.App.Banner,
		ClearScreen: s.console.ClearScreen,
		Logger:      slog.Default(),
	})
	if err != nil {
		return err
	}
	return sh.Run(ctx)
}

func (s *Session) Close() error {
	if s.input != nil {
		return s.input.Close()
	}
	return nil
}
