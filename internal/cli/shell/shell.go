// Package shell runs the interactive prompt loop.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/kballard/go-shellquote"

	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/config"
	"github.com/regenrek/shelf/internal/output"
)

const pauseText = "Press Enter to continue..."

// Options configures a Shell. Input, Out and Dispatcher are required.
type Options struct {
	Input      *Input
	Out        output.Sink
	Dispatcher *command.Dispatcher
	Settings   func() config.Config
	Banner     string
	// ClearScreen runs before each prompt when shell.clear_screen is set.
	ClearScreen func()
	Logger      *slog.Logger
}

// Shell reads command lines and dispatches them until input ends.
type Shell struct {
	opts Options
}

func New(opts Options) (*Shell, error) {
	if opts.Input == nil || opts.Out == nil || opts.Dispatcher == nil {
		return nil, errors.New("shell: input, output and dispatcher are required")
	}
	if opts.Settings == nil {
		opts.Settings = config.Defaults
	}
	if opts.ClearScreen == nil {
		opts.ClearScreen = func() {}
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Shell{opts: opts}, nil
}

// Run loops until end of input, ctx cancellation or the exit command. None of
// these is an error.
func (s *Shell) Run(ctx context.Context) error {
	s.opts.Logger.Info("shell started")
	defer s.opts.Logger.Info("shell stopped")

	cfg := s.opts.Settings()
	if !cfg.Shell.ClearScreen {
		s.banner(cfg)
	}
	for {
		cfg = s.opts.Settings()
		if cfg.Shell.ClearScreen {
			s.opts.ClearScreen()
			s.banner(cfg)
		}
		line, err := s.opts.Input.Ask(ctx, cfg.Shell.Prompt)
		if err != nil {
			return s.stop(err)
		}
		if err := s.Execute(ctx, line); errors.Is(err, command.ErrQuit) {
			return nil
		}
		if cfg.Shell.ClearScreen {
			if _, err := s.opts.Input.Ask(ctx, pauseText); err != nil {
				return s.stop(err)
			}
		}
	}
}

// Execute tokenizes line and dispatches it. Blank lines are ignored. The
// returned error classifies the outcome; the user has already been told.
func (s *Shell) Execute(ctx context.Context, line string) error {
	tokens, err := shellquote.Split(line)
	if err != nil {
		s.opts.Out.Error(fmt.Sprintf("Could not read command: %v", err))
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	return s.opts.Dispatcher.Dispatch(ctx, tokens[0], tokens[1:])
}

func (s *Shell) banner(cfg config.Config) {
	if s.opts.Banner != "" && cfg.Shell.BannerEnabled() {
		s.opts.Out.Print(s.opts.Banner)
	}
}

func (s *Shell) stop(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		// Leave the cursor on a fresh line after ^D or ^C.
		s.opts.Out.Print("")
		return nil
	}
	return err
}
