package entry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/shelf/internal/cli/app"
	"github.com/regenrek/shelf/internal/cli/root"
	"github.com/regenrek/shelf/internal/config"
	"github.com/regenrek/shelf/internal/identity"
	"github.com/regenrek/shelf/internal/logging"
	"github.com/regenrek/shelf/internal/userpath"
)

// Run starts the CLI and returns the process exit code.
func Run(args []string, version string) int {
	appName := identity.CLIName
	mode := logging.ModeFromArgs(args)
	logCfg, err := loggingConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: load config: %v\n", appName, err)
		return 1
	}
	closeLogger, err := logging.Init(context.Background(), logCfg, logging.InitOptions{
		App:     identity.AppSlug,
		Version: version,
		Mode:    mode,
		Level:   logging.FlagValue(args, "--log-level"),
	})
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError})))
		slog.Error("init logging failed; using stderr fallback", "err", err)
	} else if closeLogger != nil {
		defer func() { _ = closeLogger() }()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := root.DefaultDependencies(version)
	deps.AppName = appName
	runner, err := app.NewRunner(deps)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	if err := runner.Run(ctx, args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			if msg := strings.TrimSpace(exitErr.Error()); msg != "" {
				fmt.Fprintf(os.Stderr, "%s: %s\n", appName, msg)
			}
			return exitErr.ExitCode()
		}
		slog.Error("command failed", "err", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		return 1
	}
	return 0
}

// loggingConfig reads the [logging] table before flags are parsed, so the
// logger is in place for everything that follows.
func loggingConfig(args []string) (logging.Config, error) {
	path := logging.FlagValue(args, "-c", "--config")
	if path != "" {
		resolved, err := userpath.Resolve(path)
		if err != nil {
			return logging.Config{}, err
		}
		path = resolved
	} else {
		var err error
		if path, err = config.DefaultPath(); err != nil || path == "" {
			return logging.Config{}, nil
		}
	}
	cfg, err := config.NewLoader(path).Load()
	if err != nil {
		return logging.Config{}, err
	}
	return cfg.Logging, nil
}
