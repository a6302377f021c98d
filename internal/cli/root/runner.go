package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/shelf/internal/cli/spec"
	"github.com/regenrek/shelf/internal/identity"
)

// Runner executes the CLI built from the command table.
type Runner struct {
	specDoc *spec.Spec
	deps    Dependencies
	app     *cli.Command
}

// NewRunner builds the CLI runner.
func NewRunner(specDoc *spec.Spec, deps Dependencies) (*Runner, error) {
	app, err := BuildApp(specDoc, deps)
	if err != nil {
		return nil, err
	}
	return &Runner{specDoc: specDoc, deps: deps, app: app}, nil
}

// Run executes the CLI with the given arguments.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if r == nil || r.app == nil {
		return fmt.Errorf("runner is not initialized")
	}
	appName := identity.ResolveBinaryName(args)
	r.app.Name = appName
	args = applyShorthand(r.app, args)
	return r.app.Run(ctx, args)
}

// applyShorthand routes an unknown first word to "run", so the dispatcher
// reports it the same way the shell does.
func applyShorthand(app *cli.Command, args []string) []string {
	if app == nil {
		return args
	}
	pos, ok := firstWord(args)
	if !ok || isTopLevelCommand(app, args[pos]) {
		return args
	}
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:pos]...)
	out = append(out, runCommand)
	return append(out, args[pos:]...)
}

// firstWord finds the first argument that is not a global flag or its value.
func firstWord(args []string) (int, bool) {
	skip := false
	for i := 1; i < len(args); i++ {
		arg := args[i]
		if skip {
			skip = false
			continue
		}
		if arg == "--" {
			return 0, false
		}
		if strings.HasPrefix(arg, "-") {
			skip = takesValue(arg)
			continue
		}
		return i, true
	}
	return 0, false
}

func takesValue(arg string) bool {
	if strings.Contains(arg, "=") {
		return false
	}
	switch strings.TrimLeft(arg, "-") {
	case flagData, "d", flagConfig, "c", flagColor, flagLogLevel:
		return true
	default:
		return false
	}
}

func isTopLevelCommand(app *cli.Command, value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	for _, cmd := range app.Commands {
		if cmd.Name == value {
			return true
		}
		for _, alias := range cmd.Aliases {
			if alias == value {
				return true
			}
		}
	}
	return false
}
