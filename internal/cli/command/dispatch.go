package command

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/regenrek/shelf/internal/logging"
	"github.com/regenrek/shelf/internal/output"
)

// Dispatcher routes a command name and its raw tokens to the registry.
type Dispatcher struct {
	reg    *Registry
	out    output.Sink
	logger *slog.Logger
}

// NewDispatcher creates a dispatcher writing feedback to out. A nil out
// discards feedback.
func NewDispatcher(reg *Registry, out output.Sink, logger *slog.Logger) *Dispatcher {
	if reg == nil {
		reg = NewRegistry()
	}
	if out == nil {
		out = output.Discard
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{reg: reg, out: out, logger: logger}
}

func (d *Dispatcher) Registry() *Registry {
	return d.reg
}

func (d *Dispatcher) Out() output.Sink {
	return d.out
}

// Dispatch runs the command answering to name. All feedback goes to the
// output sink; the returned error only classifies the outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, args []string) error {
	cmd, ok := d.reg.Lookup(name)
	if !ok {
		err := &UnknownCommandError{Name: name}
		d.out.Error(err.Error())
		d.logger.Debug("dispatch unknown command", slog.String("name", name))
		return err
	}
	start := time.Now()
	err := cmd.Invoke(ctx, args, d.out)
	attrs := []any{
		slog.String("command", cmd.ID()),
		slog.String("name", name),
		logging.ArgsAttr("args", args),
		slog.Duration("took", time.Since(start)),
	}
	switch {
	case err == nil && cmd.SideEffects():
		d.logger.Info("dispatch changed data", attrs...)
	case err == nil:
		d.logger.Debug("dispatch ok", attrs...)
	case errors.Is(err, ErrQuit):
		d.logger.Debug("dispatch quit", attrs...)
	default:
		d.logger.Info("dispatch failed", append(attrs, slog.String("outcome", outcome(err)), slog.Any("err", err))...)
	}
	return err
}

func outcome(err error) string {
	var (
		typeErr  *ArgumentTypeError
		usageErr *UsageError
		opErr    *OperationError
	)
	switch {
	case errors.As(err, &typeErr):
		return "argument_type"
	case errors.As(err, &usageErr):
		return "usage"
	case errors.As(err, &opErr):
		return "operation"
	default:
		return "error"
	}
}
