package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"

	"github.com/regenrek/shelf/internal/output"
)

// Definition declares a command's names and parameter schema.
type Definition struct {
	ID          string
	Name        string
	Aliases     []string
	Description string
	Params      Params
	ShellOnly   bool
	// SideEffects marks commands that change persisted data.
	SideEffects bool
	Hidden      bool
}

// Command is an immutable binding of names and a schema to an Operation.
type Command struct {
	def      Definition
	names    []string
	required int
	op       Operation
}

// New validates def and binds it to op.
func New(def Definition, op Operation) (*Command, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" || name != def.Name || strings.ContainsAny(name, " \t") {
		return nil, &RegistrationError{Command: def.Name, Reason: "command name must be a single non-empty token"}
	}
	if op == nil {
		return nil, &RegistrationError{Command: name, Reason: "no operation bound"}
	}
	names := []string{name}
	seen := map[string]struct{}{name: {}}
	for _, alias := range def.Aliases {
		if alias == "" || strings.ContainsAny(alias, " \t") {
			return nil, &RegistrationError{Command: name, Reason: fmt.Sprintf("invalid alias %q", alias)}
		}
		if _, dup := seen[alias]; dup {
			return nil, &RegistrationError{Command: name, Reason: fmt.Sprintf("alias %q repeats another name of the command", alias)}
		}
		seen[alias] = struct{}{}
		names = append(names, alias)
	}
	if err := validateParams(name, def.Params); err != nil {
		return nil, err
	}
	if def.ID == "" {
		def.ID = name
	}
	def.Aliases = append([]string(nil), def.Aliases...)
	def.Params = append(Params(nil), def.Params...)
	return &Command{
		def:      def,
		names:    names,
		required: def.Params.RequiredCount(),
		op:       op,
	}, nil
}

// MustNew is New for static tables; it panics on a RegistrationError.
func MustNew(def Definition, op Operation) *Command {
	cmd, err := New(def, op)
	if err != nil {
		panic(err)
	}
	return cmd
}

func (c *Command) ID() string          { return c.def.ID }
func (c *Command) Name() string        { return c.def.Name }
func (c *Command) Description() string { return c.def.Description }
func (c *Command) ShellOnly() bool     { return c.def.ShellOnly }
func (c *Command) Hidden() bool        { return c.def.Hidden }
func (c *Command) SideEffects() bool   { return c.def.SideEffects }

// Aliases returns the alternative names in declaration order.
func (c *Command) Aliases() []string {
	return append([]string(nil), c.def.Aliases...)
}

// Params returns the parameter schema.
func (c *Command) Params() Params {
	return append(Params(nil), c.def.Params...)
}

// InvokableNames is the primary name followed by the aliases.
func (c *Command) InvokableNames() []string {
	return append([]string(nil), c.names...)
}

// RequiredCount is the number of arguments that must be supplied.
func (c *Command) RequiredCount() int {
	return c.required
}

// Usage renders "name | alias <param: Type> ...".
func (c *Command) Usage() string {
	return usageLine(c.names, c.def.Params)
}

func usageLine(names []string, params Params) string {
	line := strings.Join(names, " | ")
	if formatted := params.Format(); formatted != "" {
		line += " " + formatted
	}
	return line
}

// Bind coerces raw tokens against the schema. Tokens past the last param go
// to the variadic param when there is one and are dropped otherwise. The
// first token that fails coercion aborts binding.
func (c *Command) Bind(raw []string) (Args, error) {
	params := c.def.Params
	var args Args
	if len(params) == 0 {
		return args, nil
	}
	for i, token := range raw {
		var p Param
		if i < len(params) {
			p = params[i]
		} else {
			p = params[len(params)-1]
			if !p.Variadic {
				break
			}
		}
		if p.Variadic {
			args.rest = append(args.rest, token)
			continue
		}
		v, err := coerce(p, token)
		if err != nil {
			return Args{}, err
		}
		args.values = append(args.values, v)
	}
	supplied := 0
	for _, v := range args.values {
		if v.Param.required() {
			supplied++
		}
	}
	if supplied < c.required {
		return Args{}, &UsageError{Names: c.InvokableNames(), Params: c.Params(), Given: supplied}
	}
	return args, nil
}

// Invoke binds raw and runs the operation. Every failure is written to out
// as exactly one error line and also returned, classified, for logging and
// exit codes. ErrQuit is returned without a message.
func (c *Command) Invoke(ctx context.Context, raw []string, out output.Sink) error {
	if ctx == nil {
		ctx = context.Background()
	}
	args, err := c.Bind(raw)
	if err != nil {
		out.Error(err.Error())
		return err
	}
	if err := c.run(&Call{Context: ctx, Command: c, Args: args, Out: out}); err != nil {
		if errors.Is(err, ErrQuit) {
			return err
		}
		opErr := &OperationError{Command: c.def.Name, Err: err}
		out.Error(opErr.Error())
		return opErr
	}
	return nil
}

func (c *Command) run(call *Call) (err error) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("command panicked", "command", c.def.Name, "panic", r, "stack", string(debug.Stack()))
			err = fmt.Errorf("internal error in %s: %v", c.def.Name, r)
		}
	}()
	return c.op(call)
}
