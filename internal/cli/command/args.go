package command

import (
	"context"

	"github.com/regenrek/shelf/internal/output"
)

// Args holds the values bound for one invocation.
type Args struct {
	values []Value
	rest   []string
}

// Len is the number of fixed (non-variadic) values bound.
func (a Args) Len() int {
	return len(a.values)
}

// Values returns the fixed values in positional order.
func (a Args) Values() []Value {
	return append([]Value(nil), a.values...)
}

// Rest returns the tokens absorbed by the variadic param, unconverted.
func (a Args) Rest() []string {
	return append([]string(nil), a.rest...)
}

func (a Args) lookup(name string) (Value, bool) {
	for _, v := range a.values {
		if v.Param.Name == name {
			return v, true
		}
	}
	return Value{}, false
}

// Has reports whether a value was supplied for name.
func (a Args) Has(name string) bool {
	_, ok := a.lookup(name)
	return ok
}

// String returns the string value of name, or "" when absent.
func (a Args) String(name string) string {
	v, _ := a.lookup(name)
	return v.str
}

// Int returns the int value of name, or 0 when absent.
func (a Args) Int(name string) int64 {
	v, _ := a.lookup(name)
	return v.i
}

// Float returns the float value of name, or 0 when absent.
func (a Args) Float(name string) float64 {
	v, _ := a.lookup(name)
	return v.f
}

// Bool returns the bool value of name, or false when absent.
func (a Args) Bool(name string) bool {
	v, _ := a.lookup(name)
	return v.b
}

// Call is what an Operation receives.
type Call struct {
	Context context.Context
	Command *Command
	Args    Args
	Out     output.Sink
}

// Operation is the body of a command. Returned errors are reported to the
// user by the command, except ErrQuit.
type Operation func(call *Call) error
