package command

import (
	"fmt"
	"strings"
)

// Param is one positional parameter. Its index in the Params slice is its
// position on the command line.
type Param struct {
	Name     string
	Kind     Kind
	Optional bool
	// Variadic absorbs every remaining token as an unconverted string.
	Variadic bool
}

// Format renders the param for usage and help text.
func (p Param) Format() string {
	switch {
	case p.Variadic:
		return fmt.Sprintf("<%s: %s...>", p.Name, p.Kind)
	case p.Optional:
		return fmt.Sprintf("<%s: Optional[%s]>", p.Name, p.Kind)
	default:
		return fmt.Sprintf("<%s: %s>", p.Name, p.Kind)
	}
}

func (p Param) required() bool {
	return !p.Optional && !p.Variadic
}

// Params is an ordered parameter schema.
type Params []Param

// Format joins the rendered params with spaces in declaration order.
func (ps Params) Format() string {
	parts := make([]string, 0, len(ps))
	for _, p := range ps {
		parts = append(parts, p.Format())
	}
	return strings.Join(parts, " ")
}

// RequiredCount is the number of params that are neither optional nor variadic.
func (ps Params) RequiredCount() int {
	n := 0
	for _, p := range ps {
		if p.required() {
			n++
		}
	}
	return n
}

// Variadic returns the trailing variadic param, if any.
func (ps Params) Variadic() (Param, bool) {
	if len(ps) == 0 || !ps[len(ps)-1].Variadic {
		return Param{}, false
	}
	return ps[len(ps)-1], true
}

func validateParams(command string, ps Params) error {
	seen := make(map[string]struct{}, len(ps))
	sawOptional := false
	for i, p := range ps {
		fail := func(format string, args ...any) error {
			return &RegistrationError{Command: command, Param: p.Name, Reason: fmt.Sprintf(format, args...)}
		}
		name := strings.TrimSpace(p.Name)
		if name == "" || name != p.Name || strings.ContainsAny(name, " \t<>:") {
			return fail("parameter %d has an invalid name %q", i, p.Name)
		}
		if _, dup := seen[name]; dup {
			return fail("duplicate parameter name")
		}
		seen[name] = struct{}{}
		if !p.Kind.valid() {
			return fail("type must be one of string, int, float, bool")
		}
		if p.Variadic {
			if i != len(ps)-1 {
				return fail("only the last parameter may be variadic")
			}
			if p.Optional {
				return fail("a variadic parameter cannot also be optional")
			}
			if p.Kind != KindString {
				return fail("variadic parameters receive raw strings and must be declared as string")
			}
			continue
		}
		if p.Optional {
			sawOptional = true
			continue
		}
		if sawOptional {
			return fail("required parameter follows an optional one")
		}
	}
	return nil
}
