package command

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Registry is the ordered command table. When two commands share an
// invokable name, the one added first answers to it.
type Registry struct {
	commands []*Command
	index    map[string]int
	sealed   bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Add appends cmd. It fails once the registry is sealed.
func (r *Registry) Add(cmd *Command) error {
	if r == nil {
		return errors.New("registry is nil")
	}
	if cmd == nil {
		return errors.New("command is nil")
	}
	if r.sealed {
		return &RegistrationError{Command: cmd.Name(), Reason: "registry is sealed"}
	}
	r.commands = append(r.commands, cmd)
	pos := len(r.commands) - 1
	for _, name := range cmd.names {
		if _, taken := r.index[name]; !taken {
			r.index[name] = pos
		}
	}
	return nil
}

// Lookup returns the first command answering to name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	if r == nil {
		return nil, false
	}
	pos, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.commands[pos], true
}

// Commands returns the commands in registration order.
func (r *Registry) Commands() []*Command {
	if r == nil {
		return nil
	}
	return append([]*Command(nil), r.commands...)
}

func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.commands)
}

// Collision is an invokable name claimed by more than one command.
type Collision struct {
	Name     string
	Commands []string
}

// Collisions lists shared invokable names, sorted by name.
func (r *Registry) Collisions() []Collision {
	if r == nil {
		return nil
	}
	owners := make(map[string][]string)
	for _, cmd := range r.commands {
		for _, name := range cmd.names {
			owners[name] = append(owners[name], cmd.Name())
		}
	}
	var out []Collision
	for name, cmds := range owners {
		if len(cmds) > 1 {
			out = append(out, Collision{Name: name, Commands: cmds})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Seal rejects name collisions and freezes the registry.
func (r *Registry) Seal() error {
	if r == nil {
		return errors.New("registry is nil")
	}
	if collisions := r.Collisions(); len(collisions) > 0 {
		parts := make([]string, 0, len(collisions))
		for _, c := range collisions {
			parts = append(parts, fmt.Sprintf("%q (%s)", c.Name, strings.Join(c.Commands, ", ")))
		}
		return &RegistrationError{Reason: "invokable names registered more than once: " + strings.Join(parts, "; ")}
	}
	r.sealed = true
	return nil
}

func (r *Registry) Sealed() bool {
	return r != nil && r.sealed
}
