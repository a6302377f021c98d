package command

import (
	"fmt"
	"strings"

	"github.com/regenrek/shelf/internal/cli/spec"
)

// Operations maps spec command IDs to their bodies.
type Operations map[string]Operation

// DefinitionFromSpec converts a declared command into a Definition.
func DefinitionFromSpec(cmd spec.Command) (Definition, error) {
	params := make(Params, 0, len(cmd.Params))
	for _, p := range cmd.Params {
		kind, err := ParseKind(p.Type)
		if err != nil {
			return Definition{}, &RegistrationError{Command: cmd.Name, Param: p.Name, Reason: err.Error()}
		}
		params = append(params, Param{
			Name:     p.Name,
			Kind:     kind,
			Optional: p.Optional,
			Variadic: p.Variadic,
		})
	}
	return Definition{
		ID:          cmd.ID,
		Name:        cmd.Name,
		Aliases:     cmd.Aliases,
		Description: strings.TrimSpace(cmd.Description),
		Params:      params,
		ShellOnly:   cmd.ShellOnly,
		SideEffects: cmd.SideEffects,
		Hidden:      cmd.Hidden,
	}, nil
}

// BuildRegistry binds every declared command to its operation, in spec
// order, and seals the result. A declared command without an operation, an
// operation without a declared command, or any name collision is a
// RegistrationError.
func BuildRegistry(specDoc *spec.Spec, ops Operations) (*Registry, error) {
	if specDoc == nil {
		return nil, &RegistrationError{Reason: "spec is nil"}
	}
	reg := NewRegistry()
	used := make(map[string]bool, len(ops))
	for _, cmdSpec := range specDoc.Commands {
		op, ok := ops[cmdSpec.ID]
		if !ok || op == nil {
			return nil, &RegistrationError{Command: cmdSpec.Name, Reason: fmt.Sprintf("missing handler for %s", cmdSpec.ID)}
		}
		used[cmdSpec.ID] = true
		def, err := DefinitionFromSpec(cmdSpec)
		if err != nil {
			return nil, err
		}
		cmd, err := New(def, op)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(cmd); err != nil {
			return nil, err
		}
	}
	for id := range ops {
		if !used[id] {
			return nil, &RegistrationError{Command: id, Reason: "handler registered for a command that is not declared"}
		}
	}
	if err := reg.Seal(); err != nil {
		return nil, err
	}
	return reg, nil
}
