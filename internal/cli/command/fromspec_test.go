package command

import (
	"context"
	"errors"
	"testing"

	"github.com/regenrek/shelf/internal/cli/spec"
	"github.com/regenrek/shelf/internal/output"
)

func allOps(specDoc *spec.Spec) Operations {
	ops := Operations{}
	for _, cmd := range specDoc.Commands {
		ops[cmd.ID] = noop
	}
	return ops
}

func TestBuildRegistryFromDefaultSpec(t *testing.T) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	reg, err := BuildRegistry(specDoc, allOps(specDoc))
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	if !reg.Sealed() {
		t.Fatalf("expected sealed registry")
	}
	if reg.Len() != len(specDoc.Commands) {
		t.Fatalf("Len() = %d, want %d", reg.Len(), len(specDoc.Commands))
	}
	add, ok := reg.Lookup("new")
	if !ok || add.ID() != "add" {
		t.Fatalf("expected new to resolve to add")
	}
	if add.Usage() != "add | new <title: string> <author: string> <year: int>" {
		t.Fatalf("Usage() = %q", add.Usage())
	}
	del, _ := reg.Lookup("rm")
	if del.RequiredCount() != 1 {
		t.Fatalf("delete RequiredCount() = %d", del.RequiredCount())
	}
	if !add.SideEffects() || !del.SideEffects() {
		t.Fatalf("expected add and delete to change data")
	}
	if list, _ := reg.Lookup("list"); list.SideEffects() {
		t.Fatalf("list must not be marked as changing data")
	}
	out := output.NewRecorder()
	if err := add.Invoke(context.Background(), []string{"Dune", "Frank Herbert", "abc"}, out); err == nil {
		t.Fatalf("expected type error")
	}
	if got := out.String(); got != `Expected "year" argument to be int, got "abc"` {
		t.Fatalf("output = %q", got)
	}
}

func TestBuildRegistryMissingHandler(t *testing.T) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	ops := allOps(specDoc)
	delete(ops, "find")
	_, err = BuildRegistry(specDoc, ops)
	var regErr *RegistrationError
	if !errors.As(err, &regErr) || regErr.Command != "find" {
		t.Fatalf("expected missing handler error for find, got %v", err)
	}
}

func TestBuildRegistryUndeclaredHandler(t *testing.T) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	ops := allOps(specDoc)
	ops["rename"] = noop
	if _, err := BuildRegistry(specDoc, ops); err == nil {
		t.Fatalf("expected error for undeclared handler")
	}
}

func TestBuildRegistryCollision(t *testing.T) {
	specDoc, err := spec.Parse([]byte(`version: 1
app: {name: shelf}
commands:
  - id: list
    name: list
    aliases: [ls]
  - id: lsof
    name: lsof
    aliases: [ls]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = BuildRegistry(specDoc, Operations{"list": noop, "lsof": noop})
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
}

func TestBuildRegistryRejectsOptionalBeforeRequired(t *testing.T) {
	specDoc, err := spec.Parse([]byte(`version: 1
app: {name: shelf}
commands:
  - id: bad
    name: bad
    params:
      - name: a
        type: string
        optional: true
      - name: b
        type: string
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	_, err = BuildRegistry(specDoc, Operations{"bad": noop})
	var regErr *RegistrationError
	if !errors.As(err, &regErr) || regErr.Param != "b" {
		t.Fatalf("expected RegistrationError on b, got %v", err)
	}
}
