package command

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/regenrek/shelf/internal/output"
)

func TestRegistryFirstRegisteredWins(t *testing.T) {
	var hit string
	first := mustCommand(t, Definition{Name: "list", Aliases: []string{"ls"}}, func(*Call) error {
		hit = "list"
		return nil
	})
	second := mustCommand(t, Definition{Name: "lsof", Aliases: []string{"ls"}}, func(*Call) error {
		hit = "lsof"
		return nil
	})
	reg := NewRegistry()
	if err := reg.Add(first); err != nil {
		t.Fatalf("Add first: %v", err)
	}
	if err := reg.Add(second); err != nil {
		t.Fatalf("Add second: %v", err)
	}
	cmd, ok := reg.Lookup("ls")
	if !ok || cmd != first {
		t.Fatalf("expected ls to resolve to the first command")
	}
	if err := cmd.Invoke(context.Background(), nil, output.NewRecorder()); err != nil || hit != "list" {
		t.Fatalf("invoke hit=%q err=%v", hit, err)
	}
	if cmd, ok := reg.Lookup("lsof"); !ok || cmd != second {
		t.Fatalf("expected lsof to resolve to the second command")
	}
	collisions := reg.Collisions()
	if len(collisions) != 1 || collisions[0].Name != "ls" {
		t.Fatalf("collisions = %+v", collisions)
	}
	if got := strings.Join(collisions[0].Commands, ","); got != "list,lsof" {
		t.Fatalf("collision owners = %q", got)
	}
}

func TestRegistrySealRejectsCollisions(t *testing.T) {
	reg := NewRegistry()
	_ = reg.Add(mustCommand(t, Definition{Name: "a", Aliases: []string{"x"}}, noop))
	_ = reg.Add(mustCommand(t, Definition{Name: "x"}, noop))
	err := reg.Seal()
	var regErr *RegistrationError
	if !errors.As(err, &regErr) {
		t.Fatalf("expected RegistrationError, got %v", err)
	}
	if !strings.Contains(err.Error(), `"x"`) {
		t.Fatalf("expected colliding name in error, got %v", err)
	}
	if reg.Sealed() {
		t.Fatalf("registry must stay open after a failed seal")
	}
}

func TestRegistrySealFreezes(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Add(mustCommand(t, Definition{Name: "a"}, noop)); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := reg.Seal(); err != nil {
		t.Fatalf("Seal: %v", err)
	}
	if !reg.Sealed() {
		t.Fatalf("expected sealed registry")
	}
	if err := reg.Add(mustCommand(t, Definition{Name: "b"}, noop)); err == nil {
		t.Fatalf("expected Add to fail after Seal")
	}
	if reg.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", reg.Len())
	}
}

func TestRegistryOrderAndNil(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"c", "a", "b"} {
		_ = reg.Add(mustCommand(t, Definition{Name: name}, noop))
	}
	var names []string
	for _, cmd := range reg.Commands() {
		names = append(names, cmd.Name())
	}
	if strings.Join(names, "") != "cab" {
		t.Fatalf("order = %v", names)
	}
	if err := reg.Add(nil); err == nil {
		t.Fatalf("expected error for nil command")
	}
	var nilReg *Registry
	if _, ok := nilReg.Lookup("a"); ok || nilReg.Len() != 0 || nilReg.Commands() != nil {
		t.Fatalf("nil registry should be empty")
	}
}
