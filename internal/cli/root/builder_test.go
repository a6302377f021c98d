package root

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/cli/spec"
)

type dispatched struct {
	name string
	args []string
}

type fakeSession struct {
	calls  []dispatched
	shells int
	closed int
	err    error
}

func (s *fakeSession) Dispatch(_ context.Context, name string, args []string) error {
	s.calls = append(s.calls, dispatched{name: name, args: args})
	return s.err
}

func (s *fakeSession) Shell(context.Context) error {
	s.shells++
	return nil
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

type harness struct {
	session     *fakeSession
	globals     []Globals
	interactive []bool
	out         bytes.Buffer
	runner      *Runner
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	specDoc, err := spec.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	h := &harness{session: &fakeSession{}}
	deps := Dependencies{
		Version: "test",
		AppName: "shelf",
		Stdout:  &h.out,
		Stderr:  &h.out,
		Stdin:   strings.NewReader(""),
		Open: func(_ context.Context, _ Dependencies, g Globals, interactive bool) (Session, error) {
			h.globals = append(h.globals, g)
			h.interactive = append(h.interactive, interactive)
			return h.session, nil
		},
	}
	runner, err := NewRunner(specDoc, deps)
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	h.runner = runner
	return h
}

func (h *harness) run(args ...string) error {
	return h.runner.Run(context.Background(), append([]string{"shelf"}, args...))
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder cli.ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return -1
}

func TestBuildAppErrors(t *testing.T) {
	if _, err := BuildApp(nil, Dependencies{Open: func(context.Context, Dependencies, Globals, bool) (Session, error) { return nil, nil }}); err == nil {
		t.Fatalf("expected error for nil spec")
	}
	if _, err := BuildApp(&spec.Spec{}, Dependencies{}); err == nil {
		t.Fatalf("expected error for nil opener")
	}
}

func TestBareInvocationStartsShell(t *testing.T) {
	h := newHarness(t)
	if err := h.run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if h.session.shells != 1 || h.session.closed != 1 {
		t.Fatalf("shells=%d closed=%d", h.session.shells, h.session.closed)
	}
	if len(h.interactive) != 1 || !h.interactive[0] {
		t.Fatalf("expected interactive session")
	}

	if err := h.run("shell"); err != nil {
		t.Fatalf("run shell: %v", err)
	}
	if h.session.shells != 2 {
		t.Fatalf("shells=%d", h.session.shells)
	}
}

func TestSpecCommandDispatchesRawArgs(t *testing.T) {
	h := newHarness(t)
	if err := h.run("-d", "/tmp/books.json", "new", "Dune", "Frank Herbert", "-5"); err != nil {
		t.Fatalf("run: %v", err)
	}
	want := dispatched{name: "add", args: []string{"Dune", "Frank Herbert", "-5"}}
	if len(h.session.calls) != 1 || h.session.calls[0].name != want.name || strings.Join(h.session.calls[0].args, "|") != strings.Join(want.args, "|") {
		t.Fatalf("calls = %#v", h.session.calls)
	}
	if h.globals[0].DataFile != "/tmp/books.json" || h.interactive[0] {
		t.Fatalf("globals = %+v interactive=%v", h.globals[0], h.interactive[0])
	}
}

func TestRunCommandAndShorthand(t *testing.T) {
	h := newHarness(t)
	if err := h.run("exec", "ls", "stock"); err != nil {
		t.Fatalf("run exec: %v", err)
	}
	if err := h.run("frobnicate", "x"); err != nil {
		t.Fatalf("run unknown: %v", err)
	}
	if len(h.session.calls) != 2 {
		t.Fatalf("calls = %#v", h.session.calls)
	}
	if h.session.calls[0].name != "ls" || h.session.calls[1].name != "frobnicate" {
		t.Fatalf("calls = %#v", h.session.calls)
	}
	if err := h.run("run"); exitCode(err) != 1 {
		t.Fatalf("expected exit 1 for run without a name, got %v", err)
	}
}

func TestDispatchFailureExitsOne(t *testing.T) {
	h := newHarness(t)
	h.session.err = &command.UsageError{}
	if err := h.run("add"); exitCode(err) != 1 {
		t.Fatalf("expected exit 1, got %v", err)
	}
	h.session.err = command.ErrQuit
	if err := h.run("version"); err != nil {
		t.Fatalf("quit must not fail the process: %v", err)
	}
}

func TestShellOnlyCommandsAreNotSubcommands(t *testing.T) {
	h := newHarness(t)
	for _, cmd := range h.runner.app.Commands {
		if cmd.Name == "exit" || cmd.Name == "clear" {
			t.Fatalf("shell-only command %q exposed", cmd.Name)
		}
	}
	// Falls through to run, where the dispatcher reports it.
	if err := h.run("exit"); err != nil {
		t.Fatalf("run exit: %v", err)
	}
	if len(h.session.calls) != 1 || h.session.calls[0].name != "exit" {
		t.Fatalf("calls = %#v", h.session.calls)
	}
}

func TestVersionFlag(t *testing.T) {
	h := newHarness(t)
	err := h.run("--version")
	if exitCode(err) != 0 {
		t.Fatalf("--version err = %v", err)
	}
	if !strings.Contains(h.out.String(), "shelf test") {
		t.Fatalf("--version output = %q", h.out.String())
	}
	if len(h.globals) != 0 {
		t.Fatalf("--version must not open a session")
	}
}

func TestGlobalFlags(t *testing.T) {
	h := newHarness(t)
	if err := h.run("--no-color", "--log-level", "debug", "-c", "/tmp/c.toml", "list"); err != nil {
		t.Fatalf("run: %v", err)
	}
	g := h.globals[0]
	if g.EffectiveColor() != "never" || g.LogLevel != "debug" || g.ConfigFile != "/tmp/c.toml" {
		t.Fatalf("globals = %+v", g)
	}
	if (Globals{Color: "always"}).EffectiveColor() != "always" {
		t.Fatalf("expected --color to pass through")
	}
}

func TestOpenErrorPropagates(t *testing.T) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	openErr := errors.New("invalid data in file")
	runner, err := NewRunner(specDoc, Dependencies{
		Stdout: io.Discard,
		Stderr: io.Discard,
		Open: func(context.Context, Dependencies, Globals, bool) (Session, error) {
			return nil, openErr
		},
	})
	if err != nil {
		t.Fatalf("NewRunner: %v", err)
	}
	if err := runner.Run(context.Background(), []string{"shelf", "list"}); !errors.Is(err, openErr) {
		t.Fatalf("expected open error, got %v", err)
	}
}
