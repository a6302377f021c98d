package logging

import (
	"strings"
	"testing"
)

func TestArgsAttrRedactsByDefault(t *testing.T) {
	setIncludeArgs(false)
	attr := ArgsAttr("args", []string{"Dune", "Herbert", "1965"})
	got := attr.Value.String()
	if !strings.Contains(got, "redacted(n=3") {
		t.Fatalf("expected redacted args, got %q", got)
	}
	if strings.Contains(got, "Dune") {
		t.Fatalf("expected title to be redacted, got %q", got)
	}
}

func TestArgsAttrStableHash(t *testing.T) {
	setIncludeArgs(false)
	a := ArgsAttr("", []string{"a", "b"}).Value.String()
	b := ArgsAttr("", []string{"a", "b"}).Value.String()
	c := ArgsAttr("", []string{"ab"}).Value.String()
	if a != b {
		t.Fatalf("expected stable hash, got %q vs %q", a, b)
	}
	if a == c {
		t.Fatalf("expected token boundaries to affect hash")
	}
}

func TestArgsAttrIncludesWhenEnabled(t *testing.T) {
	setIncludeArgs(true)
	t.Cleanup(func() { setIncludeArgs(false) })
	got := ArgsAttr("args", []string{"Dune"}).Value.String()
	if !strings.Contains(got, "Dune") {
		t.Fatalf("expected args included, got %q", got)
	}
}

func TestArgsAttrEmpty(t *testing.T) {
	if got := ArgsAttr("args", nil).Value.String(); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}
