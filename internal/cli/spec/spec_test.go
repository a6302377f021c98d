package spec

import (
	"strings"
	"testing"
)

func TestLoadDefaultSpec(t *testing.T) {
	spec, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault() err=%v", err)
	}
	if spec.App.Name == "" {
		t.Fatalf("expected app name set")
	}
	if len(spec.Commands) == 0 {
		t.Fatalf("expected commands")
	}
}

func TestValidateRejectsEmpty(t *testing.T) {
	if err := Validate([]byte("")); err == nil {
		t.Fatalf("expected error for empty spec")
	}
}

func TestParseRejectsEmpty(t *testing.T) {
	if _, err := Parse([]byte("  \n")); err == nil {
		t.Fatalf("expected error for empty spec")
	}
}

func TestValidateRejectsMissingName(t *testing.T) {
	yaml := []byte("version: 1\napp: {}\ncommands: []\n")
	if _, err := Parse(yaml); err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidateRejectsKeywordParam(t *testing.T) {
	yaml := []byte(`version: 1
app: {name: shelf}
commands:
  - id: add
    name: add
    params:
      - name: title
        type: string
        keyword: true
`)
	if _, err := Parse(yaml); err == nil {
		t.Fatalf("expected keyword parameter to be rejected")
	}
}

func TestValidateRejectsUnknownType(t *testing.T) {
	yaml := []byte(`version: 1
app: {name: shelf}
commands:
  - id: add
    name: add
    params:
      - name: when
        type: date
`)
	_, err := Parse(yaml)
	if err == nil || !strings.Contains(err.Error(), "schema validation") {
		t.Fatalf("expected schema validation error, got %v", err)
	}
}

func TestValidateRejectsWhitespaceName(t *testing.T) {
	yaml := []byte(`version: 1
app: {name: shelf}
commands:
  - id: add
    name: "add book"
`)
	if _, err := Parse(yaml); err == nil {
		t.Fatalf("expected names with spaces to be rejected")
	}
}

func TestFindByIDAndProcessCommands(t *testing.T) {
	specDoc, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	add := specDoc.FindByID("add")
	if add == nil {
		t.Fatalf("expected add command")
	}
	if len(add.Params) != 3 || add.Params[2].Type != "int" {
		t.Fatalf("unexpected add params: %+v", add.Params)
	}
	if specDoc.FindByID("nope") != nil {
		t.Fatalf("expected nil for unknown id")
	}
	for _, cmd := range specDoc.ProcessCommands() {
		if cmd.ID == "exit" || cmd.ID == "clear" {
			t.Fatalf("shell-only command %s exposed to the process", cmd.ID)
		}
	}
}
