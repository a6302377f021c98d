package runenv

import "testing"

func TestNoColor(t *testing.T) {
	t.Setenv(NoColorEnv, "")
	if NoColor() {
		t.Fatalf("expected color when NO_COLOR is empty")
	}
	t.Setenv(NoColorEnv, "1")
	if !NoColor() {
		t.Fatalf("expected no color when NO_COLOR=1")
	}
	t.Setenv(NoColorEnv, "off")
	if NoColor() {
		t.Fatalf("expected color when NO_COLOR=off")
	}
}

func TestOverridesTrimmed(t *testing.T) {
	t.Setenv(DataFileEnv, "  /tmp/books.json ")
	if got := DataFile(); got != "/tmp/books.json" {
		t.Fatalf("DataFile() = %q", got)
	}
	t.Setenv(ConfigDirEnv, "")
	if got := ConfigDir(); got != "" {
		t.Fatalf("ConfigDir() = %q", got)
	}
}
