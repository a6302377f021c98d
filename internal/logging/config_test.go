package logging

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigByMode(t *testing.T) {
	cli := DefaultConfig(ModeCLI)
	if *cli.Sink != string(SinkStderr) || *cli.Level != "error" {
		t.Fatalf("unexpected cli defaults: sink=%s level=%s", *cli.Sink, *cli.Level)
	}
	shell := DefaultConfig(ModeShell)
	if *shell.Sink != string(SinkFile) || *shell.Format != string(FormatJSON) {
		t.Fatalf("unexpected shell defaults: sink=%s format=%s", *shell.Sink, *shell.Format)
	}
}

func TestWithEnvOverrides(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvLogCompress, "off")
	t.Setenv(EnvLogMaxBackups, "nope")
	cfg := DefaultConfig(ModeCLI).WithEnv()
	normalized, err := cfg.Normalize()
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if *normalized.Level != "debug" {
		t.Fatalf("level = %q", *normalized.Level)
	}
	if *normalized.Compress {
		t.Fatalf("expected compress disabled")
	}
	if *normalized.MaxBackups != 3 {
		t.Fatalf("invalid int env should be ignored, got %d", *normalized.MaxBackups)
	}
}

func TestNormalizeRejectsUnknownSink(t *testing.T) {
	sink := "syslog"
	if _, err := (Config{Sink: &sink}).Normalize(); err == nil {
		t.Fatalf("expected invalid sink error")
	}
}

func TestNormalizeClampsNegative(t *testing.T) {
	n := -4
	cfg, err := (Config{MaxAgeDays: &n}).Normalize()
	if err != nil {
		t.Fatalf("Normalize() error: %v", err)
	}
	if *cfg.MaxAgeDays != 0 {
		t.Fatalf("MaxAgeDays = %d, want 0", *cfg.MaxAgeDays)
	}
}

func TestModeFromArgs(t *testing.T) {
	cases := []struct {
		args []string
		want Mode
	}{
		{[]string{"shelf"}, ModeShell},
		{[]string{"shelf", "shell"}, ModeShell},
		{[]string{"shelf", "--data", "books.json"}, ModeShell},
		{[]string{"shelf", "-d", "books.json", "list"}, ModeCLI},
		{[]string{"shelf", "--no-color", "add", "Dune"}, ModeCLI},
	}
	for _, tc := range cases {
		if got := ModeFromArgs(tc.args); got != tc.want {
			t.Fatalf("ModeFromArgs(%v) = %s, want %s", tc.args, got, tc.want)
		}
	}
}

func TestInitFileSink(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	path := filepath.Join(t.TempDir(), "logs", "shelf.log")
	sink := string(SinkFile)
	level := "info"
	closeFn, err := Init(context.Background(), Config{Sink: &sink, File: &path, Level: &level}, InitOptions{Version: "test", Mode: ModeShell})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	slog.Info("hello")
	if err := closeFn(); err != nil {
		t.Fatalf("close error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if len(data) == 0 {
		t.Fatalf("expected log output")
	}
}

func TestFlagValue(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"shelf"}, ""},
		{[]string{"shelf", "-c", "a.toml", "list"}, "a.toml"},
		{[]string{"shelf", "--config=b.toml"}, "b.toml"},
		{[]string{"shelf", "-d", "x.json", "--config", "c.toml"}, "c.toml"},
		{[]string{"shelf", "list", "-c", "late.toml"}, ""},
		{[]string{"shelf", "--config"}, ""},
	}
	for _, tc := range cases {
		if got := FlagValue(tc.args, "-c", "--config"); got != tc.want {
			t.Fatalf("FlagValue(%v) = %q, want %q", tc.args, got, tc.want)
		}
	}
}

func TestInitLevelOverride(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	t.Setenv("SHELF_LOG_LEVEL", "error")

	sink := string(SinkNone)
	closeFn, err := Init(context.Background(), Config{Sink: &sink}, InitOptions{Mode: ModeCLI, Level: "debug"})
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer func() { _ = closeFn() }()
	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Fatalf("expected the flag level to win over the environment")
	}
}
