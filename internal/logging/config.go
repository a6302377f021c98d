package logging

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

type Sink string

const (
	SinkStderr Sink = "stderr"
	SinkFile   Sink = "file"
	SinkNone   Sink = "none"
)

const (
	EnvLogLevel       = "SHELF_LOG_LEVEL"
	EnvLogFormat      = "SHELF_LOG_FORMAT"
	EnvLogSink        = "SHELF_LOG_SINK"
	EnvLogFile        = "SHELF_LOG_FILE"
	EnvLogAddSource   = "SHELF_LOG_ADD_SOURCE"
	EnvLogIncludeArgs = "SHELF_LOG_INCLUDE_ARGS"
	EnvLogMaxSizeMB   = "SHELF_LOG_MAX_SIZE_MB"
	EnvLogMaxBackups  = "SHELF_LOG_MAX_BACKUPS"
	EnvLogMaxAgeDays  = "SHELF_LOG_MAX_AGE_DAYS"
	EnvLogCompress    = "SHELF_LOG_COMPRESS"
)

// Config is the [logging] table of config.toml. Nil fields fall back to the
// defaults for the current mode.
type Config struct {
	Level       *string `toml:"level,omitempty"`
	Format      *string `toml:"format,omitempty"`
	Sink        *string `toml:"sink,omitempty"`
	File        *string `toml:"file,omitempty"`
	AddSource   *bool   `toml:"add_source,omitempty"`
	IncludeArgs *bool   `toml:"include_args,omitempty"`

	MaxSizeMB  *int  `toml:"max_size_mb,omitempty"`
	MaxBackups *int  `toml:"max_backups,omitempty"`
	MaxAgeDays *int  `toml:"max_age_days,omitempty"`
	Compress   *bool `toml:"compress,omitempty"`
}

func DefaultConfig(mode Mode) Config {
	// One-shot commands stay quiet on stderr; the shell logs to a file so
	// records never land between the prompt and the user's input.
	level := "error"
	sink := string(SinkStderr)
	format := string(FormatText)
	addSource := false

	if mode == ModeShell {
		level = "info"
		sink = string(SinkFile)
		format = string(FormatJSON)
	}

	maxSizeMB := 5
	maxBackups := 3
	maxAgeDays := 14
	compress := true
	includeArgs := false

	return Config{
		Level:       &level,
		Format:      &format,
		Sink:        &sink,
		AddSource:   &addSource,
		IncludeArgs: &includeArgs,
		MaxSizeMB:   &maxSizeMB,
		MaxBackups:  &maxBackups,
		MaxAgeDays:  &maxAgeDays,
		Compress:    &compress,
	}
}

func (c Config) WithEnv() Config {
	applyString := func(dst **string, env string) {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			*dst = &v
		}
	}
	applyBool := func(dst **bool, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		v := !isDisabledString(raw)
		*dst = &v
	}
	applyInt := func(dst **int, env string) {
		raw := strings.TrimSpace(os.Getenv(env))
		if raw == "" {
			return
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return
		}
		*dst = &n
	}

	applyString(&c.Level, EnvLogLevel)
	applyString(&c.Format, EnvLogFormat)
	applyString(&c.Sink, EnvLogSink)
	applyString(&c.File, EnvLogFile)
	applyBool(&c.AddSource, EnvLogAddSource)
	applyBool(&c.IncludeArgs, EnvLogIncludeArgs)
	applyInt(&c.MaxSizeMB, EnvLogMaxSizeMB)
	applyInt(&c.MaxBackups, EnvLogMaxBackups)
	applyInt(&c.MaxAgeDays, EnvLogMaxAgeDays)
	applyBool(&c.Compress, EnvLogCompress)
	return c
}

func (c Config) Normalize() (Config, error) {
	normalizeString := func(s *string) *string {
		if s == nil {
			return nil
		}
		v := strings.ToLower(strings.TrimSpace(*s))
		if v == "" {
			return nil
		}
		return &v
	}
	clampZero := func(n *int) *int {
		if n == nil || *n >= 0 {
			return n
		}
		zero := 0
		return &zero
	}
	c.Level = normalizeString(c.Level)
	c.Format = normalizeString(c.Format)
	c.Sink = normalizeString(c.Sink)
	if c.File != nil {
		v := strings.TrimSpace(*c.File)
		if v == "" {
			c.File = nil
		} else {
			c.File = &v
		}
	}
	c.MaxSizeMB = clampZero(c.MaxSizeMB)
	c.MaxBackups = clampZero(c.MaxBackups)
	c.MaxAgeDays = clampZero(c.MaxAgeDays)
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.Level != nil {
		switch *c.Level {
		case "debug", "info", "warn", "warning", "error":
		default:
			return fmt.Errorf("logging.level: invalid %q", *c.Level)
		}
	}
	if c.Format != nil {
		switch Format(*c.Format) {
		case FormatText, FormatJSON:
		default:
			return fmt.Errorf("logging.format: invalid %q", *c.Format)
		}
	}
	if c.Sink != nil {
		switch Sink(*c.Sink) {
		case SinkStderr, SinkFile, SinkNone:
		default:
			return fmt.Errorf("logging.sink: invalid %q", *c.Sink)
		}
	}
	return nil
}

// Merge overlays the non-nil fields of override onto c.
func (c Config) Merge(override Config) Config {
	out := c
	if override.Level != nil {
		out.Level = override.Level
	}
	if override.Format != nil {
		out.Format = override.Format
	}
	if override.Sink != nil {
		out.Sink = override.Sink
	}
	if override.File != nil {
		out.File = override.File
	}
	if override.AddSource != nil {
		out.AddSource = override.AddSource
	}
	if override.IncludeArgs != nil {
		out.IncludeArgs = override.IncludeArgs
	}
	if override.MaxSizeMB != nil {
		out.MaxSizeMB = override.MaxSizeMB
	}
	if override.MaxBackups != nil {
		out.MaxBackups = override.MaxBackups
	}
	if override.MaxAgeDays != nil {
		out.MaxAgeDays = override.MaxAgeDays
	}
	if override.Compress != nil {
		out.Compress = override.Compress
	}
	return out
}

func isDisabledString(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "0", "false", "no", "off":
		return true
	default:
		return false
	}
}
