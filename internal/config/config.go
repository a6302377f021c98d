package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/regenrek/shelf/internal/appdirs"
	"github.com/regenrek/shelf/internal/logging"
	"github.com/regenrek/shelf/internal/output"
	"github.com/regenrek/shelf/internal/runenv"
	"github.com/regenrek/shelf/internal/userpath"
)

const (
	defaultPrompt        = "> "
	defaultMaxTitleWidth = 40
	minTitleWidth        = 8
)

// Config represents config.toml.
type Config struct {
	DataFile string         `toml:"data_file"`
	Color    string         `toml:"color"`
	Shell    ShellConfig    `toml:"shell"`
	List     ListConfig     `toml:"list"`
	Logging  logging.Config `toml:"logging"`
}

// ShellConfig configures the interactive shell.
type ShellConfig struct {
	Prompt        string `toml:"prompt"`
	Banner        *bool  `toml:"banner"`
	ClearScreen   bool   `toml:"clear_screen"`
	ConfirmDelete *bool  `toml:"confirm_delete"`
}

// ListConfig configures the list table.
type ListConfig struct {
	MaxTitleWidth int `toml:"max_title_width"`
}

// Overrides carries values from command-line flags. Empty fields are unset.
type Overrides struct {
	DataFile string
	Color    string
	LogLevel string
}

// Defaults returns the default configuration.
func Defaults() Config {
	return Config{
		Color: string(output.ColorAuto),
		Shell: ShellConfig{
			Prompt: defaultPrompt,
		},
		List: ListConfig{
			MaxTitleWidth: defaultMaxTitleWidth,
		},
	}
}

// DefaultPath returns SHELF_CONFIG when set, else <config dir>/config.toml.
func DefaultPath() (string, error) {
	if path := runenv.ConfigFile(); path != "" {
		return userpath.Resolve(path)
	}
	return appdirs.DefaultConfigFile()
}

// BannerEnabled reports whether the shell prints its banner. Defaults to true.
func (s ShellConfig) BannerEnabled() bool {
	return s.Banner == nil || *s.Banner
}

// ConfirmDeleteEnabled reports whether delete asks before removing a book.
// Defaults to true.
func (s ShellConfig) ConfirmDeleteEnabled() bool {
	return s.ConfirmDelete == nil || *s.ConfirmDelete
}

// ColorMode parses Color.
func (c Config) ColorMode() (output.ColorMode, error) {
	return output.ParseColorMode(c.Color)
}

// WithEnv applies SHELF_DATA_FILE and NO_COLOR.
func (c Config) WithEnv() Config {
	if path := runenv.DataFile(); path != "" {
		c.DataFile = path
	}
	if runenv.NoColor() {
		c.Color = string(output.ColorNever)
	}
	return c
}

// WithOverrides applies flag values on top of c.
func (c Config) WithOverrides(o Overrides) Config {
	if v := strings.TrimSpace(o.DataFile); v != "" {
		c.DataFile = v
	}
	if v := strings.TrimSpace(o.Color); v != "" {
		c.Color = v
	}
	if v := strings.TrimSpace(o.LogLevel); v != "" {
		c.Logging.Level = &v
	}
	return c
}

// ResolveDataFile returns the absolute books file path, falling back to the
// default data directory.
func (c Config) ResolveDataFile() (string, error) {
	if path := strings.TrimSpace(c.DataFile); path != "" {
		return userpath.Resolve(path)
	}
	return appdirs.DefaultDataFile()
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := c.ColorMode(); err != nil {
		return err
	}
	if c.List.MaxTitleWidth < minTitleWidth {
		return fmt.Errorf("list.max_title_width must be at least %d", minTitleWidth)
	}
	return nil
}

// Loader caches config values and reloads when the file changes.
type Loader struct {
	path     string
	lastRead fileState
	cached   Config
}

type fileState struct {
	modTime time.Time
	size    int64
}

// NewLoader creates a config loader for the provided path.
func NewLoader(path string) *Loader {
	return &Loader{
		path:   strings.TrimSpace(path),
		cached: Defaults(),
	}
}

// Path returns the file the loader reads.
func (l *Loader) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Load returns the cached config, reloading if the file changed. A missing
// file yields the defaults.
func (l *Loader) Load() (Config, error) {
	if l == nil {
		return Defaults(), errors.New("nil loader")
	}
	path := l.path
	if path == "" {
		return Defaults(), errors.New("empty config path")
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.cached = Defaults()
			l.lastRead = fileState{}
			return l.cached, nil
		}
		return Defaults(), fmt.Errorf("config: %w", err)
	}
	state := fileState{modTime: info.ModTime(), size: info.Size()}
	if state == l.lastRead {
		return l.cached, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Defaults(), fmt.Errorf("config: %w", err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Defaults(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	applyDefaults(&cfg)
	if err := cfg.Validate(); err != nil {
		return Defaults(), fmt.Errorf("config: %s: %w", path, err)
	}
	l.cached = cfg
	l.lastRead = state
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}
	if strings.TrimSpace(cfg.Color) == "" {
		cfg.Color = string(output.ColorAuto)
	}
	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = defaultPrompt
	}
	if cfg.List.MaxTitleWidth == 0 {
		cfg.List.MaxTitleWidth = defaultMaxTitleWidth
	}
}
