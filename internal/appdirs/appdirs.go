package appdirs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/regenrek/shelf/internal/identity"
	"github.com/regenrek/shelf/internal/runenv"
)

// ConfigDirPath returns the config directory without creating it.
func ConfigDirPath() (string, error) {
	if override := runenv.ConfigDir(); override != "" {
		return override, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, identity.AppSlug), nil
}

// DataDirPath returns the directory holding the books file without creating it.
func DataDirPath() (string, error) {
	if override := runenv.DataDir(); override != "" {
		return override, nil
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, identity.AppSlug), nil
	}
	return homeSubdir(dataHomeParts()...)
}

// StateDirPath returns the directory used for logs without creating it.
func StateDirPath() (string, error) {
	if override := runenv.StateDir(); override != "" {
		return override, nil
	}
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, identity.AppSlug), nil
	}
	return homeSubdir(stateHomeParts()...)
}

// DefaultDataFile returns the default books file path.
func DefaultDataFile() (string, error) {
	dir, err := DataDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.DataFile), nil
}

// DefaultConfigFile returns the default config file path.
func DefaultConfigFile() (string, error) {
	dir, err := ConfigDirPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, identity.GlobalConfigFile), nil
}

// StateDir returns the state directory, creating it with private permissions.
func StateDir() (string, error) {
	dir, err := StateDirPath()
	if err != nil {
		return "", err
	}
	return EnsurePrivateDir(dir, runenv.StateDir() != "")
}

func homeSubdir(parts ...string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(append([]string{home}, parts...)...), nil
}
