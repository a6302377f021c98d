package runenv

import (
	"os"
	"strings"
)

const (
	ConfigDirEnv  = "SHELF_CONFIG_DIR"
	DataDirEnv    = "SHELF_DATA_DIR"
	StateDirEnv   = "SHELF_STATE_DIR"
	ConfigFileEnv = "SHELF_CONFIG"
	DataFileEnv   = "SHELF_DATA_FILE"
	NoColorEnv    = "NO_COLOR"
)

func enabledEnv(name string) bool {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return false
	}
	switch strings.ToLower(value) {
	case "0", "false", "no", "off":
		return false
	default:
		return true
	}
}

func ConfigDir() string {
	return strings.TrimSpace(os.Getenv(ConfigDirEnv))
}

func DataDir() string {
	return strings.TrimSpace(os.Getenv(DataDirEnv))
}

func StateDir() string {
	return strings.TrimSpace(os.Getenv(StateDirEnv))
}

func ConfigFile() string {
	return strings.TrimSpace(os.Getenv(ConfigFileEnv))
}

func DataFile() string {
	return strings.TrimSpace(os.Getenv(DataFileEnv))
}

// NoColor reports whether NO_COLOR asks for plain output.
// Any non-empty value other than an explicit "off" counts.
func NoColor() bool {
	return enabledEnv(NoColorEnv)
}
