package identity

import (
	"path/filepath"
	"strings"
)

const (
	BrandName = "Library Control"
	// AppSlug names on-disk state directories and the log file.
	AppSlug = "shelf"
	CLIName = "shelf"

	GlobalConfigFile = "config.toml"
	DataFile         = "books.json"
	LogFile          = "shelf.log"
)

// ResolveBinaryName returns the program name used in messages.
func ResolveBinaryName(args []string) string {
	if len(args) == 0 {
		return CLIName
	}
	base := strings.TrimSpace(filepath.Base(args[0]))
	base = strings.TrimSuffix(base, ".exe")
	if base == "" || base == "." || base == string(filepath.Separator) {
		return CLIName
	}
	return base
}
