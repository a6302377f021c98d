//go:build windows

package appdirs

import (
	"fmt"
	"os"

	"github.com/regenrek/shelf/internal/identity"
)

func dataHomeParts() []string {
	return []string{"AppData", "Local", identity.AppSlug}
}

func stateHomeParts() []string {
	return []string{"AppData", "Local", identity.AppSlug, "logs"}
}

// EnsurePrivateDir creates dir. ACLs are left to the platform defaults.
func EnsurePrivateDir(dir string, _ bool) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create dir: %w", err)
	}
	return dir, nil
}

// OwnedByCurrentUser is not tracked on windows.
func OwnedByCurrentUser(os.FileInfo) bool {
	return true
}
