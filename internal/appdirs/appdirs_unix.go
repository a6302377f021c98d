//go:build !windows

package appdirs

import (
	"fmt"
	"log/slog"
	"os"
	"sync"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/regenrek/shelf/internal/identity"
)

var dirPermsWarnOnce sync.Once

func dataHomeParts() []string {
	return []string{".local", "share", identity.AppSlug}
}

func stateHomeParts() []string {
	return []string{".local", "state", identity.AppSlug}
}

// EnsurePrivateDir creates dir with 0700 or tightens an existing one the user owns.
// Overrides chosen by the user are left alone apart from a warning.
func EnsurePrivateDir(dir string, isOverride bool) (string, error) {
	if dir == "" {
		return "", fmt.Errorf("directory path is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", fmt.Errorf("stat dir: %w", err)
		}
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return "", fmt.Errorf("create dir: %w", err)
		}
		return dir, nil
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%q is not a directory", dir)
	}
	mode := info.Mode().Perm()
	if mode&0o077 == 0 {
		return dir, nil
	}
	if isOverride {
		dirPermsWarnOnce.Do(func() {
			slog.Warn("dir is group/world accessible; consider chmod 0700", "path", dir, "mode", mode.String())
		})
		return dir, nil
	}
	if OwnedByCurrentUser(info) {
		if err := os.Chmod(dir, 0o700); err != nil {
			return "", fmt.Errorf("chmod dir: %w", err)
		}
		return dir, nil
	}
	dirPermsWarnOnce.Do(func() {
		slog.Warn("dir is not owned by current user; permissions unchanged", "path", dir, "mode", mode.String())
	})
	return dir, nil
}

// OwnedByCurrentUser reports whether info belongs to the calling user.
func OwnedByCurrentUser(info os.FileInfo) bool {
	if info == nil {
		return false
	}
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return false
	}
	return stat.Uid == uint32(unix.Getuid())
}
