package logging

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"
)

var includeArgs atomic.Bool

func setIncludeArgs(v bool) {
	includeArgs.Store(v)
}

func IncludeArgs() bool {
	return includeArgs.Load()
}

// ArgsAttr returns a log attribute for raw command arguments. Titles and
// authors are personal data, so unless include_args is set only the count
// and a short hash are logged.
func ArgsAttr(key string, args []string) slog.Attr {
	if key == "" {
		key = "args"
	}
	if len(args) == 0 {
		return slog.String(key, "[]")
	}
	if !IncludeArgs() {
		return slog.String(key, redactedArgs(args))
	}
	return slog.String(key, fmt.Sprintf("%q", args))
}

func redactedArgs(args []string) string {
	sum := sha256.Sum256([]byte(strings.Join(args, "\x00")))
	return fmt.Sprintf("redacted(n=%d sha256=%s)", len(args), hex.EncodeToString(sum[:6]))
}
