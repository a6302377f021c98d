package logging

import "strings"

type Mode uint8

const (
	ModeCLI Mode = iota + 1
	ModeShell
)

// valueFlags are global flags whose value is passed as the next argument.
var valueFlags = map[string]bool{
	"-d": true, "--data": true,
	"-c": true, "--config": true,
	"--color": true, "--log-level": true,
}

// ModeFromArgs picks shell mode for a bare invocation or the shell
// subcommand, and CLI mode for anything that runs a single command.
func ModeFromArgs(args []string) Mode {
	if len(args) < 2 {
		return ModeShell
	}
	skip := false
	for _, arg := range args[1:] {
		arg = strings.TrimSpace(arg)
		if skip {
			skip = false
			continue
		}
		if arg == "" {
			continue
		}
		if strings.HasPrefix(arg, "-") {
			skip = valueFlags[arg]
			continue
		}
		if strings.EqualFold(arg, "shell") {
			return ModeShell
		}
		return ModeCLI
	}
	return ModeShell
}

// FlagValue returns the value of the first global flag in names, accepting
// both "--flag value" and "--flag=value". Scanning stops at the subcommand.
func FlagValue(args []string, names ...string) string {
	if len(args) < 2 {
		return ""
	}
	want := make(map[string]bool, len(names))
	for _, name := range names {
		want[name] = true
	}
	for i := 1; i < len(args); i++ {
		arg := strings.TrimSpace(args[i])
		if !strings.HasPrefix(arg, "-") {
			return ""
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if want[name] {
			if hasValue {
				return strings.TrimSpace(value)
			}
			if i+1 < len(args) {
				return strings.TrimSpace(args[i+1])
			}
			return ""
		}
		if !hasValue && valueFlags[name] {
			i++
		}
	}
	return ""
}

func (m Mode) String() string {
	switch m {
	case ModeShell:
		return "shell"
	default:
		return "cli"
	}
}
