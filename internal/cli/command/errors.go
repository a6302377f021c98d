package command

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrQuit is returned by an operation to end the interactive session. It is
// never reported to the user.
var ErrQuit = errors.New("quit")

// RegistrationError is a malformed command definition. It is fatal at startup.
type RegistrationError struct {
	Command string
	Param   string
	Reason  string
}

func (e *RegistrationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("command %q: parameter %q: %s", e.Command, e.Param, e.Reason)
	}
	if e.Command != "" {
		return fmt.Sprintf("command %q: %s", e.Command, e.Reason)
	}
	return e.Reason
}

// ArgumentTypeError is a token that could not be coerced to its param's kind.
type ArgumentTypeError struct {
	Param Param
	Given string
	Err   error
}

func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf(`Expected "%s" argument to be %s, got "%s"`, e.Param.Name, e.Param.Kind, e.Given)
}

func (e *ArgumentTypeError) Unwrap() error {
	return e.Err
}

// UsageError reports that fewer required arguments were supplied than declared.
type UsageError struct {
	Names  []string
	Params Params
	Given  int
}

func (e *UsageError) Error() string {
	return "Usage: " + usageLine(e.Names, e.Params)
}

// UnknownCommandError is a dispatch for a name no command answers to.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf(`Unknown command: "%s"`, e.Name)
}

// OperationError wraps a failure raised by a command's own body. Its message
// is the underlying error's message with the first letter upper-cased, which
// is what the user sees.
type OperationError struct {
	Command string
	Err     error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return "Command failed"
	}
	return sentence(e.Err.Error())
}

func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}

func (e *OperationError) Unwrap() error {
	return e.Err
}
