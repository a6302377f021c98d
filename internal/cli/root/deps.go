package root

import (
	"io"
	"os"

	"github.com/regenrek/shelf/internal/identity"
)

// Dependencies provides the process streams and build info to the CLI.
type Dependencies struct {
	Version string
	AppName string

	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader

	// Open starts a session for one process invocation.
	Open Opener
}

// DefaultDependencies returns dependencies wired to the process streams.
// Open is left for the composition root to fill in.
func DefaultDependencies(version string) Dependencies {
	return Dependencies{
		Version: version,
		AppName: identity.CLIName,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
		Stdin:   os.Stdin,
	}
}
