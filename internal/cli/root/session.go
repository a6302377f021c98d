package root

import "context"

// Session is an opened library: data file loaded, commands registered.
type Session interface {
	// Dispatch runs one command. Feedback has already been written when it
	// returns; the error only classifies the outcome.
	Dispatch(ctx context.Context, name string, args []string) error
	// Shell runs the interactive loop.
	Shell(ctx context.Context) error
	Close() error
}

// Opener creates a Session from the parsed global flags.
type Opener func(ctx context.Context, deps Dependencies, globals Globals, interactive bool) (Session, error)
