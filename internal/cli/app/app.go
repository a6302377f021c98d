package app

import (
	"github.com/regenrek/shelf/internal/cli/root"
	"github.com/regenrek/shelf/internal/cli/spec"
)

// NewRunner builds the CLI runner from the embedded command table.
func NewRunner(deps root.Dependencies) (*root.Runner, error) {
	specDoc, err := spec.LoadDefault()
	if err != nil {
		return nil, err
	}
	if deps.Open == nil {
		deps.Open = Opener(specDoc)
	}
	return root.NewRunner(specDoc, deps)
}
