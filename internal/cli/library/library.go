// Package library implements the book commands declared in commands.yaml.
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/regenrek/shelf/internal/book"
	"github.com/regenrek/shelf/internal/bookshelf"
	"github.com/regenrek/shelf/internal/cli/command"
	"github.com/regenrek/shelf/internal/config"
)

const minIDPrefix = 4

// Deps are the collaborators the commands act on.
type Deps struct {
	Shelf    *bookshelf.Shelf
	Settings func() config.Config
	Prompter Prompter
	// Clipboard defaults to the system clipboard.
	Clipboard   func(text string) error
	ClearScreen func()
	Version     string
	AppName     string
	// InShell is true when commands run from the interactive shell.
	InShell bool
}

// Library binds Deps to the command operations.
type Library struct {
	deps Deps
	reg  *command.Registry
}

// New returns a Library. Shelf is required.
func New(deps Deps) (*Library, error) {
	if deps.Shelf == nil {
		return nil, errors.New("library: shelf is required")
	}
	if deps.Settings == nil {
		deps.Settings = config.Defaults
	}
	if deps.Clipboard == nil {
		deps.Clipboard = clipboard.WriteAll
	}
	if strings.TrimSpace(deps.AppName) == "" {
		deps.AppName = "shelf"
	}
	return &Library{deps: deps}, nil
}

// Attach gives help access to the registry built from Operations.
func (l *Library) Attach(reg *command.Registry) {
	l.reg = reg
}

// Operations maps each command id to its body.
func (l *Library) Operations() command.Operations {
	return command.Operations{
		"add":     l.add,
		"list":    l.list,
		"show":    l.show,
		"status":  l.setStatus,
		"delete":  l.remove,
		"find":    l.find,
		"copy":    l.copyID,
		"help":    l.help,
		"version": l.version,
		"clear":   l.clear,
		"exit":    l.exit,
	}
}

// lookup finds a book by exact id or by a unique prefix of at least
// minIDPrefix characters.
func (l *Library) lookup(id string) (book.Book, error) {
	id = strings.TrimSpace(id)
	if b, ok := l.deps.Shelf.Get(id); ok {
		return b, nil
	}
	if len(id) < minIDPrefix {
		return book.Book{}, bookshelf.ErrNotFound
	}
	var matches []book.Book
	for _, b := range l.deps.Shelf.List() {
		if strings.HasPrefix(b.ID, id) {
			matches = append(matches, b)
		}
	}
	switch len(matches) {
	case 0:
		return book.Book{}, bookshelf.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return book.Book{}, fmt.Errorf("id %q matches %d books, type more of it", id, len(matches))
	}
}
