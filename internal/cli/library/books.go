package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/regenrek/shelf/internal/book"
	"github.com/regenrek/shelf/internal/cli/command"
)

func (l *Library) add(call *command.Call) error {
	year := call.Args.Int("year")
	if year < book.MinYear || year > book.MaxYear {
		return book.ErrInvalidYear
	}
	b, err := book.New(call.Args.String("title"), call.Args.String("author"), int(year))
	if err != nil {
		return err
	}
	if err := l.deps.Shelf.Put(b); err != nil {
		return err
	}
	call.Out.Info(fmt.Sprintf("Added %q with id %s", b.Title, b.ID))
	return nil
}

func (l *Library) list(call *command.Call) error {
	books := l.deps.Shelf.List()
	if len(books) == 0 {
		call.Out.Warning("No books yet.")
		return nil
	}
	if call.Args.Has("status") {
		status, err := book.ParseStatus(call.Args.String("status"))
		if err != nil {
			return err
		}
		filtered := books[:0]
		for _, b := range books {
			if b.Status == status {
				filtered = append(filtered, b)
			}
		}
		books = filtered
		if len(books) == 0 {
			call.Out.Warning(fmt.Sprintf("No books with status %q.", status.String()))
			return nil
		}
	}
	call.Out.Print(renderTable(call.Out, books, l.deps.Settings().List.MaxTitleWidth))
	return nil
}

func (l *Library) show(call *command.Call) error {
	b, err := l.lookup(call.Args.String("id"))
	if err != nil {
		return err
	}
	call.Out.Print(renderDetails(call.Out, b))
	return nil
}

func (l *Library) setStatus(call *command.Call) error {
	b, err := l.lookup(call.Args.String("id"))
	if err != nil {
		return err
	}
	status, err := book.ParseStatus(call.Args.String("status"))
	if err != nil {
		return err
	}
	if b.Status == status {
		call.Out.Info(fmt.Sprintf("%q is already %s", b.Title, strings.ToLower(status.String())))
		return nil
	}
	b.Status = status
	if err := l.deps.Shelf.Put(b); err != nil {
		return err
	}
	call.Out.Info(fmt.Sprintf("Status of %q set to %s", b.Title, strings.ToLower(status.String())))
	return nil
}

func (l *Library) remove(call *command.Call) error {
	b, err := l.lookup(call.Args.String("id"))
	if err != nil {
		return err
	}
	force := call.Args.Bool("force")
	if !force && l.deps.Settings().Shell.ConfirmDeleteEnabled() && l.deps.Prompter != nil {
		ok, err := Confirm(call.Context, l.deps.Prompter, fmt.Sprintf("Delete %q by %s?", b.Title, b.Author))
		if err != nil {
			if errors.Is(err, ErrCancelled) {
				call.Out.Info("Cancelled.")
				return nil
			}
			return err
		}
		if !ok {
			call.Out.Info("Cancelled.")
			return nil
		}
	}
	if _, err := l.deps.Shelf.Remove(b.ID); err != nil {
		return err
	}
	call.Out.Info(fmt.Sprintf("Deleted %q", b.Title))
	return nil
}
