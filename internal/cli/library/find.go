package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/regenrek/shelf/internal/book"
	"github.com/regenrek/shelf/internal/cli/command"
)

// bookSource adapts a book list to fuzzy.Source over "title author".
type bookSource []book.Book

func (s bookSource) String(i int) string {
	return s[i].Title + " " + s[i].Author
}

func (s bookSource) Len() int {
	return len(s)
}

func (l *Library) find(call *command.Call) error {
	query := strings.TrimSpace(strings.Join(call.Args.Rest(), " "))
	if query == "" {
		return errors.New("nothing to search for")
	}
	books := bookSource(l.deps.Shelf.List())
	matches := fuzzy.FindFrom(query, books)
	if len(matches) == 0 {
		call.Out.Warning(fmt.Sprintf("No books match %q.", query))
		return nil
	}
	found := make([]book.Book, 0, len(matches))
	for _, m := range matches {
		found = append(found, books[m.Index])
	}
	call.Out.Print(renderTable(call.Out, found, l.deps.Settings().List.MaxTitleWidth))
	return nil
}
