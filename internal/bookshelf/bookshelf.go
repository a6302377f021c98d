// Package bookshelf keeps books keyed by id and persists every change to a
// JSON file before returning.
package bookshelf

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/regenrek/shelf/internal/atomicfile"
	"github.com/regenrek/shelf/internal/book"
)

var (
	ErrNotFound = errors.New("book not found")
	ErrCorrupt  = errors.New("corrupt data file")
)

// CorruptDataError reports a data file that could not be decoded. The file is
// moved to Backup so the next save starts clean without losing the original.
type CorruptDataError struct {
	Path   string
	Backup string
	Err    error
}

func (e *CorruptDataError) Error() string {
	msg := fmt.Sprintf("invalid data in file %q", e.Path)
	if e.Backup != "" {
		msg += fmt.Sprintf(" (moved to %q)", e.Backup)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CorruptDataError) Unwrap() []error {
	return []error{ErrCorrupt, e.Err}
}

// Shelf is the in-memory view of the data file.
type Shelf struct {
	path  string
	books map[string]book.Book
}

// Open loads path. A missing file yields an empty shelf.
func Open(path string) (*Shelf, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errors.New("bookshelf: data file path is required")
	}
	s := &Shelf{path: path, books: make(map[string]book.Book)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the data file location.
func (s *Shelf) Path() string {
	return s.path
}

func (s *Shelf) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("bookshelf: read %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return s.quarantine(err)
	}
	if raw == nil {
		return s.quarantine(errors.New("top-level value is not an object"))
	}
	for key, obj := range raw {
		var b book.Book
		if err := json.Unmarshal(obj, &b); err != nil {
			slog.Warn("bookshelf: skipping invalid record", "key", key, "err", err)
			continue
		}
		s.books[b.ID] = b
	}
	return nil
}

func (s *Shelf) quarantine(cause error) error {
	backup := s.path + ".corrupt"
	if err := os.Rename(s.path, backup); err != nil {
		slog.Error("bookshelf: move corrupt file", "path", s.path, "err", err)
		backup = ""
	}
	return &CorruptDataError{Path: s.path, Backup: backup, Err: cause}
}

func (s *Shelf) save() error {
	if err := atomicfile.WriteJSON(s.path, s.books, 0o600); err != nil {
		return fmt.Errorf("bookshelf: save: %w", err)
	}
	return nil
}

// Put adds b or replaces the book with the same id, then saves.
func (s *Shelf) Put(b book.Book) error {
	if strings.TrimSpace(b.ID) == "" {
		id, err := book.NewID()
		if err != nil {
			return err
		}
		b.ID = id
	}
	prev, existed := s.books[b.ID]
	s.books[b.ID] = b
	if err := s.save(); err != nil {
		if existed {
			s.books[b.ID] = prev
		} else {
			delete(s.books, b.ID)
		}
		return err
	}
	return nil
}

// Get returns the book with id.
func (s *Shelf) Get(id string) (book.Book, bool) {
	b, ok := s.books[strings.TrimSpace(id)]
	return b, ok
}

// Remove deletes the book with id and saves.
func (s *Shelf) Remove(id string) (book.Book, error) {
	id = strings.TrimSpace(id)
	b, ok := s.books[id]
	if !ok {
		return book.Book{}, ErrNotFound
	}
	delete(s.books, id)
	if err := s.save(); err != nil {
		s.books[id] = b
		return book.Book{}, err
	}
	return b, nil
}

// List returns all books ordered by title, then id.
func (s *Shelf) List() []book.Book {
	out := make([]book.Book, 0, len(s.books))
	for _, b := range s.books {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool {
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func (s *Shelf) Len() int {
	return len(s.books)
}
