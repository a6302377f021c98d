// Package book defines the library record and its status.
package book

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

// Status tracks whether a book is on the shelf. The numeric values are the
// on-disk encoding.
type Status int

const (
	HandedOver Status = 0
	InStock    Status = 1
)

const (
	MinYear = 1
	MaxYear = 9999

	idBytes = 6
)

var (
	ErrEmptyTitle   = errors.New("title must not be empty")
	ErrEmptyAuthor  = errors.New("author must not be empty")
	ErrInvalidYear  = fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	ErrUnknownState = errors.New("unknown status")
)

// Book is one library record.
type Book struct {
	Title  string
	Author string
	Year   int
	Status Status
	ID     string
}

// New validates the fields and returns an in-stock book with a fresh ID.
func New(title, author string, year int) (Book, error) {
	b := Book{
		Title:  strings.TrimSpace(title),
		Author: strings.TrimSpace(author),
		Year:   year,
		Status: InStock,
	}
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	id, err := NewID()
	if err != nil {
		return Book{}, err
	}
	b.ID = id
	return b, nil
}

// Validate checks the user-editable fields.
func (b Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(b.Author) == "" {
		return ErrEmptyAuthor
	}
	if b.Year < MinYear || b.Year > MaxYear {
		return ErrInvalidYear
	}
	if !b.Status.Valid() {
		return ErrUnknownState
	}
	return nil
}

// NewID returns a random 12-character hex identifier.
func NewID() (string, error) {
	buf := make([]byte, idBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate book id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func (s Status) Valid() bool {
	return s == InStock || s == HandedOver
}

// String returns the label shown in listings.
func (s Status) String() string {
	switch s {
	case InStock:
		return "In stock"
	case HandedOver:
		return "Handed over"
	default:
		return "Unknown status"
	}
}

// Key returns the identifier used on the command line.
func (s Status) Key() string {
	switch s {
	case InStock:
		return "in_stock"
	case HandedOver:
		return "handed_over"
	default:
		return "unknown"
	}
}

// ParseStatus accepts the command line spellings of a status.
func ParseStatus(value string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "stock", "in_stock", "in-stock", "in":
		return InStock, nil
	case "handed", "handed_over", "handed-over", "out":
		return HandedOver, nil
	default:
		return 0, fmt.Errorf("%w %q (use stock or handed)", ErrUnknownState, value)
	}
}
