package book

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// record is the on-disk shape of a book.
type record struct {
	Title  string          `json:"title"`
	Author string          `json:"author"`
	Year   json.RawMessage `json:"year"`
	Status json.RawMessage `json:"status"`
	ID     string          `json:"id"`
}

func (b Book) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		Year   int    `json:"year"`
		Status int    `json:"status"`
		ID     string `json:"id"`
	}{b.Title, b.Author, b.Year, int(b.Status), b.ID})
}

// UnmarshalJSON accepts year and status as numbers or numeric strings, the
// same leniency older data files relied on.
func (b *Book) UnmarshalJSON(data []byte) error {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	if rec.Title == "" || rec.Author == "" || strings.TrimSpace(rec.ID) == "" {
		return errors.New("book record missing title, author or id")
	}
	year, err := lenientInt(rec.Year)
	if err != nil {
		return fmt.Errorf("book %s: year: %w", rec.ID, err)
	}
	status, err := lenientInt(rec.Status)
	if err != nil {
		return fmt.Errorf("book %s: status: %w", rec.ID, err)
	}
	if !Status(status).Valid() {
		return fmt.Errorf("book %s: %w %d", rec.ID, ErrUnknownState, status)
	}
	*b = Book{
		Title:  rec.Title,
		Author: rec.Author,
		Year:   year,
		Status: Status(status),
		ID:     rec.ID,
	}
	return nil
}

func lenientInt(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, errors.New("missing")
	}
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, fmt.Errorf("not a number: %s", string(raw))
	}
	return strconv.Atoi(strings.TrimSpace(s))
}
