package library

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/charmbracelet/x/ansi"

	"github.com/regenrek/shelf/internal/book"
	"github.com/regenrek/shelf/internal/output"
)

const ellipsis = "…"

func renderTable(out output.Sink, books []book.Book, maxTitle int) string {
	r := output.RendererFor(out)
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)
	handed := cell.Foreground(lipgloss.Color("3"))

	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{
			b.ID,
			ansi.Truncate(b.Title, maxTitle, ellipsis),
			b.Author,
			strconv.Itoa(b.Year),
			b.Status.String(),
		})
	}
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Faint(true)).
		Headers("ID", "Title", "Author", "Year", "Status").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case col == 4 && books[row].Status == book.HandedOver:
				return handed
			default:
				return cell
			}
		})
	return t.String()
}

func renderDetails(out output.Sink, b book.Book) string {
	r := output.RendererFor(out)
	label := r.NewStyle().Bold(true).Width(8)
	lines := []string{
		label.Render("ID") + b.ID,
		label.Render("Title") + b.Title,
		label.Render("Author") + b.Author,
		label.Render("Year") + strconv.Itoa(b.Year),
		label.Render("Status") + b.Status.String(),
	}
	return strings.Join(lines, "\n")
}
