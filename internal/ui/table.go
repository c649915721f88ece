package ui

import (
	"fmt"
	"io"
	"strings"
)

// Table represents a simple table renderer
type Table struct {
	headers []string
	rows    [][]string
	widths  []int
}

// NewTable creates a new table with the given headers
func NewTable(headers ...string) *Table {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		widths:  widths,
	}
}

// AddRow adds a row to the table
func (t *Table) AddRow(cells ...string) {
	// Pad or truncate cells to match header count
	row := make([]string, len(t.headers))
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
			if len(cells[i]) > t.widths[i] {
				t.widths[i] = len(cells[i])
			}
		}
	}
	t.rows = append(t.rows, row)
}

// Render renders the table to the writer
func (t *Table) Render(w io.Writer) {
	if len(t.headers) == 0 {
		return
	}

	headerCells := make([]string, len(t.headers))
	for i, h := range t.headers {
		headerCells[i] = StyleBold.Render(padRight(h, t.widths[i]))
	}
	headerLine := strings.Join(headerCells, "  ")

	sepParts := make([]string, len(t.widths))
	for i, w := range t.widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	separator := StyleMuted.Render(strings.Join(sepParts, "──"))

	fmt.Fprintln(w, headerLine)
	fmt.Fprintln(w, separator)

	for _, row := range t.rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = padRight(cell, t.widths[i])
		}
		fmt.Fprintln(w, strings.Join(cells, "  "))
	}
}

// String returns the table as a string
func (t *Table) String() string {
	var sb strings.Builder
	t.Render(&sb)
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
