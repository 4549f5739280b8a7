package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Table accumulates rows and renders them column-aligned. Rows are
// retained so the same data can be re-sorted and rendered more than once.
// Column widths are computed from display width, so highlighted cells
// don't skew alignment. An empty table renders nothing.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable creates a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// Row appends a row. Short rows are padded with empty cells.
func (t *Table) Row(values ...string) {
	row := make([]string, len(t.headers))
	copy(row, values)
	t.rows = append(t.rows, row)
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// SortBy stably re-orders rows by the given column.
func (t *Table) SortBy(col int) {
	if col < 0 || col >= len(t.headers) {
		return
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return t.rows[i][col] < t.rows[j][col]
	})
}

// Render writes headers, a dash divider, and all rows. Nothing is written
// for an empty table.
func (t *Table) Render(w io.Writer) {
	t.render(w, -1)
}

// RenderHighlighted renders like Render but gives alternating value groups
// in the given column a yellow background: the highlight toggles each time
// the column's value changes, making group boundaries visible after a sort.
func (t *Table) RenderHighlighted(w io.Writer, col int) {
	t.render(w, col)
}

func (t *Table) render(w io.Writer, highlightCol int) {
	if len(t.rows) == 0 {
		return
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = visualLen(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if l := visualLen(cell); l > widths[i] {
				widths[i] = l
			}
		}
	}

	writeRow := func(cells []string) {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = padCell(cell, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
	}

	writeRow(t.headers)
	dividers := make([]string, len(t.headers))
	for i := range t.headers {
		dividers[i] = strings.Repeat("-", widths[i])
	}
	writeRow(dividers)

	prev := ""
	highlight := false
	for n, row := range t.rows {
		cells := row
		if highlightCol >= 0 && highlightCol < len(row) {
			if n > 0 && row[highlightCol] != prev {
				highlight = !highlight
			}
			prev = row[highlightCol]
			if highlight {
				cells = append([]string(nil), row...)
				cells[highlightCol] = BgYellow(cells[highlightCol])
			}
		}
		writeRow(cells)
	}
}
