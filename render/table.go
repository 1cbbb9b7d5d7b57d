package render

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Table is a small table of strings with a header row, rendered either as
// aligned plain text or as an HTML table. Column widths are computed with
// display widths so wide runes line up.
type Table struct {
	Headers []string
	Rows    [][]string
}

// NewTable builds a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{Headers: headers}
}

// Append adds a row. Short rows are padded with empty cells.
func (t *Table) Append(cells ...string) *Table {
	for len(cells) < len(t.Headers) {
		cells = append(cells, "")
	}
	t.Rows = append(t.Rows, cells)
	return t
}

func (t *Table) widths() []int {
	w := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w[i] = runewidth.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if i >= len(w) {
				w = append(w, 0)
			}
			if cw := runewidth.StringWidth(c); cw > w[i] {
				w[i] = cw
			}
		}
	}
	return w
}

// String renders the table as aligned plain text with a separator line
// under the header.
func (t *Table) String() string {
	w := t.widths()
	var b strings.Builder
	writeRow := func(cells []string) {
		var line strings.Builder
		for i, width := range w {
			c := ""
			if i < len(cells) {
				c = cells[i]
			}
			if i > 0 {
				line.WriteString("  ")
			}
			line.WriteString(runewidth.FillRight(c, width))
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		b.WriteString("\n")
	}
	writeRow(t.Headers)
	for i, width := range w {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", width))
	}
	b.WriteString("\n")
	for _, row := range t.Rows {
		writeRow(row)
	}
	return b.String()
}

// HTML renders the table as an HTML table with escaped cells.
func (t *Table) HTML() string {
	var b strings.Builder
	b.WriteString("<table><thead><tr>")
	for _, h := range t.Headers {
		b.WriteString("<th>" + HTML(h) + "</th>")
	}
	b.WriteString("</tr></thead><tbody>")
	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, c := range row {
			b.WriteString("<td>" + HTML(c) + "</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody></table>")
	return b.String()
}
