package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

const ellipsis = "…"

// Column describes one table column. MaxWidth of 0 leaves cells untruncated.
type Column struct {
	Header   string
	Align    Alignment
	MaxWidth int
}

// Format returns a header line, a rule, and the rows, each padded to the
// widest cell of its column. Widths are measured in terminal cells.
func Format(columns []Column, rows [][]string) []string {
	if len(columns) == 0 {
		return nil
	}
	cells := make([][]string, 0, len(rows)+1)
	header := make([]string, len(columns))
	for c, col := range columns {
		header[c] = col.Header
	}
	cells = append(cells, header)
	for _, row := range rows {
		line := make([]string, len(columns))
		for c := range columns {
			if c < len(row) {
				line[c] = fit(row[c], columns[c].MaxWidth)
			}
		}
		cells = append(cells, line)
	}

	widths := make([]int, len(columns))
	for _, row := range cells {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}

	out := make([]string, 0, len(cells)+1)
	out = append(out, formatRow(cells[0], columns, widths))
	out = append(out, rule(widths))
	for _, row := range cells[1:] {
		out = append(out, formatRow(row, columns, widths))
	}
	return out
}

func formatRow(row []string, columns []Column, widths []int) string {
	var b strings.Builder
	for c, cell := range row {
		if c > 0 {
			b.WriteString("  ")
		}
		pad := widths[c] - ansi.StringWidth(cell)
		last := c == len(row)-1
		if columns[c].Align == AlignRight {
			writeSpaces(&b, pad)
			b.WriteString(cell)
		} else {
			b.WriteString(cell)
			if !last {
				writeSpaces(&b, pad)
			}
		}
	}
	return b.String()
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w)
	}
	return strings.Join(parts, "  ")
}

func fit(cell string, max int) string {
	if max <= 0 || ansi.StringWidth(cell) <= max {
		return cell
	}
	return ansi.Truncate(cell, max, ellipsis)
}

func writeSpaces(b *strings.Builder, count int) {
	if count <= 0 {
		return
	}
	b.WriteString(strings.Repeat(" ", count))
}
