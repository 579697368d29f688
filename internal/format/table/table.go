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

const gutter = "  "

// Format pads each column to its widest cell and joins columns with a
// two-space gutter. Widths are measured in terminal cells, so styled cells
// align by what is visible. A left-aligned last column is not padded.
func Format(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	var widths []int
	for _, row := range rows {
		for c, cell := range row {
			if c >= len(widths) {
				widths = append(widths, 0)
			}
			widths[c] = max(widths[c], ansi.StringWidth(cell))
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString(gutter)
			}
			gap := widths[c] - ansi.StringWidth(cell)
			right := c < len(alignments) && alignments[c] == AlignRight
			switch {
			case right:
				b.WriteString(strings.Repeat(" ", gap))
				b.WriteString(cell)
			case c == len(row)-1:
				b.WriteString(cell)
			default:
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", gap))
			}
		}
		out[i] = b.String()
	}
	return out
}
