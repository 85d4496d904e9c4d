package table

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Format returns the rows padded according to the widest entry in each
// column. Widths are measured in terminal cells so styled cells line up.
func Format(rows [][]string) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			if w := ansi.StringWidth(cell); w > widths[c] {
				widths[c] = w
			}
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			b.WriteString(cell)
			if c < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[c]-ansi.StringWidth(cell)))
			}
		}
		out[i] = b.String()
	}
	return out
}

// KeyValues formats label/value pairs with the values in one column.
func KeyValues(pairs [][2]string) []string {
	rows := make([][]string, len(pairs))
	for i, p := range pairs {
		rows[i] = []string{p[0], p[1]}
	}
	return Format(rows)
}
