package ui

import (
	"strings"

	"github.com/atomicstack/ace-config/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

var styles = theme.Default()

// boxChrome is the horizontal space taken by the box border and padding.
const boxChrome = 4

// placeBox wraps body in the rounded box and centres it on screen when the
// terminal size is known.
func placeBox(body string, width, height int) string {
	box := styles.Box.Render(body)
	if width <= 0 || height <= 0 {
		return box
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// innerWidth returns the usable content width for the given terminal width,
// or -1 when the width is unknown.
func innerWidth(width int) int {
	if width <= 0 {
		return -1
	}
	inner := width - boxChrome
	if inner < 1 {
		return 1
	}
	return inner
}

// fit truncates text to width visible columns. A width of -1 disables it.
func fit(text string, width int) string {
	if width < 0 || ansi.StringWidth(text) <= width {
		return text
	}
	if width <= 1 {
		return truncate.String(text, uint(width))
	}
	return truncate.StringWithTail(text, uint(width), "…")
}

// pad right-pads text with spaces to width visible columns.
func pad(text string, width int) string {
	w := ansi.StringWidth(text)
	if width <= w {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}

func maxWidth(lines []string) int {
	max := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > max {
			max = w
		}
	}
	return max
}
