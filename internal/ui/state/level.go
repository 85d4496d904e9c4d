package state

import "github.com/atomicstack/ace-config/internal/menu"

// Level holds the state of one on-screen list: its options, the cursor, the
// viewport and the type-to-jump query.
type Level struct {
	Title          string
	Items          []menu.Option
	Cursor         int
	ViewportOffset int
	Query          string
}

// NewLevel constructs a Level with the cursor on the first option.
func NewLevel(title string, items []menu.Option) *Level {
	dup := make([]menu.Option, len(items))
	copy(dup, items)
	return &Level{Title: title, Items: dup}
}

// Len returns the number of options.
func (l *Level) Len() int { return len(l.Items) }

// Current returns the option under the cursor.
func (l *Level) Current() (menu.Option, bool) {
	if l.Cursor < 0 || l.Cursor >= len(l.Items) {
		return menu.Option{}, false
	}
	return l.Items[l.Cursor], true
}

// Labels returns the option labels in display order.
func (l *Level) Labels() []string {
	return menu.Labels(l.Items)
}
