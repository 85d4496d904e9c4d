package ui

import (
	"strings"
	"unicode"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/atomicstack/ace-config/internal/theme"
	uistate "github.com/atomicstack/ace-config/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type level = uistate.Level

// ListModel is the selectable list widget. It renders the prompt and the
// options, moves the cursor with wraparound and finishes on Enter.
type ListModel struct {
	level       *level
	keys        KeyMap
	width       int
	height      int
	done        bool
	interrupted bool
}

// NewListModel constructs a list for prompt over options with the cursor on
// the first option. It panics on an empty option list; callers check first.
func NewListModel(prompt string, options []menu.Option, width, height int) *ListModel {
	if len(options) == 0 {
		panic(menu.ErrNoOptions)
	}
	m := &ListModel{
		level:  uistate.NewLevel(prompt, options),
		keys:   DefaultKeyMap(),
		width:  width,
		height: height,
	}
	events.UI.Select(prompt, len(options))
	m.syncViewport()
	return m
}

// Init is part of the tea.Model interface.
func (m *ListModel) Init() tea.Cmd { return nil }

// Update responds to key presses and resizes.
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.syncViewport()
	case tea.KeyMsg:
		m.handleKey(msg)
	}
	return m, nil
}

func (m *ListModel) handleKey(msg tea.KeyMsg) {
	if m.done || m.interrupted {
		return
	}
	l := m.level
	switch {
	case key.Matches(msg, m.keys.Interrupt):
		m.interrupted = true
		events.UI.Interrupt()
		return
	case key.Matches(msg, m.keys.Confirm):
		m.done = true
		opt, _ := l.Current()
		events.UI.MenuEnter(l.Title, l.Cursor, opt.Label)
		return
	case key.Matches(msg, m.keys.Up):
		m.move(l.MoveCursorUp)
	case key.Matches(msg, m.keys.Down):
		m.move(l.MoveCursorDown)
	case key.Matches(msg, m.keys.Top):
		m.move(l.MoveCursorHome)
	case key.Matches(msg, m.keys.Bottom):
		m.move(l.MoveCursorEnd)
	case key.Matches(msg, m.keys.PageUp):
		visible := m.maxVisibleItems()
		m.move(func() bool { return l.MoveCursorPageUp(visible) })
	case key.Matches(msg, m.keys.PageDown):
		visible := m.maxVisibleItems()
		m.move(func() bool { return l.MoveCursorPageDown(visible) })
	case key.Matches(msg, m.keys.Backspace):
		if l.DeleteQueryRune() {
			events.UI.Jump(l.Title, l.Query, l.Cursor)
		}
	case msg.Type == tea.KeyRunes && !msg.Alt:
		text := string(msg.Runes)
		if !jumpable(text) {
			return
		}
		if l.AppendQuery(text) {
			events.UI.Jump(l.Title, l.Query, l.Cursor)
		}
	}
	m.syncViewport()
}

func (m *ListModel) move(fn func() bool) {
	m.level.ResetQuery()
	if fn() {
		events.UI.MenuCursor(m.level.Title, m.level.Cursor)
	}
}

func jumpable(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Done reports whether the operator confirmed an option.
func (m *ListModel) Done() bool { return m.done }

// Interrupted reports whether the operator aborted with Ctrl+C.
func (m *ListModel) Interrupted() bool { return m.interrupted }

// Cursor returns the index under the cursor; after Done it is the result.
func (m *ListModel) Cursor() int { return m.level.Cursor }

// Query returns the active type-to-jump query.
func (m *ListModel) Query() string { return m.level.Query }

func (m *ListModel) promptLines() []string {
	return strings.Split(m.level.Title, "\n")
}

func (m *ListModel) maxVisibleItems() int {
	if m.height <= 0 {
		return -1
	}
	// border + blank line under the prompt + footer
	used := 2 + 1 + len(m.promptLines()) + 1
	remain := m.height - used
	if remain < 1 {
		return 1
	}
	return remain
}

func (m *ListModel) syncViewport() {
	m.level.EnsureCursorVisible(m.maxVisibleItems())
}

// View renders the prompt and the visible slice of options inside a box.
// Every prompt line above the last is a status header.
func (m *ListModel) View() string {
	l := m.level
	inner := innerWidth(m.width)

	prompt := m.promptLines()
	rows := make([]string, 0, len(l.Items))
	for _, opt := range l.Items {
		rows = append(rows, theme.Prefix(opt.Emphasis)+opt.Label)
	}
	footer := m.keys.footer()
	if l.Query != "" {
		footer = "jump: " + l.Query
	}

	width := maxWidth(append(append([]string{footer}, prompt...), rows...))
	if inner >= 0 && width > inner {
		width = inner
	}

	start, end := 0, len(rows)
	if visible := m.maxVisibleItems(); visible > 0 && visible < len(rows) {
		start = l.ViewportOffset
		end = start + visible
		if end > len(rows) {
			end = len(rows)
		}
	}

	lines := make([]string, 0, len(prompt)+end-start+2)
	for i, p := range prompt {
		style := styles.Header
		if i == len(prompt)-1 {
			style = styles.Prompt
		}
		lines = append(lines, style.Render(fit(p, width)))
	}
	lines = append(lines, "")
	for i := start; i < end; i++ {
		text := pad(fit(rows[i], width), width)
		if i == l.Cursor {
			lines = append(lines, styles.Selected.Inherit(styles.For(l.Items[i].Emphasis)).Render(text))
			continue
		}
		lines = append(lines, styles.For(l.Items[i].Emphasis).Render(text))
	}
	footerStyle := styles.Footer
	if l.Query != "" {
		footerStyle = styles.Query
	}
	lines = append(lines, footerStyle.Render(fit(footer, width)))
	return placeBox(strings.Join(lines, "\n"), m.width, m.height)
}
