package ui

import (
	"strings"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// ContinuePrompt is the footer shown under every message.
const ContinuePrompt = "Press any key to continue..."

// MessageModel is the message box: a centred block of text that closes on
// any key.
type MessageModel struct {
	lines       []string
	emphasize   bool
	keys        KeyMap
	width       int
	height      int
	done        bool
	interrupted bool
}

// NewMessageModel constructs a message box for text. When emphasizeFirstLine
// is set the first line is rendered as a title.
func NewMessageModel(text string, emphasizeFirstLine bool, width, height int) *MessageModel {
	lines := strings.Split(text, "\n")
	events.UI.Message(lines[0])
	return &MessageModel{
		lines:     lines,
		emphasize: emphasizeFirstLine,
		keys:      DefaultKeyMap(),
		width:     width,
		height:    height,
	}
}

// Init is part of the tea.Model interface.
func (m *MessageModel) Init() tea.Cmd { return nil }

// Update finishes on the first key press.
func (m *MessageModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		if m.done || m.interrupted {
			break
		}
		if key.Matches(msg, m.keys.Interrupt) {
			m.interrupted = true
			events.UI.Interrupt()
			break
		}
		m.done = true
	}
	return m, nil
}

// Done reports whether the message was acknowledged.
func (m *MessageModel) Done() bool { return m.done }

// Interrupted reports whether the operator aborted with Ctrl+C.
func (m *MessageModel) Interrupted() bool { return m.interrupted }

// View renders the message box.
func (m *MessageModel) View() string {
	width := maxWidth(append([]string{ContinuePrompt}, m.lines...))
	if inner := innerWidth(m.width); inner >= 0 && width > inner {
		width = inner
	}
	out := make([]string, 0, len(m.lines)+2)
	for i, line := range m.lines {
		line = fit(line, width)
		if i == 0 && m.emphasize {
			out = append(out, styles.MessageTitle.Render(line))
			continue
		}
		out = append(out, styles.MessageBody.Render(line))
	}
	out = append(out, "", styles.Continue.Render(fit(ContinuePrompt, width)))
	return placeBox(strings.Join(out, "\n"), m.width, m.height)
}
