package ui

import tea "github.com/charmbracelet/bubbletea"

// Harness drives a UI model programmatically for tests.
type Harness struct {
	model tea.Model
}

// NewHarness creates a harness for the provided model.
func NewHarness(model tea.Model) *Harness {
	return &Harness{model: model}
}

// Send routes a message through the model and executes any returned commands.
func (h *Harness) Send(msg tea.Msg) {
	if h.model == nil {
		return
	}
	mdl, cmd := h.model.Update(msg)
	h.model = mdl
	h.processCmd(cmd)
}

// Keys sends each key message in order.
func (h *Harness) Keys(keys ...tea.KeyMsg) {
	for _, k := range keys {
		h.Send(k)
	}
}

func (h *Harness) processCmd(cmd tea.Cmd) {
	for cmd != nil {
		msg := cmd()
		if msg == nil {
			return
		}
		if _, ok := msg.(tea.QuitMsg); ok {
			return
		}
		mdl, next := h.model.Update(msg)
		h.model = mdl
		cmd = next
	}
}

// View returns the current view string.
func (h *Harness) View() string {
	if h.model == nil {
		return ""
	}
	return h.model.View()
}

// Model exposes the underlying model.
func (h *Harness) Model() tea.Model {
	return h.model
}
