package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
)

var (
	// ErrInterrupted is returned when the operator aborts with Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrNoTerminal is returned when input is not an interactive terminal.
	ErrNoTerminal = errors.New("input is not a terminal")
	// ErrClosed is returned by prompts issued after the terminal was released.
	ErrClosed = errors.New("terminal closed")
)

// Options configures the terminal program.
type Options struct {
	AltScreen bool
	// Input defaults to os.Stdin and must be a terminal.
	Input io.Reader
	// Output defaults to os.Stdout.
	Output io.Writer
}

// SessionFunc is the interactive session run while the terminal is held.
type SessionFunc func(ctx context.Context, p menu.Prompter) error

// Run acquires the terminal, runs session against a Prompter backed by the
// terminal and restores the terminal on every exit path. Ctrl+C yields
// ErrInterrupted; a panic inside session is recovered into an error.
func Run(ctx context.Context, opts Options, session SessionFunc) error {
	in := opts.Input
	if in == nil {
		in = os.Stdin
	}
	if f, ok := in.(*os.File); ok && !isTerminal(f) {
		return ErrNoTerminal
	}

	host := newHostModel()
	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(host, progOpts...)

	sessCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	closed := make(chan struct{})
	prompter := &terminalPrompter{send: program.Send, closed: closed}

	result := make(chan error, 1)
	go func() {
		err := runSession(sessCtx, prompter, session)
		result <- err
		program.Send(sessionDoneMsg{})
	}()

	_, runErr := program.Run()
	close(closed)
	cancel()
	sessErr := <-result

	switch {
	case host.interrupted:
		return ErrInterrupted
	case sessErr != nil:
		return sessErr
	case runErr != nil:
		return fmt.Errorf("terminal: %w", runErr)
	}
	return nil
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func runSession(ctx context.Context, p menu.Prompter, session SessionFunc) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("session panic: %v", r)
		}
	}()
	return session(ctx, p)
}

type selectRequest struct {
	prompt  string
	options []menu.Option
	reply   chan int
}

type showRequest struct {
	text      string
	emphasize bool
	reply     chan struct{}
}

type sessionDoneMsg struct{}

// terminalPrompter forwards prompts to the running program and blocks until
// the operator answers.
type terminalPrompter struct {
	send   func(tea.Msg)
	closed <-chan struct{}
}

func (p *terminalPrompter) Select(ctx context.Context, prompt string, options []menu.Option) (int, error) {
	if len(options) == 0 {
		return -1, menu.ErrNoOptions
	}
	reply := make(chan int, 1)
	p.send(selectRequest{prompt: prompt, options: options, reply: reply})
	select {
	case idx := <-reply:
		return idx, nil
	case <-p.closed:
		return -1, ErrClosed
	case <-ctx.Done():
		return -1, ctx.Err()
	}
}

func (p *terminalPrompter) Show(ctx context.Context, text string, emphasizeFirstLine bool) error {
	reply := make(chan struct{}, 1)
	p.send(showRequest{text: text, emphasize: emphasizeFirstLine, reply: reply})
	select {
	case <-reply:
		return nil
	case <-p.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// activePrompt is the list or message currently on screen.
type activePrompt interface {
	tea.Model
	Done() bool
	Interrupted() bool
}

// hostModel is the single program model. It shows one prompt at a time and
// answers the waiting session goroutine when the prompt finishes. Keys that
// arrive between prompts are queued and replayed into the next prompt, the
// way a blocking terminal read would see them.
type hostModel struct {
	keys        KeyMap
	width       int
	height      int
	active      activePrompt
	resolve     func()
	pending     []tea.KeyMsg
	interrupted bool
}

func newHostModel() *hostModel {
	return &hostModel{keys: DefaultKeyMap()}
}

func (m *hostModel) Init() tea.Cmd { return nil }

func (m *hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.active != nil {
			m.active.Update(msg)
		}
	case selectRequest:
		list := NewListModel(msg.prompt, msg.options, m.width, m.height)
		m.active = list
		m.resolve = func() { msg.reply <- list.Cursor() }
		return m, m.replay()
	case showRequest:
		m.active = NewMessageModel(msg.text, msg.emphasize, m.width, m.height)
		m.resolve = func() { msg.reply <- struct{}{} }
		return m, m.replay()
	case sessionDoneMsg:
		return m, tea.Quit
	case tea.KeyMsg:
		if m.active != nil {
			return m, m.forward(msg)
		}
		if key.Matches(msg, m.keys.Interrupt) {
			m.interrupted = true
			events.UI.Interrupt()
			return m, tea.Quit
		}
		m.pending = append(m.pending, msg)
	}
	return m, nil
}

// forward hands a key to the active prompt and settles it once the prompt
// is answered or interrupted.
func (m *hostModel) forward(msg tea.KeyMsg) tea.Cmd {
	m.active.Update(msg)
	switch {
	case m.active.Interrupted():
		m.interrupted = true
		m.active, m.resolve = nil, nil
		m.pending = nil
		return tea.Quit
	case m.active.Done():
		resolve := m.resolve
		m.active, m.resolve = nil, nil
		resolve()
	}
	return nil
}

// replay feeds queued keys to the new prompt until it finishes. Keys left
// over stay queued for the prompt after it.
func (m *hostModel) replay() tea.Cmd {
	for len(m.pending) > 0 && m.active != nil {
		msg := m.pending[0]
		m.pending = m.pending[1:]
		if cmd := m.forward(msg); cmd != nil {
			return cmd
		}
	}
	return nil
}

func (m *hostModel) View() string {
	if m.active == nil {
		return ""
	}
	return m.active.View()
}
