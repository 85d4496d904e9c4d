package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/atomicstack/ace-config/internal/menu"
)

// ErrScriptExhausted is returned when a prompt arrives after the last scripted pick.
var ErrScriptExhausted = errors.New("testutil: script exhausted")

// Prompt records one Select call.
type Prompt struct {
	Title   string
	Options []menu.Option
	Chosen  int
}

// Message records one Show call.
type Message struct {
	Text          string
	EmphasizeHead bool
}

// Script is a menu.Prompter that answers each Select with the next scripted
// label and records everything it was asked.
type Script struct {
	mu       sync.Mutex
	picks    []string
	Prompts  []Prompt
	Messages []Message
}

// NewScript returns a prompter that picks the given labels in order.
func NewScript(picks ...string) *Script {
	return &Script{picks: append([]string(nil), picks...)}
}

// Select implements menu.Prompter.
func (s *Script) Select(ctx context.Context, title string, options []menu.Option) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(options) == 0 {
		return 0, menu.ErrNoOptions
	}
	if len(s.picks) == 0 {
		return 0, fmt.Errorf("%w at prompt %q", ErrScriptExhausted, title)
	}
	want := s.picks[0]
	s.picks = s.picks[1:]
	for i, opt := range options {
		if opt.Label == want {
			s.Prompts = append(s.Prompts, Prompt{Title: title, Options: append([]menu.Option(nil), options...), Chosen: i})
			return i, nil
		}
	}
	return 0, fmt.Errorf("testutil: option %q not offered at prompt %q (have %v)", want, title, menu.Labels(options))
}

// Show implements menu.Prompter.
func (s *Script) Show(ctx context.Context, text string, emphasizeFirstLine bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Messages = append(s.Messages, Message{Text: text, EmphasizeHead: emphasizeFirstLine})
	return nil
}

// Remaining reports how many scripted picks were not consumed.
func (s *Script) Remaining() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.picks)
}

// PromptsTitled returns the recorded prompts with the given title.
func (s *Script) PromptsTitled(title string) []Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Prompt
	for _, p := range s.Prompts {
		if p.Title == title {
			out = append(out, p)
		}
	}
	return out
}
