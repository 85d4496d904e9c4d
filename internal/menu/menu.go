package menu

import (
	"context"
	"errors"
)

// ErrNoOptions is returned when a prompt is asked to present an empty list.
var ErrNoOptions = errors.New("menu: no options to select from")

// Emphasis is a display tag forwarded untouched to the renderer.
type Emphasis int

const (
	EmphasisNormal Emphasis = iota
	EmphasisWarning
	EmphasisConfirm
	EmphasisRed
	EmphasisBlue
	EmphasisAccent
	EmphasisMuted
)

var emphasisNames = map[Emphasis]string{
	EmphasisNormal:  "normal",
	EmphasisWarning: "warning",
	EmphasisConfirm: "confirm",
	EmphasisRed:     "red",
	EmphasisBlue:    "blue",
	EmphasisAccent:  "accent",
	EmphasisMuted:   "muted",
}

func (e Emphasis) String() string {
	if name, ok := emphasisNames[e]; ok {
		return name
	}
	return "normal"
}

// Option represents a selectable menu entry together with its emphasis.
type Option struct {
	Label    string
	Emphasis Emphasis
}

// Plain builds normal-emphasis options from labels.
func Plain(labels ...string) []Option {
	opts := make([]Option, 0, len(labels))
	for _, label := range labels {
		opts = append(opts, Option{Label: label})
	}
	return opts
}

// Labels returns the option labels in display order.
func Labels(opts []Option) []string {
	labels := make([]string, len(opts))
	for i, opt := range opts {
		labels[i] = opt.Label
	}
	return labels
}

// Prompter is the blocking interaction surface used by the builder and the
// session controller. Select returns the index of the confirmed option; Show
// returns once the operator has acknowledged the message.
type Prompter interface {
	Select(ctx context.Context, prompt string, options []Option) (int, error)
	Show(ctx context.Context, text string, emphasizeFirstLine bool) error
}

const (
	LabelBack = "Back"
	LabelYes  = "Yes"
	LabelNo   = "No"
)

// WithBack appends the Back sentinel and returns its index.
func WithBack(opts []Option) ([]Option, int) {
	out := make([]Option, 0, len(opts)+1)
	out = append(out, opts...)
	out = append(out, Option{Label: LabelBack, Emphasis: EmphasisConfirm})
	return out, len(out) - 1
}

// Confirm asks a Yes/No question and reports whether Yes was chosen.
func Confirm(ctx context.Context, p Prompter, question string) (bool, error) {
	idx, err := p.Select(ctx, question, Plain(LabelYes, LabelNo))
	if err != nil {
		return false, err
	}
	return idx == 0, nil
}
