package routine

import (
	"context"
	"fmt"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/atomicstack/ace-config/internal/menu"
)

const (
	promptTeamColor     = "Select team color:"
	promptStartPosition = "Select starting position:"
	promptAction        = "Select action to add:"
	promptAddMore       = "Add more actions?"
)

// Phase tracks where a Builder is in sequence construction.
type Phase int

const (
	PhaseEmpty Phase = iota
	PhaseBuilding
	PhaseDone
)

func (p Phase) String() string {
	switch p {
	case PhaseBuilding:
		return "building"
	case PhaseDone:
		return "done"
	default:
		return "empty"
	}
}

// Builder walks the operator through team color, start position and the
// action sequence.
type Builder struct {
	prompter menu.Prompter
	phase    Phase
	seq      Sequence
}

// NewBuilder returns a Builder that asks its questions through p.
func NewBuilder(p menu.Prompter) *Builder {
	return &Builder{prompter: p}
}

// Phase reports the current construction phase.
func (b *Builder) Phase() Phase { return b.phase }

// Build runs the full flow and returns a validated Configuration.
func (b *Builder) Build(ctx context.Context) (Configuration, error) {
	color, err := b.SelectTeamColor(ctx)
	if err != nil {
		return Configuration{}, err
	}
	position, err := b.SelectStartPosition(ctx)
	if err != nil {
		return Configuration{}, err
	}
	events.Builder.Start(string(color), string(position))
	seq, err := b.BuildSequence(ctx)
	if err != nil {
		return Configuration{}, err
	}
	return NewConfiguration(seq, color, position)
}

// SelectTeamColor asks for the alliance color.
func (b *Builder) SelectTeamColor(ctx context.Context) (TeamColor, error) {
	colors := TeamColors()
	opts := []menu.Option{
		{Label: string(Red), Emphasis: menu.EmphasisRed},
		{Label: string(Blue), Emphasis: menu.EmphasisBlue},
	}
	idx, err := b.prompter.Select(ctx, promptTeamColor, opts)
	if err != nil {
		return "", fmt.Errorf("select team color: %w", err)
	}
	if idx < 0 || idx >= len(colors) {
		return "", fmt.Errorf("select team color: index %d out of range", idx)
	}
	return colors[idx], nil
}

// SelectStartPosition asks for the starting side.
func (b *Builder) SelectStartPosition(ctx context.Context) (StartPosition, error) {
	positions := StartPositions()
	opts := []menu.Option{
		{Label: string(Left), Emphasis: menu.EmphasisConfirm},
		{Label: string(Right), Emphasis: menu.EmphasisAccent},
	}
	idx, err := b.prompter.Select(ctx, promptStartPosition, opts)
	if err != nil {
		return "", fmt.Errorf("select start position: %w", err)
	}
	if idx < 0 || idx >= len(positions) {
		return "", fmt.Errorf("select start position: index %d out of range", idx)
	}
	return positions[idx], nil
}

// BuildSequence accumulates actions until DONE is picked or the operator
// declines to add more. Warnings are recomputed before every pick.
func (b *Builder) BuildSequence(ctx context.Context) (Sequence, error) {
	b.seq = Sequence{}
	b.phase = PhaseEmpty
	all := Actions()
	for {
		opts := ActionOptions(b.seq)
		events.Builder.Warnings(len(b.seq), Warnings(b.seq).Strings())
		idx, err := b.prompter.Select(ctx, promptAction, opts)
		if err != nil {
			return nil, fmt.Errorf("select action: %w", err)
		}
		if idx == len(all) {
			break
		}
		if idx < 0 || idx > len(all) {
			return nil, fmt.Errorf("select action: index %d out of range", idx)
		}
		b.seq = append(b.seq, all[idx])
		b.phase = PhaseBuilding
		events.Builder.Append(string(all[idx]), len(b.seq))

		more, err := menu.Confirm(ctx, b.prompter, promptAddMore)
		if err != nil {
			return nil, fmt.Errorf("confirm add more: %w", err)
		}
		if !more {
			break
		}
	}
	b.phase = PhaseDone
	events.Builder.Done(b.seq.Strings())
	return b.seq.Clone(), nil
}
