package routine

import (
	"errors"
	"fmt"
)

// ErrInvalid marks a value outside its closed vocabulary.
var ErrInvalid = errors.New("invalid configuration value")

// TeamColor is the alliance the robot plays for.
type TeamColor string

const (
	Red  TeamColor = "RED"
	Blue TeamColor = "BLUE"
)

// TeamColors lists the colors in menu order.
func TeamColors() []TeamColor { return []TeamColor{Red, Blue} }

func (c TeamColor) Valid() bool { return c == Red || c == Blue }

// ParseTeamColor resolves a wire label into a TeamColor.
func ParseTeamColor(label string) (TeamColor, error) {
	c := TeamColor(label)
	if !c.Valid() {
		return "", fmt.Errorf("%w: team color %q", ErrInvalid, label)
	}
	return c, nil
}

// StartPosition is the side of the field the robot starts on.
type StartPosition string

const (
	Left  StartPosition = "LEFT"
	Right StartPosition = "RIGHT"
)

// StartPositions lists the positions in menu order.
func StartPositions() []StartPosition { return []StartPosition{Left, Right} }

func (p StartPosition) Valid() bool { return p == Left || p == Right }

// ParseStartPosition resolves a wire label into a StartPosition.
func ParseStartPosition(label string) (StartPosition, error) {
	p := StartPosition(label)
	if !p.Valid() {
		return "", fmt.Errorf("%w: start position %q", ErrInvalid, label)
	}
	return p, nil
}

// Configuration is the unit of persistence and of transport.
type Configuration struct {
	Actions       Sequence
	TeamColor     TeamColor
	StartPosition StartPosition
}

// NewConfiguration builds a Configuration and validates it.
func NewConfiguration(actions Sequence, color TeamColor, position StartPosition) (Configuration, error) {
	cfg := Configuration{Actions: actions.Clone(), TeamColor: color, StartPosition: position}
	if err := cfg.Validate(); err != nil {
		return Configuration{}, err
	}
	return cfg, nil
}

// Validate reports the first field that falls outside its vocabulary.
func (c Configuration) Validate() error {
	if !c.TeamColor.Valid() {
		return fmt.Errorf("%w: team color %q", ErrInvalid, string(c.TeamColor))
	}
	if !c.StartPosition.Valid() {
		return fmt.Errorf("%w: start position %q", ErrInvalid, string(c.StartPosition))
	}
	for i, a := range c.Actions {
		if !a.Valid() {
			return fmt.Errorf("%w: action %d %q", ErrInvalid, i, string(a))
		}
	}
	return nil
}

// Equal compares all three fields; nil and empty sequences are equal.
func (c Configuration) Equal(other Configuration) bool {
	if c.TeamColor != other.TeamColor || c.StartPosition != other.StartPosition {
		return false
	}
	if len(c.Actions) != len(other.Actions) {
		return false
	}
	for i := range c.Actions {
		if c.Actions[i] != other.Actions[i] {
			return false
		}
	}
	return true
}

// Summary renders the one-line header form, e.g. "RED | LEFT (3 actions)".
func (c Configuration) Summary() string {
	noun := "actions"
	if len(c.Actions) == 1 {
		noun = "action"
	}
	return fmt.Sprintf("%s | %s (%d %s)", c.TeamColor, c.StartPosition, len(c.Actions), noun)
}
