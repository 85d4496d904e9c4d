package routine

import "fmt"

// Action is one atomic instruction of an autonomous routine.
type Action string

const (
	ParkLeft       Action = "PARK_LEFT"
	ParkCenter     Action = "PARK_CENTER"
	ParkRight      Action = "PARK_RIGHT"
	BackdropScore  Action = "BACKDROP_SCORE"
	SpikeMarkScore Action = "SPIKE_MARK_SCORE"
	Delay1s        Action = "DELAY_1S"
	Delay5s        Action = "DELAY_5S"
)

type actionKind int

const (
	kindPark actionKind = iota
	kindScore
	kindDelay
)

var actionKinds = map[Action]actionKind{
	ParkLeft:       kindPark,
	ParkCenter:     kindPark,
	ParkRight:      kindPark,
	BackdropScore:  kindScore,
	SpikeMarkScore: kindScore,
	Delay1s:        kindDelay,
	Delay5s:        kindDelay,
}

// Actions returns the full action vocabulary in menu order.
func Actions() []Action {
	return []Action{ParkLeft, ParkCenter, ParkRight, BackdropScore, SpikeMarkScore, Delay1s, Delay5s}
}

func (a Action) String() string { return string(a) }

// Valid reports whether a belongs to the fixed vocabulary.
func (a Action) Valid() bool {
	_, ok := actionKinds[a]
	return ok
}

// IsPark reports whether a ends the routine in a parking zone.
func (a Action) IsPark() bool {
	kind, ok := actionKinds[a]
	return ok && kind == kindPark
}

// IsDelay reports whether a is one of the timed waits.
func (a Action) IsDelay() bool {
	kind, ok := actionKinds[a]
	return ok && kind == kindDelay
}

// ParseAction resolves a wire label into an Action.
func ParseAction(label string) (Action, error) {
	a := Action(label)
	if !a.Valid() {
		return "", fmt.Errorf("%w: action %q", ErrInvalid, label)
	}
	return a, nil
}

// Sequence is the ordered list of actions executed by the robot.
type Sequence []Action

// Last returns the final action and whether the sequence is non-empty.
func (s Sequence) Last() (Action, bool) {
	if len(s) == 0 {
		return "", false
	}
	return s[len(s)-1], true
}

// Contains reports whether a appears anywhere in s.
func (s Sequence) Contains(a Action) bool {
	for _, item := range s {
		if item == a {
			return true
		}
	}
	return false
}

// Strings returns the wire labels of s; never nil.
func (s Sequence) Strings() []string {
	out := make([]string, len(s))
	for i, a := range s {
		out[i] = string(a)
	}
	return out
}

// Clone returns an independent copy of s.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return Sequence{}
	}
	dup := make(Sequence, len(s))
	copy(dup, s)
	return dup
}
