package slots

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/atomicstack/ace-config/internal/routine"
)

// ErrMalformed is returned when stored bytes do not describe a valid configuration.
var ErrMalformed = errors.New("malformed configuration")

type document struct {
	AutoActions   *[]string `json:"autoActions"`
	TeamColor     *string   `json:"teamColor"`
	StartPosition *string   `json:"startPosition"`
}

// Encode renders cfg in the on-disk and on-device wire format.
func Encode(cfg routine.Configuration) ([]byte, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	actions := cfg.Actions.Strings()
	color := string(cfg.TeamColor)
	position := string(cfg.StartPosition)
	return json.Marshal(document{
		AutoActions:   &actions,
		TeamColor:     &color,
		StartPosition: &position,
	})
}

// Decode parses the wire format. Missing fields or values outside their
// vocabulary yield ErrMalformed.
func Decode(data []byte) (routine.Configuration, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return routine.Configuration{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if doc.AutoActions == nil || doc.TeamColor == nil || doc.StartPosition == nil {
		return routine.Configuration{}, fmt.Errorf("%w: missing field", ErrMalformed)
	}
	color, err := routine.ParseTeamColor(*doc.TeamColor)
	if err != nil {
		return routine.Configuration{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	position, err := routine.ParseStartPosition(*doc.StartPosition)
	if err != nil {
		return routine.Configuration{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	seq := make(routine.Sequence, 0, len(*doc.AutoActions))
	for _, label := range *doc.AutoActions {
		a, err := routine.ParseAction(label)
		if err != nil {
			return routine.Configuration{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		seq = append(seq, a)
	}
	return routine.Configuration{Actions: seq, TeamColor: color, StartPosition: position}, nil
}
