package events

import "github.com/atomicstack/ace-config/internal/logging"

type SessionTracer struct{}

var Session = SessionTracer{}

func (SessionTracer) State(state string) {
	logging.Trace("session.state", map[string]interface{}{"state": state})
}

func (SessionTracer) Cache(team, position string, actions int) {
	logging.Trace("session.cache", map[string]interface{}{
		"team":     team,
		"position": position,
		"actions":  actions,
	})
}

func (SessionTracer) Failure(operation string, err error) {
	if err == nil {
		return
	}
	logging.Trace("session.failure", map[string]interface{}{"operation": operation, "error": err.Error()})
}
