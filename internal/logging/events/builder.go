package events

import "github.com/atomicstack/ace-config/internal/logging"

type BuilderTracer struct{}

var Builder = BuilderTracer{}

func (BuilderTracer) Start(team, position string) {
	logging.Trace("builder.start", map[string]interface{}{"team": team, "position": position})
}

func (BuilderTracer) Warnings(length int, warned []string) {
	logging.Trace("builder.warnings", map[string]interface{}{"length": length, "warned": warned})
}

func (BuilderTracer) Append(action string, length int) {
	logging.Trace("builder.append", map[string]interface{}{"action": action, "length": length})
}

func (BuilderTracer) Done(actions []string) {
	logging.Trace("builder.done", map[string]interface{}{"actions": actions})
}
