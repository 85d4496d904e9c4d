package events

import "github.com/atomicstack/ace-config/internal/logging"

type UITracer struct{}

var UI = UITracer{}

func (UITracer) Select(prompt string, options int) {
	logging.Trace("menu.open", map[string]interface{}{"prompt": prompt, "options": options})
}

func (UITracer) MenuCursor(prompt string, cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"prompt": prompt, "cursor": cursor})
}

func (UITracer) Jump(prompt, query string, cursor int) {
	logging.Trace("menu.jump", map[string]interface{}{"prompt": prompt, "query": query, "cursor": cursor})
}

func (UITracer) MenuEnter(prompt string, cursor int, label string) {
	logging.Trace("menu.enter", map[string]interface{}{
		"prompt": prompt,
		"cursor": cursor,
		"label":  label,
	})
}

func (UITracer) Message(firstLine string) {
	logging.Trace("message.show", map[string]interface{}{"title": firstLine})
}

func (UITracer) Interrupt() {
	logging.Trace("ui.interrupt", nil)
}
