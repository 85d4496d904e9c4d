package events

import "github.com/atomicstack/ace-config/internal/logging"

type SlotTracer struct{}

var Slot = SlotTracer{}

func (SlotTracer) Save(slot int, path string) {
	logging.Trace("slot.save", map[string]interface{}{"slot": slot, "path": path})
}

func (SlotTracer) Load(slot int) {
	logging.Trace("slot.load", map[string]interface{}{"slot": slot})
}

func (SlotTracer) Inspect(slot int) {
	logging.Trace("slot.inspect", map[string]interface{}{"slot": slot})
}

func (SlotTracer) Delete(slot int) {
	logging.Trace("slot.delete", map[string]interface{}{"slot": slot})
}

func (SlotTracer) Error(slot int, err error) {
	if err == nil {
		return
	}
	logging.Trace("slot.error", map[string]interface{}{"slot": slot, "error": err.Error()})
}
