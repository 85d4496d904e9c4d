package events

import "github.com/atomicstack/ace-config/internal/logging"

type DeviceTracer struct{}

var Device = DeviceTracer{}

func (DeviceTracer) Exec(argv []string) {
	logging.Trace("device.exec", map[string]interface{}{"argv": argv})
}

func (DeviceTracer) Devices(serials []string) {
	logging.Trace("device.list", map[string]interface{}{"devices": serials})
}

func (DeviceTracer) Push(serial, local, remote string, err error) {
	payload := map[string]interface{}{
		"device": serial,
		"local":  local,
		"remote": remote,
		"ok":     err == nil,
	}
	if err != nil {
		payload["error"] = err.Error()
	}
	logging.Trace("device.push", payload)
}
