package adb

import (
	"bufio"
	"strings"
)

// StateDevice is the state adb reports for a ready device.
const StateDevice = "device"

// Device is one line of `adb devices`.
type Device struct {
	Serial string
	State  string
}

// Ready reports whether the device accepts commands.
func (d Device) Ready() bool { return d.State == StateDevice }

// Label renders the device for a menu: the serial, plus the state when the
// device is not ready.
func (d Device) Label() string {
	if d.Ready() || d.State == "" {
		return d.Serial
	}
	return d.Serial + " (" + d.State + ")"
}

// ParseDevices parses the output of `adb devices`. The header and daemon
// notices are skipped.
func ParseDevices(out string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "List of devices") {
			continue
		}
		fields := strings.Fields(line)
		d := Device{Serial: fields[0]}
		if len(fields) > 1 {
			d.State = fields[1]
		}
		devices = append(devices, d)
	}
	return devices
}
