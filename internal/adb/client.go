package adb

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/google/shlex"
	ps "github.com/mitchellh/go-ps"
)

// ErrNoCommand is returned when the configured adb command line is empty.
var ErrNoCommand = errors.New("adb command is empty")

// Runner executes a command and returns its combined output.
type Runner func(ctx context.Context, name string, args ...string) ([]byte, error)

// ProcessLister enumerates running processes.
type ProcessLister func() ([]ps.Process, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).CombinedOutput() //nolint:gosec
}

// Client talks to devices through the adb binary.
type Client struct {
	argv      []string
	run       Runner
	processes ProcessLister
}

// Option customises a Client.
type Option func(*Client)

// WithRunner replaces the command runner.
func WithRunner(r Runner) Option {
	return func(c *Client) {
		if r != nil {
			c.run = r
		}
	}
}

// WithProcessLister replaces the process table source used by ServerRunning.
func WithProcessLister(fn ProcessLister) Option {
	return func(c *Client) {
		if fn != nil {
			c.processes = fn
		}
	}
}

// NewClient builds a client for command, a shell-style command line such as
// "adb" or "/opt/platform-tools/adb -H 10.0.0.2".
func NewClient(command string, opts ...Option) (*Client, error) {
	argv, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse adb command %q: %w", command, err)
	}
	if len(argv) == 0 {
		return nil, ErrNoCommand
	}
	c := &Client{argv: argv, run: execRunner, processes: ps.Processes}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Command returns the base command line.
func (c *Client) Command() []string {
	return append([]string(nil), c.argv...)
}

func (c *Client) exec(ctx context.Context, args ...string) ([]byte, error) {
	full := append(c.Command(), args...)
	events.Device.Exec(full)
	out, err := c.run(ctx, full[0], full[1:]...)
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return out, fmt.Errorf("adb %s: %w", args[0], err)
		}
		return out, fmt.Errorf("adb %s: %w: %s", args[0], err, msg)
	}
	return out, nil
}

// Available reports whether the adb binary runs.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.exec(ctx, "version")
	return err == nil
}

// Devices lists attached devices.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := c.exec(ctx, "devices")
	if err != nil {
		return nil, err
	}
	devices := ParseDevices(string(out))
	serials := make([]string, len(devices))
	for i, d := range devices {
		serials[i] = d.Serial
	}
	events.Device.Devices(serials)
	return devices, nil
}

// Push copies local to remote on the device with the given serial. An empty
// serial leaves device selection to adb.
func (c *Client) Push(ctx context.Context, serial, local, remote string) error {
	args := make([]string, 0, 5)
	if serial != "" {
		args = append(args, "-s", serial)
	}
	args = append(args, "push", local, remote)
	_, err := c.exec(ctx, args...)
	events.Device.Push(serial, local, remote, err)
	return err
}

// ServerRunning reports whether an adb server process is alive.
func (c *Client) ServerRunning() bool {
	procs, err := c.processes()
	if err != nil {
		return false
	}
	want := strings.TrimSuffix(filepath.Base(c.argv[0]), ".exe")
	for _, p := range procs {
		if strings.TrimSuffix(p.Executable(), ".exe") == want {
			return true
		}
	}
	return false
}
