package session

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/atomicstack/ace-config/internal/adb"
	"github.com/atomicstack/ace-config/internal/format/table"
	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/atomicstack/ace-config/internal/menu"
	"github.com/atomicstack/ace-config/internal/routine"
	"github.com/atomicstack/ace-config/internal/slots"
)

// DefaultRemotePath is where pushed configurations land on the device.
const DefaultRemotePath = "/storage/emulated/0/FIRST/ace-c-config.json"

const (
	entryCreate = "create"
	entryView   = "view"
	entrySave   = "save"
	entryPush   = "push"
	entryQuit   = "quit"
)

const (
	LabelCreate = "Create New Configuration"
	LabelView   = "View Saved Configurations"
	LabelSave   = "Save Configuration"
	LabelPush   = "Push Configuration"
	LabelQuit   = "Quit"

	LabelLoad    = "Load"
	LabelInspect = "Inspect"
	LabelDelete  = "Delete"
)

const (
	promptMain   = "Autonomous Creation Engine Config:"
	promptSlot   = "Select save slot:"
	promptDevice = "Select device to push to:"

	msgNoDevices     = "No devices connected."
	msgPushSucceeded = "Push successful."
	msgPushFailed    = "Push failed."
)

// Transport moves a configuration file onto a device.
type Transport interface {
	Available(ctx context.Context) bool
	Devices(ctx context.Context) ([]adb.Device, error)
	Push(ctx context.Context, serial, local, remote string) error
}

// serverProber is implemented by transports that can tell whether their
// daemon is already running.
type serverProber interface {
	ServerRunning() bool
}

// Builder produces a configuration interactively.
type Builder interface {
	Build(ctx context.Context) (routine.Configuration, error)
}

// BuilderFactory creates a Builder bound to a prompter.
type BuilderFactory func(menu.Prompter) Builder

// Option customises a Controller.
type Option func(*Controller)

// WithRemotePath sets the device path configurations are pushed to.
func WithRemotePath(path string) Option {
	return func(c *Controller) {
		if path != "" {
			c.remotePath = path
		}
	}
}

// WithBuilderFactory replaces the sequence builder.
func WithBuilderFactory(fn BuilderFactory) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newBuilder = fn
		}
	}
}

// Controller runs the top-level menu loop and owns the cached configuration.
type Controller struct {
	prompter   menu.Prompter
	slots      *slots.Registry
	transport  Transport
	newBuilder BuilderFactory
	remotePath string

	main      *menu.Registry
	state     State
	slot      slots.ID
	cached    *routine.Configuration
	available bool
}

// New constructs a Controller in the MainMenu state.
func New(p menu.Prompter, registry *slots.Registry, transport Transport, opts ...Option) *Controller {
	c := &Controller{
		prompter:   p,
		slots:      registry,
		transport:  transport,
		remotePath: DefaultRemotePath,
		newBuilder: func(p menu.Prompter) Builder { return routine.NewBuilder(p) },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.main = menu.NewRegistry(
		menu.Entry{ID: entryCreate, Label: LabelCreate},
		menu.Entry{ID: entryView, Label: LabelView},
		menu.Entry{ID: entrySave, Label: LabelSave, Visible: c.hasCache},
		menu.Entry{ID: entryPush, Label: LabelPush, Visible: func() bool { return c.hasCache() && c.available }},
		menu.Entry{ID: entryQuit, Label: LabelQuit, Emphasis: menu.EmphasisMuted},
	)
	return c
}

// State returns the current state.
func (c *Controller) State() State { return c.state }

// Cached returns a copy of the cached configuration, if any.
func (c *Controller) Cached() (routine.Configuration, bool) {
	if c.cached == nil {
		return routine.Configuration{}, false
	}
	cfg := *c.cached
	cfg.Actions = cfg.Actions.Clone()
	return cfg, true
}

func (c *Controller) hasCache() bool { return c.cached != nil }

func (c *Controller) setState(s State) {
	c.state = s
	events.Session.State(s.String())
}

func (c *Controller) setCache(cfg routine.Configuration) {
	c.cached = &cfg
	events.Session.Cache(string(cfg.TeamColor), string(cfg.StartPosition), len(cfg.Actions))
}

// Run drives the menu until Quit is chosen. Recoverable failures are shown
// to the operator; prompt failures end the session with an error.
func (c *Controller) Run(ctx context.Context) error {
	c.setState(MainMenu)
	for c.state != Terminated {
		var err error
		switch c.state {
		case MainMenu:
			err = c.mainMenu(ctx)
		case CreatingConfiguration:
			err = c.create(ctx)
		case ManagingSaves:
			err = c.viewSaves(ctx)
		case ManagingSlot:
			err = c.manageSlot(ctx, c.slot)
		case PushingConfiguration:
			err = c.push(ctx)
		default:
			err = fmt.Errorf("unknown state %d", c.state)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (c *Controller) mainMenu(ctx context.Context) error {
	c.available = c.transport != nil && c.transport.Available(ctx)
	opts, ids := c.main.Build()
	idx, err := c.prompter.Select(ctx, c.header(), opts)
	if err != nil {
		return fmt.Errorf("main menu: %w", err)
	}
	if idx < 0 || idx >= len(ids) {
		return fmt.Errorf("main menu: index %d out of range", idx)
	}
	switch ids[idx] {
	case entryCreate:
		c.setState(CreatingConfiguration)
	case entryView:
		c.setState(ManagingSaves)
	case entrySave:
		return c.save(ctx)
	case entryPush:
		c.setState(PushingConfiguration)
	case entryQuit:
		c.setState(Terminated)
	}
	return nil
}

// header renders the status lines above the main menu prompt.
func (c *Controller) header() string {
	status := "not installed"
	if c.available {
		status = "installed"
		if p, ok := c.transport.(serverProber); ok && p.ServerRunning() {
			status = "installed, server running"
		}
	}
	cached := "none"
	if c.cached != nil {
		cached = c.cached.Summary()
	}
	lines := table.KeyValues([][2]string{
		{"ADB:", status},
		{"Cached:", cached},
	})
	return strings.Join(append(lines, "", promptMain), "\n")
}

func (c *Controller) create(ctx context.Context) error {
	cfg, err := c.newBuilder(c.prompter).Build(ctx)
	if err != nil {
		return fmt.Errorf("create configuration: %w", err)
	}
	c.setCache(cfg)
	c.setState(MainMenu)
	return nil
}

// slotOptions lists every slot with its occupancy. occupied and empty set
// the emphasis of each kind of row.
func (c *Controller) slotOptions(occupied, empty menu.Emphasis) []menu.Option {
	states := c.slots.States()
	opts := make([]menu.Option, 0, len(states))
	for i, st := range states {
		e := empty
		if st == slots.Occupied {
			e = occupied
		}
		opts = append(opts, menu.Option{Label: slots.Label(slots.ID(i), st), Emphasis: e})
	}
	return opts
}

func (c *Controller) save(ctx context.Context) error {
	c.setState(ManagingSaves)
	defer c.setState(MainMenu)
	if c.cached == nil {
		return c.show(ctx, "Nothing to save.\nCreate or load a configuration first.", true)
	}
	opts, back := menu.WithBack(c.slotOptions(menu.EmphasisRed, menu.EmphasisConfirm))
	idx, err := c.prompter.Select(ctx, promptSlot, opts)
	if err != nil {
		return fmt.Errorf("select save slot: %w", err)
	}
	if idx < 0 || idx > back {
		return fmt.Errorf("select save slot: index %d out of range", idx)
	}
	if idx == back {
		return nil
	}
	id := slots.ID(idx)
	if err := c.slots.Save(id, *c.cached); err != nil {
		events.Session.Failure("save", err)
		return c.show(ctx, fmt.Sprintf("Save failed.\n%v", err), true)
	}
	return c.show(ctx, fmt.Sprintf("Configuration saved to slot %d.", int(id)), true)
}

func (c *Controller) viewSaves(ctx context.Context) error {
	opts, back := menu.WithBack(c.slotOptions(menu.EmphasisConfirm, menu.EmphasisRed))
	idx, err := c.prompter.Select(ctx, promptSlot, opts)
	if err != nil {
		return fmt.Errorf("select saved slot: %w", err)
	}
	if idx < 0 || idx > back {
		return fmt.Errorf("select saved slot: index %d out of range", idx)
	}
	if idx == back {
		c.setState(MainMenu)
		return nil
	}
	id := slots.ID(idx)
	if c.slots.States()[id] == slots.Empty {
		c.setState(MainMenu)
		return c.show(ctx, fmt.Sprintf("Slot %d is empty.", int(id)), false)
	}
	c.slot = id
	c.setState(ManagingSlot)
	return nil
}

func (c *Controller) manageSlot(ctx context.Context, id slots.ID) error {
	defer c.setState(MainMenu)
	opts := []menu.Option{
		{Label: LabelLoad, Emphasis: menu.EmphasisConfirm},
		{Label: LabelInspect},
		{Label: LabelDelete, Emphasis: menu.EmphasisRed},
		{Label: menu.LabelBack, Emphasis: menu.EmphasisMuted},
	}
	idx, err := c.prompter.Select(ctx, fmt.Sprintf("Selected slot %d:", int(id)), opts)
	if err != nil {
		return fmt.Errorf("select slot action: %w", err)
	}
	if idx < 0 || idx >= len(opts) {
		return fmt.Errorf("select slot action: index %d out of range", idx)
	}
	switch opts[idx].Label {
	case LabelLoad:
		cfg, err := c.slots.Load(id)
		if err != nil {
			return c.slotFailure(ctx, "load", id, err)
		}
		c.setCache(cfg)
	case LabelInspect:
		report, err := c.slots.Inspect(id)
		if err != nil {
			return c.slotFailure(ctx, "inspect", id, err)
		}
		return c.show(ctx, report, true)
	case LabelDelete:
		if err := c.slots.Delete(id); err != nil {
			return c.slotFailure(ctx, "delete", id, err)
		}
	}
	return nil
}

func (c *Controller) slotFailure(ctx context.Context, op string, id slots.ID, err error) error {
	events.Session.Failure(op, err)
	head := fmt.Sprintf("Could not %s slot %d.", op, int(id))
	switch {
	case errors.Is(err, slots.ErrSlotEmpty):
		return c.show(ctx, fmt.Sprintf("Slot %d is empty.", int(id)), false)
	case errors.Is(err, slots.ErrMalformed):
		return c.show(ctx, head+"\nThe saved file is not a valid configuration.", true)
	}
	return c.show(ctx, fmt.Sprintf("%s\n%v", head, err), true)
}

func (c *Controller) push(ctx context.Context) error {
	defer c.setState(MainMenu)
	if c.cached == nil {
		return c.show(ctx, "Nothing to push.\nCreate or load a configuration first.", true)
	}
	devices, err := c.transport.Devices(ctx)
	if err != nil {
		events.Session.Failure("devices", err)
		devices = nil
	}
	prompt := promptDevice
	if len(devices) == 0 {
		prompt = msgNoDevices + "\n\n" + promptDevice
	}
	labels := make([]menu.Option, len(devices))
	for i, d := range devices {
		e := menu.EmphasisNormal
		if !d.Ready() {
			e = menu.EmphasisMuted
		}
		labels[i] = menu.Option{Label: d.Label(), Emphasis: e}
	}
	opts, back := menu.WithBack(labels)
	idx, err := c.prompter.Select(ctx, prompt, opts)
	if err != nil {
		return fmt.Errorf("select device: %w", err)
	}
	if idx < 0 || idx > back {
		return fmt.Errorf("select device: index %d out of range", idx)
	}
	if idx == back {
		return nil
	}

	pushErr := c.pushTo(ctx, devices[idx].Serial)
	if pushErr != nil {
		events.Session.Failure("push", pushErr)
		return c.show(ctx, fmt.Sprintf("%s\n%v", msgPushFailed, pushErr), true)
	}
	return c.show(ctx, msgPushSucceeded, true)
}

// pushTo writes the transient artifact, pushes it and always removes it.
func (c *Controller) pushTo(ctx context.Context, serial string) (err error) {
	local, err := c.slots.WriteTransient(*c.cached)
	defer func() {
		if rmErr := c.slots.RemoveTransient(); rmErr != nil {
			events.Session.Failure("cleanup", rmErr)
		}
	}()
	if err != nil {
		return err
	}
	return c.transport.Push(ctx, serial, local, c.remotePath)
}

func (c *Controller) show(ctx context.Context, text string, emphasize bool) error {
	if err := c.prompter.Show(ctx, text, emphasize); err != nil {
		return fmt.Errorf("show message: %w", err)
	}
	return nil
}
