package slots

import (
	"errors"
	"fmt"

	"github.com/atomicstack/ace-config/internal/logging/events"
	"github.com/atomicstack/ace-config/internal/routine"
)

// Count is the number of fixed slots.
const Count = 10

// TransientName is the unparameterised file pushed to devices.
const TransientName = "ace-c-config.json"

var (
	ErrInvalidSlot          = errors.New("slot id out of range")
	ErrSlotEmpty            = errors.New("slot is empty")
	ErrInvalidConfiguration = errors.New("configuration failed validation")
)

// ID identifies a slot in [0, Count).
type ID int

func (id ID) Valid() bool { return id >= 0 && id < Count }

// FileName is the backing file name of the slot.
func (id ID) FileName() string {
	return fmt.Sprintf("ace-c-config-%d.json", int(id))
}

// IDs lists all slots in order.
func IDs() []ID {
	ids := make([]ID, Count)
	for i := range ids {
		ids[i] = ID(i)
	}
	return ids
}

// State is the occupancy of a slot.
type State int

const (
	Empty State = iota
	Occupied
)

func (s State) String() string {
	if s == Occupied {
		return "Occupied"
	}
	return "Empty"
}

// Registry maps slot ids to persisted configurations through a Store.
type Registry struct {
	store Store
}

// NewRegistry returns a Registry backed by store.
func NewRegistry(store Store) *Registry {
	return &Registry{store: store}
}

// Status reports the occupancy of every slot. A slot whose existence cannot
// be determined is reported Empty.
func (r *Registry) Status() map[ID]State {
	states := make(map[ID]State, Count)
	for _, id := range IDs() {
		states[id] = r.state(id)
	}
	return states
}

// States is Status as a slice indexed by slot id.
func (r *Registry) States() []State {
	states := make([]State, Count)
	for _, id := range IDs() {
		states[id] = r.state(id)
	}
	return states
}

func (r *Registry) state(id ID) State {
	ok, err := r.store.Exists(id.FileName())
	if err != nil {
		events.Slot.Error(int(id), err)
		return Empty
	}
	if ok {
		return Occupied
	}
	return Empty
}

// Save persists cfg into slot id, replacing any previous content.
func (r *Registry) Save(id ID, cfg routine.Configuration) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, int(id))
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	data, err := Encode(cfg)
	if err != nil {
		return fmt.Errorf("encode slot %d: %w", int(id), err)
	}
	if err := r.store.Write(id.FileName(), data); err != nil {
		events.Slot.Error(int(id), err)
		return fmt.Errorf("write slot %d: %w", int(id), err)
	}
	events.Slot.Save(int(id), r.store.Path(id.FileName()))
	return nil
}

// Load reconstructs the configuration stored in slot id.
func (r *Registry) Load(id ID) (routine.Configuration, error) {
	if err := r.requireOccupied(id); err != nil {
		return routine.Configuration{}, err
	}
	data, err := r.store.Read(id.FileName())
	if err != nil {
		events.Slot.Error(int(id), err)
		return routine.Configuration{}, fmt.Errorf("read slot %d: %w", int(id), err)
	}
	cfg, err := Decode(data)
	if err != nil {
		events.Slot.Error(int(id), err)
		return routine.Configuration{}, fmt.Errorf("slot %d: %w", int(id), err)
	}
	events.Slot.Load(int(id))
	return cfg, nil
}

// Delete removes the backing storage of slot id.
func (r *Registry) Delete(id ID) error {
	if err := r.requireOccupied(id); err != nil {
		return err
	}
	if err := r.store.Remove(id.FileName()); err != nil {
		events.Slot.Error(int(id), err)
		return fmt.Errorf("remove slot %d: %w", int(id), err)
	}
	events.Slot.Delete(int(id))
	return nil
}

// Inspect renders the human-readable report of slot id.
func (r *Registry) Inspect(id ID) (string, error) {
	cfg, err := r.Load(id)
	if err != nil {
		return "", err
	}
	events.Slot.Inspect(int(id))
	return Report(id, cfg), nil
}

// WriteTransient writes cfg to the push artifact and returns its path.
func (r *Registry) WriteTransient(cfg routine.Configuration) (string, error) {
	data, err := Encode(cfg)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidConfiguration, err)
	}
	if err := r.store.Write(TransientName, data); err != nil {
		return "", fmt.Errorf("write push artifact: %w", err)
	}
	return r.store.Path(TransientName), nil
}

// RemoveTransient deletes the push artifact. A missing artifact is not an error.
func (r *Registry) RemoveTransient() error {
	ok, err := r.store.Exists(TransientName)
	if err != nil || !ok {
		return err
	}
	return r.store.Remove(TransientName)
}

func (r *Registry) requireOccupied(id ID) error {
	if !id.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidSlot, int(id))
	}
	if r.state(id) != Occupied {
		return fmt.Errorf("%w: %d", ErrSlotEmpty, int(id))
	}
	return nil
}
