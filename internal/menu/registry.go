package menu

// Entry describes one line of a dynamic menu. Visible decides per render
// whether the entry is offered; a nil Visible means always.
type Entry struct {
	ID       string
	Label    string
	Emphasis Emphasis
	Visible  func() bool
}

// Registry keeps menu entries in declaration order.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// NewRegistry constructs a registry from the given entries.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{index: make(map[string]int, len(entries))}
	for _, e := range entries {
		r.Add(e)
	}
	return r
}

// Add appends an entry, replacing any earlier entry with the same ID in place.
func (r *Registry) Add(e Entry) {
	if idx, ok := r.index[e.ID]; ok {
		r.entries[idx] = e
		return
	}
	r.index[e.ID] = len(r.entries)
	r.entries = append(r.entries, e)
}

// Find locates an entry by ID.
func (r *Registry) Find(id string) (Entry, bool) {
	idx, ok := r.index[id]
	if !ok {
		return Entry{}, false
	}
	return r.entries[idx], true
}

// Build evaluates visibility and returns the options to present along with
// the entry ID behind each option index.
func (r *Registry) Build() ([]Option, []string) {
	opts := make([]Option, 0, len(r.entries))
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		if e.Visible != nil && !e.Visible() {
			continue
		}
		opts = append(opts, Option{Label: e.Label, Emphasis: e.Emphasis})
		ids = append(ids, e.ID)
	}
	return opts, ids
}
