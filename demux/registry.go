package demux

import (
	"errors"
	"fmt"
	"sync"
)

// Registry holds named strategies for lookup by drivers such as the
// benchmark command.
//
// Entries are kept sorted by Kind so that List returns a stable order that
// starts with the reference strategy.
type Registry struct {
	mu      sync.RWMutex
	entries []*Strategy
	sorted  bool // true if entries are sorted by kind
}

// Default is the registry of every E1 strategy.
var Default = &Registry{}

func init() {
	for _, k := range Kinds() {
		if err := Default.Register(MustNew(k, E1)); err != nil {
			panic(err)
		}
	}
}

// Register adds s to the registry. Names must be unique.
func (r *Registry) Register(s *Strategy) error {
	if s == nil {
		return errors.New("demux: register nil strategy")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.entries {
		if e.name == s.name {
			return fmt.Errorf("%w: %q", ErrDuplicateStrategy, s.name)
		}
	}
	r.entries = append(r.entries, s)
	r.sorted = false
	return nil
}

// Lookup returns the strategy registered under name. The boolean is false
// when no strategy has that name.
func (r *Registry) Lookup(name string) (*Strategy, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.entries {
		if e.name == name {
			return e, true
		}
	}
	return nil, false
}

// List returns a copy of all entries sorted by kind.
func (r *Registry) List() []*Strategy {
	r.mu.Lock()
	if !r.sorted {
		r.sortByKind()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]*Strategy, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Names returns the registered names in List order.
func (r *Registry) Names() []string {
	list := r.List()
	names := make([]string, len(list))
	for i, s := range list {
		names[i] = s.name
	}
	return names
}

// Reset clears all entries. Intended for tests.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sortByKind orders entries by kind, keeping registration order within a
// kind. Must be called with r.mu held.
func (r *Registry) sortByKind() {
	// Insertion sort; the registry holds a handful of entries.
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].kind > key.kind {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
