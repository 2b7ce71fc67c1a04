package ident

import (
	"sort"
	"sync"
)

// Registry is the run-scoped set of identifiers already issued. It exists
// to detect accidental duplicates: membership is reported through
// Contains, never as an error. All methods are safe for concurrent use.
type Registry struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{ids: make(map[string]struct{})}
}

// Add records an issued identifier. Empty identifiers are ignored.
func (r *Registry) Add(id string) {
	if id == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids[id] = struct{}{}
}

// Contains reports whether id has already been issued this run. It never
// mutates the set.
func (r *Registry) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.ids[id]
	return ok
}

// Len returns the number of distinct identifiers issued.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ids)
}

// Identifiers returns a sorted copy of every issued identifier.
func (r *Registry) Identifiers() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.ids))
	for id := range r.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Clear empties the registry. Primarily useful for resetting state
// between test cases.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = make(map[string]struct{})
}
