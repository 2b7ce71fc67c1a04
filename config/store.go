package config

import (
	"context"
	"sync"
)

// Store holds the process-wide Configuration and resolves reads against an
// optional context-scoped override. All methods are safe for concurrent
// use.
//
// Get resolves in two layers: a Configuration installed on the context via
// NewContext always wins; otherwise the store's current value is returned.
// The scoped layer exists so parallel units of work (one test case each)
// can run under their own namespace and flags without clobbering the
// shared instance.
type Store struct {
	mu      sync.RWMutex
	current Configuration
}

// NewStore returns a Store initialized to the default configuration.
func NewStore() *Store {
	return &Store{current: Default()}
}

// ctxKey is the context key type for scoped configuration overrides.
type ctxKey struct{}

// NewContext returns a context carrying cfg as a scoped override. Every
// Store.Get with the returned context resolves to cfg instead of the
// store's process-wide value.
func NewContext(ctx context.Context, cfg Configuration) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg.Normalize())
}

// FromContext returns the scoped override installed on ctx, if any.
func FromContext(ctx context.Context) (Configuration, bool) {
	if ctx == nil {
		return Configuration{}, false
	}
	cfg, ok := ctx.Value(ctxKey{}).(Configuration)
	return cfg, ok
}

// Get returns the active configuration: the scoped override carried by ctx
// when one is installed, otherwise the store's current value. The result
// reflects every Set or Update that completed before this call; it is
// never a stale cached copy.
func (s *Store) Get(ctx context.Context) Configuration {
	if cfg, ok := FromContext(ctx); ok {
		return cfg
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the process-wide configuration. The change is visible to
// every subsequent Get, including callers already holding the store.
func (s *Store) Set(cfg Configuration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = cfg.Normalize()
}

// Update applies fn to a copy of the current configuration and installs
// the result atomically. Useful for flipping a single flag without racing
// a concurrent Set.
func (s *Store) Update(fn func(*Configuration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.current
	fn(&cfg)
	s.current = cfg.Normalize()
}

// ResetToDefaults restores the documented defaults: EnableAutoIDs true,
// empty namespace, automatic mode, all remaining toggles off.
func (s *Store) ResetToDefaults() {
	s.Set(Default())
}

// defaultStore is the package-level store used when no explicit Store is
// wired. It mirrors the shared singleton most applications want.
var defaultStore = NewStore()

// DefaultStore returns the package-level store.
func DefaultStore() *Store {
	return defaultStore
}
