// Package debuglog records identifier-generation events in a bounded,
// ordered, clearable ring shared by every generator in a scope.
package debuglog

import (
	"sync"
	"time"
)

// DefaultCapacity is the entry cap used by New.
const DefaultCapacity = 1000

// Entry captures one generation event: the inputs the caller supplied and
// the identifier that came out.
type Entry struct {
	Time    time.Time
	Subject string
	Role    string
	Context string
	ID      string
}

// Log is an append-only, size-bounded record of generation events. Once
// the cap is reached the oldest entry is evicted; the most recent entries
// are always retrievable. All methods are safe for concurrent use, and
// entries appear in the order their Record calls completed.
type Log struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	dropped  uint64
}

// New returns a log bounded at DefaultCapacity.
func New() *Log {
	return NewWithCapacity(DefaultCapacity)
}

// NewWithCapacity returns a log bounded at the given number of entries.
// Non-positive capacities fall back to DefaultCapacity.
func NewWithCapacity(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{capacity: capacity}
}

// Record appends an entry, evicting the oldest one if the log is full.
func (l *Log) Record(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.capacity {
		n := copy(l.entries, l.entries[1:])
		l.entries = l.entries[:n]
		l.dropped++
	}
	l.entries = append(l.entries, e)
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *Log) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of retained entries.
func (l *Log) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Dropped returns how many entries have been evicted since the last Clear.
func (l *Log) Dropped() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dropped
}

// Clear removes every entry and resets the eviction count. Querying a
// cleared log always yields empty, no matter how many entries existed.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
	l.dropped = 0
}
