// Package hierarchy tracks where a traversal currently is inside a UI
// tree: a stack of container frames, the active screen context, and a
// small breadcrumb trail of recent context changes.
package hierarchy

import (
	"fmt"
	"sync"
)

// DefaultScreenContext is the screen label used until a traversal sets one.
const DefaultScreenContext = "main"

// breadcrumbCapacity bounds the trail of recent context changes.
const breadcrumbCapacity = 50

// Tracker is a mutable record of traversal position. Traversal code pushes
// a frame when it descends into a container and pops when it ascends.
// Popping an empty stack is a silent no-op so traversal code can pop
// defensively without tracking exact depth.
//
// All methods are safe for concurrent use. Two traversal passes that issue
// identical push/pop/screen sequences observe byte-identical state at
// every corresponding point.
type Tracker struct {
	mu            sync.RWMutex
	screenContext string
	navState      string
	frames        []string
	breadcrumbs   []string
}

// NewTracker returns a tracker positioned at the default screen context
// with an empty frame stack.
func NewTracker() *Tracker {
	return &Tracker{screenContext: DefaultScreenContext}
}

// PushFrame pushes a container label onto the frame stack.
func (t *Tracker) PushFrame(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.frames = append(t.frames, label)
	t.leaveBreadcrumb("push:" + label)
}

// PopFrame removes the most recently pushed frame. Popping an empty stack
// does nothing.
func (t *Tracker) PopFrame() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(t.frames) == 0 {
		return
	}
	label := t.frames[len(t.frames)-1]
	t.frames = t.frames[:len(t.frames)-1]
	t.leaveBreadcrumb("pop:" + label)
}

// Frames returns a copy of the frame stack, outermost first.
func (t *Tracker) Frames() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.frames))
	copy(out, t.frames)
	return out
}

// InnermostFrame returns the most recently pushed frame, if any.
func (t *Tracker) InnermostFrame() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.frames) == 0 {
		return "", false
	}
	return t.frames[len(t.frames)-1], true
}

// Depth returns the current number of pushed frames.
func (t *Tracker) Depth() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.frames)
}

// IsEmpty reports whether no frames are pushed.
func (t *Tracker) IsEmpty() bool {
	return t.Depth() == 0
}

// SetScreenContext overwrites the current screen label.
func (t *Tracker) SetScreenContext(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screenContext = label
	t.leaveBreadcrumb("screen:" + label)
}

// ScreenContext returns the current screen label.
func (t *Tracker) ScreenContext() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.screenContext
}

// SetNavigationState records a free-form navigation label. It never
// affects generated identifiers; it exists for the debug report.
func (t *Tracker) SetNavigationState(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.navState = label
	t.leaveBreadcrumb("nav:" + label)
}

// NavigationState returns the recorded navigation label.
func (t *Tracker) NavigationState() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.navState
}

// Breadcrumbs returns a copy of the recent context changes, oldest first.
func (t *Tracker) Breadcrumbs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.breadcrumbs))
	copy(out, t.breadcrumbs)
	return out
}

// Reset clears the frame stack, the breadcrumb trail, the navigation
// state, and restores the default screen context. Call it between
// traversal passes.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.screenContext = DefaultScreenContext
	t.navState = ""
	t.frames = nil
	t.breadcrumbs = nil
}

// String renders the tracker state on one line for debug output.
func (t *Tracker) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return fmt.Sprintf("screen=%s depth=%d frames=%v", t.screenContext, len(t.frames), t.frames)
}

// leaveBreadcrumb appends to the trail, evicting the oldest entry once the
// trail is full. Callers must hold t.mu.
func (t *Tracker) leaveBreadcrumb(crumb string) {
	if len(t.breadcrumbs) >= breadcrumbCapacity {
		t.breadcrumbs = append(t.breadcrumbs[1:], crumb)
		return
	}
	t.breadcrumbs = append(t.breadcrumbs, crumb)
}
