package session

import (
	"sync"
	"time"

	"github.com/Meshed/PondDiggingCalculator-sub005/pkg/validation"
)

// DefaultDebounceWindow is the quiet period after the last edit to a field
// before it is considered settled.
const DefaultDebounceWindow = 300 * time.Millisecond

// Coordinator sequences rapid edits into single validate-and-calculate
// passes. Each field runs an independent Idle -> Pending state machine: an
// edit to a pending field resets its timer, and only the value present when
// the timer fires is ever committed. Intermediate keystrokes within the
// window are never calculated.
type Coordinator struct {
	mu      sync.Mutex
	session *Session
	window  time.Duration
	timers  map[validation.Field]*time.Timer
	pending map[validation.Field]string
}

// NewCoordinator wraps a session with a debounce window. A non-positive
// window falls back to DefaultDebounceWindow.
func NewCoordinator(s *Session, window time.Duration) *Coordinator {
	if window <= 0 {
		window = DefaultDebounceWindow
	}
	return &Coordinator{
		session: s,
		window:  window,
		timers:  make(map[validation.Field]*time.Timer),
		pending: make(map[validation.Field]string),
	}
}

// Touch records a raw edit to one field and restarts that field's timer.
// Timers for other fields are untouched.
func (c *Coordinator) Touch(field validation.Field, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending[field] = raw
	if t, ok := c.timers[field]; ok {
		t.Stop()
	}
	c.timers[field] = time.AfterFunc(c.window, func() { c.settle(field) })
}

// Flush commits every pending field immediately, in the canonical field
// order. Used on shutdown and when a caller needs a settled state now.
func (c *Coordinator) Flush() {
	c.mu.Lock()
	staged := make(map[validation.Field]string, len(c.pending))
	for field, raw := range c.pending {
		staged[field] = raw
	}
	for field, t := range c.timers {
		t.Stop()
		delete(c.timers, field)
	}
	c.pending = make(map[validation.Field]string)
	c.mu.Unlock()

	for _, field := range validation.FieldOrder {
		if raw, ok := staged[field]; ok {
			c.session.SetField(field, raw)
		}
	}
}

// Stop cancels all outstanding timers without committing pending edits.
func (c *Coordinator) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for field, t := range c.timers {
		t.Stop()
		delete(c.timers, field)
	}
	c.pending = make(map[validation.Field]string)
}

// PendingFields returns how many fields are currently in the Pending state.
func (c *Coordinator) PendingFields() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// settle commits the latest value of one field after its quiet period. The
// session recalculates from the current value of every committed field, not
// from a snapshot taken when this timer started.
func (c *Coordinator) settle(field validation.Field) {
	c.mu.Lock()
	raw, ok := c.pending[field]
	delete(c.pending, field)
	delete(c.timers, field)
	c.mu.Unlock()

	if ok {
		c.session.SetField(field, raw)
	}
}
