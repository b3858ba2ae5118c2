package search

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last keystroke before the
// filter runs.
const DefaultDebounce = 300 * time.Millisecond

// Ticket identifies one scheduled run of a debounced action.
type Ticket struct {
	generation uint64
	Query      string
}

// Debouncer coalesces a burst of inputs into a single action for the last
// value. It does not own a timer: callers deliver each ticket back after
// the quiet period (a tea.Tick in the UI) and Fire tells them whether that
// ticket is still the latest.
type Debouncer struct {
	mu         sync.Mutex
	generation uint64
	pending    bool
	window     time.Duration
}

// NewDebouncer creates a Debouncer with the given window.
// A non-positive window falls back to DefaultDebounce.
func NewDebouncer(window time.Duration) *Debouncer {
	if window <= 0 {
		window = DefaultDebounce
	}
	return &Debouncer{window: window}
}

// Window returns the quiet period callers should wait before Fire.
func (d *Debouncer) Window() time.Duration {
	return d.window
}

// Schedule records query as the latest input, superseding every earlier
// ticket.
func (d *Debouncer) Schedule(query string) Ticket {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.pending = true
	return Ticket{generation: d.generation, Query: query}
}

// Fire reports whether t is the latest ticket and consumes it. Only the
// first Fire of the latest ticket succeeds.
func (d *Debouncer) Fire(t Ticket) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.pending || t.generation != d.generation {
		return "", false
	}
	d.pending = false
	return t.Query, true
}

// Cancel invalidates every outstanding ticket.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.pending = false
}

// Pending reports whether a scheduled ticket has not fired yet.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending
}
