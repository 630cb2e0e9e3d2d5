// Package timing provides the scheduling primitives shared by the input
// session and the suggestion scheduler: cancellable debounce timers and
// monotonic sequence counters for discarding superseded async work.
package timing

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid triggers into a single callback after a quiet
// period. Each Trigger supersedes any pending one; Cancel drops the
// pending callback entirely. Safe for concurrent use.
//
// Supersession is cooperative: a timer that already fired but lost the
// generation race simply does nothing.
type Debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	gen   uint64
}

// NewDebouncer creates an idle Debouncer.
func NewDebouncer() *Debouncer {
	return &Debouncer{}
}

// Trigger schedules fn to run after delay, cancelling any pending
// callback. A zero delay still goes through the timer so callers get
// consistent asynchrony.
func (d *Debouncer) Trigger(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen

	if d.timer != nil {
		d.timer.Stop()
	}

	d.timer = time.AfterFunc(delay, func() {
		d.mu.Lock()
		stale := gen != d.gen
		d.mu.Unlock()
		if stale {
			return
		}
		fn()
	})
}

// Cancel drops any pending callback. Idempotent.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Sequence issues monotonically increasing request numbers and answers
// whether a given number is still the latest. Used to apply only the most
// recently issued async response ("last request wins", not last resolved).
type Sequence struct {
	mu   sync.Mutex
	next uint64
}

// Next issues a new sequence number.
func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

// Latest reports whether n is the most recently issued number.
func (s *Sequence) Latest(n uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return n == s.next
}

// Invalidate issues-and-discards a number so every outstanding request
// becomes stale. Used on teardown and on explicit cancellation.
func (s *Sequence) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
}
