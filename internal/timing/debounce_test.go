package timing

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestDebouncer_CoalescesRapidTriggers(t *testing.T) {
	d := NewDebouncer()
	var fired atomic.Int32

	for range 5 {
		d.Trigger(20*time.Millisecond, func() { fired.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	time.Sleep(60 * time.Millisecond)
	if got := fired.Load(); got != 1 {
		t.Errorf("fired %d times, want 1", got)
	}
}

func TestDebouncer_Cancel(t *testing.T) {
	d := NewDebouncer()
	var fired atomic.Int32

	d.Trigger(10*time.Millisecond, func() { fired.Add(1) })
	d.Cancel()

	time.Sleep(40 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("cancelled debounce fired %d times", got)
	}
}

func TestDebouncer_FiresAfterQuietPeriod(t *testing.T) {
	d := NewDebouncer()
	done := make(chan struct{})

	d.Trigger(5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("debounced callback never fired")
	}
}

func TestSequence_LastRequestWins(t *testing.T) {
	var s Sequence

	first := s.Next()
	second := s.Next()

	if s.Latest(first) {
		t.Error("superseded sequence number still reported latest")
	}
	if !s.Latest(second) {
		t.Error("most recent sequence number not reported latest")
	}

	s.Invalidate()
	if s.Latest(second) {
		t.Error("sequence number survived invalidation")
	}
}
