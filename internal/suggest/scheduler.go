package suggest

import (
	"context"
	"sync"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/timing"
)

// Requester is the slice of the content service the scheduler needs.
type Requester interface {
	GenerateSuggestions(ctx context.Context, input, target string, difficulty int, puzzleContext string) (*content.SuggestionSet, error)
	GenerateContextualHint(ctx context.Context, input, target string, difficulty int, puzzleContext string, progress float64) (*content.Hint, error)
}

// Scheduler orchestrates debounced, cancellable suggestion and hint
// requests for one answer session. Responses are applied only when their
// sequence number is still the latest issued; superseded responses are
// silently discarded ("last issued request wins").
//
// The scheduler never blocks the caller and never surfaces request
// errors: failures degrade to the deterministic local fallbacks.
type Scheduler struct {
	requester     Requester
	cfg           Config
	difficulty    int
	target        string
	puzzleContext string

	debounce     *timing.Debouncer
	hintDebounce *timing.Debouncer
	seq          timing.Sequence
	hintSeq      timing.Sequence

	mu          sync.Mutex
	suggestions *content.SuggestionSet
	hint        *content.Hint
	requested   int
	onUpdate    func()
}

// NewScheduler creates a scheduler for one session.
// onUpdate, when non-nil, is called (on an arbitrary goroutine) whenever
// a fresh result lands; TUI callers use it to trigger a redraw.
func NewScheduler(requester Requester, cfg Config, difficulty int, target, puzzleContext string, onUpdate func()) *Scheduler {
	return &Scheduler{
		requester:     requester,
		cfg:           cfg,
		difficulty:    difficulty,
		target:        target,
		puzzleContext: puzzleContext,
		debounce:      timing.NewDebouncer(),
		hintDebounce:  timing.NewDebouncer(),
		onUpdate:      onUpdate,
	}
}

// InputChanged feeds a new input state into the scheduler, applying the
// tier's timing strategy. Below the length threshold nothing fires and
// any pending request is cancelled.
func (s *Scheduler) InputChanged(input string, progress float64) {
	if len([]rune(input)) < s.cfg.Threshold {
		s.CancelPending()
		return
	}

	switch s.cfg.Strategy {
	case StrategyImmediate:
		s.dispatch(input)
	case StrategyModerate:
		s.debounce.Trigger(s.cfg.Debounce, func() { s.dispatch(input) })
	case StrategyOnDemand:
		// Only RequestNow fires for on-demand tiers.
	}

	// Hints follow their own, slower cadence on every strategy.
	s.hintDebounce.Trigger(s.cfg.HintDelay, func() { s.dispatchHint(input, progress) })
}

// RequestNow issues an immediate suggestion request regardless of
// strategy, for explicit player actions like opening the panel.
func (s *Scheduler) RequestNow(input string, progress float64) {
	if len([]rune(input)) < s.cfg.Threshold {
		return
	}
	s.dispatch(input)
	s.dispatchHint(input, progress)
}

func (s *Scheduler) dispatch(input string) {
	n := s.seq.Next()

	s.mu.Lock()
	s.requested++
	s.mu.Unlock()

	go func() {
		set, err := s.requester.GenerateSuggestions(context.Background(), input, s.target, s.difficulty, s.puzzleContext)
		if err != nil || set == nil {
			set = content.FallbackSuggestions(input, s.target)
		}

		if !s.seq.Latest(n) {
			return // superseded while in flight
		}

		s.mu.Lock()
		s.suggestions = set
		cb := s.onUpdate
		s.mu.Unlock()

		if cb != nil {
			cb()
		}
	}()
}

func (s *Scheduler) dispatchHint(input string, progress float64) {
	n := s.hintSeq.Next()

	go func() {
		hint, err := s.requester.GenerateContextualHint(context.Background(), input, s.target, s.difficulty, s.puzzleContext, progress)
		if err != nil || hint == nil {
			hint = content.FallbackHint(s.target, s.puzzleContext, progress)
		}

		if !s.hintSeq.Latest(n) {
			return
		}

		s.mu.Lock()
		s.hint = hint
		cb := s.onUpdate
		s.mu.Unlock()

		if cb != nil {
			cb()
		}
	}()
}

// Suggestions returns the most recent suggestion set, or nil if none has
// landed yet.
func (s *Scheduler) Suggestions() *content.SuggestionSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.suggestions
}

// Hint returns the most recent contextual hint, or nil.
func (s *Scheduler) Hint() *content.Hint {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hint
}

// RequestCount returns the number of suggestion requests issued.
func (s *Scheduler) RequestCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requested
}

// CancelPending cancels scheduled timers and marks all in-flight
// responses stale. In-flight transports are not aborted; their responses
// are simply ignored on arrival.
func (s *Scheduler) CancelPending() {
	s.debounce.Cancel()
	s.hintDebounce.Cancel()
	s.seq.Invalidate()
	s.hintSeq.Invalidate()
}

// Close tears the scheduler down. No callback fires after Close.
func (s *Scheduler) Close() {
	s.CancelPending()
	s.mu.Lock()
	s.onUpdate = nil
	s.mu.Unlock()
}
