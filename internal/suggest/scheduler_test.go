package suggest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/byronwade/rebuzzle/internal/content"
)

// stubRequester returns canned results and records inputs. Requests for
// blockOn block until release is closed, simulating a slow in-flight call.
type stubRequester struct {
	mu      sync.Mutex
	inputs  []string
	blockOn string
	release chan struct{}
}

func (r *stubRequester) GenerateSuggestions(_ context.Context, input, target string, _ int, _ string) (*content.SuggestionSet, error) {
	if r.blockOn != "" && input == r.blockOn {
		<-r.release
	}
	r.mu.Lock()
	r.inputs = append(r.inputs, input)
	r.mu.Unlock()
	return &content.SuggestionSet{WordSuggestions: []string{"echo:" + input}}, nil
}

func (r *stubRequester) GenerateContextualHint(_ context.Context, _, target string, _ int, _ string, progress float64) (*content.Hint, error) {
	return content.FallbackHint(target, "", progress), nil
}

func (r *stubRequester) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.inputs)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition never became true")
}

func TestScheduler_BelowThresholdDoesNotFire(t *testing.T) {
	req := &stubRequester{}
	s := NewScheduler(req, Config{Threshold: 3, Strategy: StrategyImmediate, HintDelay: time.Hour}, 5, "HELLO", "", nil)
	defer s.Close()

	s.InputChanged("HE", 0.1)
	time.Sleep(30 * time.Millisecond)

	if req.calls() != 0 {
		t.Errorf("request fired below threshold: %d calls", req.calls())
	}
}

func TestScheduler_ImmediateFiresPerChange(t *testing.T) {
	req := &stubRequester{}
	s := NewScheduler(req, Config{Threshold: 1, Strategy: StrategyImmediate, HintDelay: time.Hour}, 5, "HELLO", "", nil)
	defer s.Close()

	s.InputChanged("H", 0.1)
	s.InputChanged("HE", 0.2)

	waitFor(t, func() bool { return req.calls() == 2 })
}

func TestScheduler_ModerateDebounces(t *testing.T) {
	req := &stubRequester{}
	cfg := Config{Threshold: 1, Strategy: StrategyModerate, Debounce: 30 * time.Millisecond, HintDelay: time.Hour}
	s := NewScheduler(req, cfg, 5, "HELLO", "", nil)
	defer s.Close()

	s.InputChanged("H", 0.1)
	s.InputChanged("HE", 0.1)
	s.InputChanged("HEL", 0.2)

	waitFor(t, func() bool { return req.calls() == 1 })
	time.Sleep(60 * time.Millisecond)
	if req.calls() != 1 {
		t.Errorf("debounced burst produced %d requests, want 1", req.calls())
	}

	// Only the final input survives the debounce.
	waitFor(t, func() bool {
		set := s.Suggestions()
		return set != nil && set.WordSuggestions[0] == "echo:HEL"
	})
}

func TestScheduler_OnDemandOnlyFiresExplicitly(t *testing.T) {
	req := &stubRequester{}
	s := NewScheduler(req, Config{Threshold: 1, Strategy: StrategyOnDemand, HintDelay: time.Hour}, 9, "HELLO", "", nil)
	defer s.Close()

	s.InputChanged("HEL", 0.3)
	time.Sleep(30 * time.Millisecond)
	if req.calls() != 0 {
		t.Fatalf("on-demand strategy fired without request: %d calls", req.calls())
	}

	s.RequestNow("HEL", 0.3)
	waitFor(t, func() bool { return req.calls() == 1 })
}

func TestScheduler_StaleResponseDiscarded(t *testing.T) {
	release := make(chan struct{})
	req := &stubRequester{blockOn: "H", release: release}
	s := NewScheduler(req, Config{Threshold: 1, Strategy: StrategyImmediate, HintDelay: time.Hour}, 5, "HELLO", "", nil)
	defer s.Close()

	// First request hangs in flight; second supersedes it.
	s.InputChanged("H", 0.1)
	s.InputChanged("HE", 0.2)

	waitFor(t, func() bool {
		set := s.Suggestions()
		return set != nil && set.WordSuggestions[0] == "echo:HE"
	})

	// Release the stale first request; it must not overwrite the result.
	close(release)
	time.Sleep(30 * time.Millisecond)

	if got := s.Suggestions().WordSuggestions[0]; got != "echo:HE" {
		t.Errorf("stale response applied: %q", got)
	}
}

func TestScheduler_CancelPendingStopsDebounce(t *testing.T) {
	req := &stubRequester{}
	cfg := Config{Threshold: 1, Strategy: StrategyModerate, Debounce: 30 * time.Millisecond, HintDelay: time.Hour}
	s := NewScheduler(req, cfg, 5, "HELLO", "", nil)
	defer s.Close()

	s.InputChanged("H", 0.1)
	s.CancelPending()

	time.Sleep(80 * time.Millisecond)
	if req.calls() != 0 {
		t.Errorf("cancelled request still fired: %d calls", req.calls())
	}
}

func TestScheduler_HintHasOwnDelay(t *testing.T) {
	req := &stubRequester{}
	cfg := Config{Threshold: 1, Strategy: StrategyImmediate, HintDelay: 20 * time.Millisecond}
	s := NewScheduler(req, cfg, 5, "HELLO WORLD", "", nil)
	defer s.Close()

	s.InputChanged("H", 0.1)

	waitFor(t, func() bool { return s.Hint() != nil })
	if s.Hint().Text == "" {
		t.Error("hint landed empty")
	}
}

func TestConfigForTier(t *testing.T) {
	if ConfigForTier(2).Strategy != StrategyImmediate {
		t.Error("low tier should be immediate")
	}
	if ConfigForTier(5).Strategy != StrategyModerate {
		t.Error("mid tier should be moderate")
	}
	if ConfigForTier(9).Strategy != StrategyOnDemand {
		t.Error("high tier should be on-demand")
	}
}
