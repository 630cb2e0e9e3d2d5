package pressure

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// fixedRand returns the same draw for every call.
type fixedRand struct{ v float64 }

func (r fixedRand) Float64() float64 { return r.v }

// fakeClock is a manually advanced clock.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// openConfig enables a single tactic with every gate wide open.
func openConfig(t TacticType) TierConfig {
	return TierConfig{
		Tactics: map[TacticType]TacticConfig{
			t: {
				Enabled:            true,
				BaseIntensity:      IntensityModerate,
				TriggerProbability: 1.0,
				MinProgress:        0,
				MaxProgress:        1,
				MinTime:            0,
				Cooldown:           0,
			},
		},
		IntensityMultiplier: 1.0,
	}
}

func TestEngineFiresOnFirstEligibleEvaluation(t *testing.T) {
	clock := newFakeClock()
	eng := NewEngine(openConfig(TacticTimePressure), Options{
		Rand:  fixedRand{v: 0.0},
		Clock: clock.Now,
	})

	active := eng.Evaluate(0.5)
	if len(active) != 1 {
		t.Fatalf("active = %d tactics, want 1", len(active))
	}
	if active[0].Type != TacticTimePressure {
		t.Errorf("fired %s, want %s", active[0].Type, TacticTimePressure)
	}
	if !active[0].JustFired {
		t.Error("expected JustFired on the firing evaluation")
	}
	if active[0].Message == "" {
		t.Error("fired tactic has no message")
	}
	if eng.FiredCount() != 1 {
		t.Errorf("FiredCount = %d, want 1", eng.FiredCount())
	}
}

func TestEngineCooldownBlocksRefire(t *testing.T) {
	cfg := openConfig(TacticPlantDoubt)
	tc := cfg.Tactics[TacticPlantDoubt]
	tc.Cooldown = 30 * time.Second
	cfg.Tactics[TacticPlantDoubt] = tc

	clock := newFakeClock()
	eng := NewEngine(cfg, Options{Rand: fixedRand{v: 0.0}, Clock: clock.Now})

	first := eng.Evaluate(0.3)
	if len(first) != 1 || !first[0].JustFired {
		t.Fatal("first evaluation should fire")
	}

	clock.Advance(10 * time.Second)
	second := eng.Evaluate(0.3)
	for _, a := range second {
		if a.JustFired {
			t.Error("second evaluation 10s later reported a fresh firing inside cooldown")
		}
	}
	if got := eng.Phase(TacticPlantDoubt); got != PhaseCooling {
		t.Errorf("Phase = %s, want %s", got, PhaseCooling)
	}

	clock.Advance(25 * time.Second)
	third := eng.Evaluate(0.3)
	if len(third) != 1 || !third[0].JustFired {
		t.Error("expected refire after cooldown expiry")
	}
}

func TestEngineProbabilityGate(t *testing.T) {
	clock := newFakeClock()
	cfg := openConfig(TacticTimePressure)
	tc := cfg.Tactics[TacticTimePressure]
	tc.TriggerProbability = 0.4
	cfg.Tactics[TacticTimePressure] = tc

	// Draw above the probability: never fires.
	eng := NewEngine(cfg, Options{Rand: fixedRand{v: 0.9}, Clock: clock.Now})
	if active := eng.Evaluate(0.5); len(active) != 0 {
		t.Errorf("draw 0.9 against p=0.4 fired %d tactics", len(active))
	}
	if got := eng.Phase(TacticTimePressure); got != PhaseEligible {
		t.Errorf("Phase after declined draw = %s, want %s", got, PhaseEligible)
	}
}

func TestEngineProgressAndTimeGates(t *testing.T) {
	clock := newFakeClock()
	cfg := openConfig(TacticShakeConfidence)
	tc := cfg.Tactics[TacticShakeConfidence]
	tc.MinProgress = 0.3
	tc.MaxProgress = 0.9
	tc.MinTime = 20 * time.Second
	cfg.Tactics[TacticShakeConfidence] = tc

	eng := NewEngine(cfg, Options{Rand: fixedRand{v: 0.0}, Clock: clock.Now})

	if active := eng.Evaluate(0.1); len(active) != 0 {
		t.Error("fired below min progress")
	}
	clock.Advance(5 * time.Second)
	if active := eng.Evaluate(0.5); len(active) != 0 {
		t.Error("fired before min session time")
	}
	clock.Advance(30 * time.Second)
	if active := eng.Evaluate(0.95); len(active) != 0 {
		t.Error("fired above max progress")
	}
	if active := eng.Evaluate(0.5); len(active) != 1 {
		t.Error("all gates open but did not fire")
	}
}

func TestEngineThrottleSkipsFullCycle(t *testing.T) {
	clock := newFakeClock()
	cfg := openConfig(TacticTimePressure)
	tc := cfg.Tactics[TacticTimePressure]
	tc.Cooldown = 0
	cfg.Tactics[TacticTimePressure] = tc

	eng := NewEngine(cfg, Options{Rand: fixedRand{v: 0.0}, Clock: clock.Now})

	eng.Evaluate(0.5)
	if eng.FiredCount() != 1 {
		t.Fatalf("FiredCount = %d, want 1", eng.FiredCount())
	}

	// 500ms later with a tiny progress delta: throttled, no new firing
	// even with zero cooldown.
	clock.Advance(500 * time.Millisecond)
	eng.Evaluate(0.52)
	if eng.FiredCount() != 1 {
		t.Errorf("throttled evaluation ran a full cycle, FiredCount = %d", eng.FiredCount())
	}

	// Same interval but progress jumped more than 5%: full cycle runs.
	clock.Advance(500 * time.Millisecond)
	eng.Evaluate(0.65)
	if eng.FiredCount() != 2 {
		t.Errorf("progress jump did not bypass throttle, FiredCount = %d", eng.FiredCount())
	}
}

func TestEngineDisabledTacticIsIdle(t *testing.T) {
	clock := newFakeClock()
	eng := NewEngine(ConfigForTier(1), Options{Rand: fixedRand{v: 0.0}, Clock: clock.Now})

	if active := eng.Evaluate(0.5); len(active) != 0 {
		t.Errorf("tier 1 fired %d tactics, want 0", len(active))
	}
	for _, tac := range AllTactics() {
		if got := eng.Phase(tac); got != PhaseIdle {
			t.Errorf("Phase(%s) = %s at tier 1, want %s", tac, got, PhaseIdle)
		}
	}
}

func TestEngineActiveSetFullReplacement(t *testing.T) {
	clock := newFakeClock()
	cfg := openConfig(TacticPlantDoubt)
	tc := cfg.Tactics[TacticPlantDoubt]
	tc.Cooldown = time.Hour
	cfg.Tactics[TacticPlantDoubt] = tc

	eng := NewEngine(cfg, Options{Rand: fixedRand{v: 0.0}, Clock: clock.Now})

	if active := eng.Evaluate(0.3); len(active) != 1 {
		t.Fatal("expected one firing")
	}

	// Still inside the display window: retained without refiring.
	clock.Advance(5 * time.Second)
	active := eng.Evaluate(0.4)
	if len(active) != 1 || active[0].JustFired {
		t.Errorf("active inside window = %+v, want retained non-fresh entry", active)
	}

	// Past the display window: dropped from the set entirely.
	clock.Advance(activeWindow + time.Second)
	if active := eng.Evaluate(0.4); len(active) != 0 {
		t.Errorf("active past window = %d entries, want 0", len(active))
	}
}

func TestEngineContentUpgradeReplacesFallback(t *testing.T) {
	clock := newFakeClock()
	done := make(chan struct{})

	eng := NewEngine(openConfig(TacticSocialPressure), Options{
		Rand:  fixedRand{v: 0.0},
		Clock: clock.Now,
		Content: func(ctx context.Context, tac TacticType, progress float64, elapsed time.Duration) (string, error) {
			return "A rival solved this in 12 seconds.", nil
		},
		OnUpdate: func() { close(done) },
	})

	active := eng.Evaluate(0.5)
	if len(active) != 1 {
		t.Fatal("expected one firing")
	}
	fallback := active[0].Message

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("content upgrade never landed")
	}

	clock.Advance(time.Second)
	upgraded := eng.Evaluate(0.5)
	if len(upgraded) != 1 {
		t.Fatal("active set lost the tactic")
	}
	if upgraded[0].Message == fallback {
		t.Error("message was not upgraded from the static fallback")
	}
	if upgraded[0].Message != "A rival solved this in 12 seconds." {
		t.Errorf("message = %q", upgraded[0].Message)
	}
}

func TestEngineContentErrorKeepsFallback(t *testing.T) {
	clock := newFakeClock()
	called := make(chan struct{})

	eng := NewEngine(openConfig(TacticRedHerring), Options{
		Rand:  fixedRand{v: 0.0},
		Clock: clock.Now,
		Content: func(ctx context.Context, tac TacticType, progress float64, elapsed time.Duration) (string, error) {
			close(called)
			return "", errors.New("model unavailable")
		},
	})

	active := eng.Evaluate(0.5)
	if len(active) != 1 || active[0].Message == "" {
		t.Fatal("expected firing with a fallback message")
	}
	fallback := active[0].Message

	<-called
	time.Sleep(50 * time.Millisecond)

	clock.Advance(time.Second)
	after := eng.Evaluate(0.5)
	if len(after) != 1 || after[0].Message != fallback {
		t.Errorf("fallback message was disturbed after content error: %+v", after)
	}
}
