package pressure

import (
	"context"
	"math"
	"math/rand/v2"
	"sync"
	"time"
)

// Re-evaluation throttle: the engine runs a full cycle at most once per
// evalInterval, unless progress moved by more than progressDelta since
// the last cycle.
const (
	evalInterval  = 2 * time.Second
	progressDelta = 0.05

	// activeWindow is how long a fired tactic stays in the active set
	// before it drops out (unless re-triggered).
	activeWindow = 15 * time.Second
)

// Rand is the injected randomness source for Bernoulli trigger draws and
// fallback phrase selection. *rand.Rand satisfies it; tests stub it.
type Rand interface {
	Float64() float64
}

// ContentFunc produces the player-facing message for a fired tactic.
// Errors are swallowed by the engine; the static fallback stays in place.
type ContentFunc func(ctx context.Context, tactic TacticType, progress float64, elapsed time.Duration) (string, error)

// ActiveTactic is one entry of the engine's current active set.
type ActiveTactic struct {
	Type      TacticType
	Message   string
	Intensity float64
	// JustFired is true only on the evaluation cycle in which the
	// tactic's trigger fired.
	JustFired bool
}

// Options configures an Engine. Zero-value fields get defaults: a
// time-seeded PCG source, time.Now, and no content generation (static
// fallbacks only).
type Options struct {
	Rand    Rand
	Clock   func() time.Time
	Content ContentFunc
	// OnUpdate, when non-nil, is called (on an arbitrary goroutine)
	// after an async tactic message lands.
	OnUpdate func()
}

type tacticState struct {
	lastTriggeredAt *time.Time
	message         string
	gen             uint64
}

// Engine is the per-session pressure trigger state machine. Six tactics
// compete independently for activation; each moves through
// Idle → Eligible → Fired → Cooling → Idle under its own gates,
// probability, and cooldown.
//
// Evaluate is meant to be called from the session's single event loop;
// the internal mutex only guards against the async content callbacks.
type Engine struct {
	cfg       TierConfig
	rng       Rand
	now       func() time.Time
	content   ContentFunc
	onUpdate  func()
	startedAt time.Time

	mu           sync.Mutex
	states       map[TacticType]*tacticState
	lastEval     time.Time
	lastProgress float64
	active       []ActiveTactic
	firedCount   int
	closed       bool
}

// NewEngine creates an engine for one session at the given tier config.
func NewEngine(cfg TierConfig, opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}

	states := make(map[TacticType]*tacticState, len(AllTactics()))
	for _, t := range AllTactics() {
		states[t] = &tacticState{}
	}

	return &Engine{
		cfg:       cfg,
		rng:       rng,
		now:       now,
		content:   opts.Content,
		onUpdate:  opts.OnUpdate,
		startedAt: now(),
		states:    states,
	}
}

// Evaluate runs one (possibly throttled) evaluation cycle and returns the
// full replacement active set for this cycle. Tactics from previous
// cycles drop out once their display window lapses unless re-triggered.
func (e *Engine) Evaluate(progress float64) []ActiveTactic {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.now()

	// Throttle: skip the full cycle when called too soon with no real
	// progress movement. Intensity still tracks continuously.
	if !e.lastEval.IsZero() &&
		now.Sub(e.lastEval) < evalInterval &&
		math.Abs(progress-e.lastProgress) <= progressDelta {
		e.refreshIntensities(progress, now)
		return e.activeCopy()
	}

	e.lastEval = now
	e.lastProgress = progress
	elapsed := now.Sub(e.startedAt)

	var active []ActiveTactic
	for _, t := range AllTactics() {
		cfg, ok := e.cfg.Tactics[t]
		if !ok || !cfg.Enabled {
			continue
		}

		st := e.states[t]

		if e.shouldFire(cfg, st, progress, elapsed, now) {
			fired := now
			st.lastTriggeredAt = &fired
			st.message = FallbackMessage(t, e.rng.Float64())
			st.gen++
			e.firedCount++
			e.dispatchContent(t, st.gen, progress, elapsed)

			active = append(active, ActiveTactic{
				Type:      t,
				Message:   st.message,
				Intensity: AdaptiveIntensity(cfg.BaseIntensity, progress, elapsed, e.cfg.IntensityMultiplier),
				JustFired: true,
			})
			continue
		}

		// Previously fired tactics remain active through their display
		// window, without re-firing.
		if st.lastTriggeredAt != nil && now.Sub(*st.lastTriggeredAt) <= activeWindow {
			active = append(active, ActiveTactic{
				Type:      t,
				Message:   st.message,
				Intensity: AdaptiveIntensity(cfg.BaseIntensity, progress, elapsed, e.cfg.IntensityMultiplier),
			})
		}
	}

	e.active = active
	return e.activeCopy()
}

// shouldFire checks all four trigger conditions. Failing any one keeps
// the tactic out of the fired set without side effects.
func (e *Engine) shouldFire(cfg TacticConfig, st *tacticState, progress float64, elapsed time.Duration, now time.Time) bool {
	if progress < cfg.MinProgress || progress > cfg.MaxProgress {
		return false
	}
	if elapsed < cfg.MinTime {
		return false
	}
	if st.lastTriggeredAt != nil && now.Sub(*st.lastTriggeredAt) < cfg.Cooldown {
		return false
	}
	return e.rng.Float64() < cfg.TriggerProbability
}

// dispatchContent requests generated copy for a fired tactic. The static
// fallback already in place is only replaced if this firing is still the
// latest when the response arrives.
func (e *Engine) dispatchContent(t TacticType, gen uint64, progress float64, elapsed time.Duration) {
	if e.content == nil {
		return
	}

	go func() {
		text, err := e.content(context.Background(), t, progress, elapsed)
		if err != nil || text == "" {
			return
		}

		e.mu.Lock()
		st := e.states[t]
		stale := e.closed || st.gen != gen
		if !stale {
			st.message = text
			for i := range e.active {
				if e.active[i].Type == t {
					e.active[i].Message = text
				}
			}
		}
		cb := e.onUpdate
		e.mu.Unlock()

		if !stale && cb != nil {
			cb()
		}
	}()
}

// refreshIntensities recomputes intensity for the cached active set on
// throttled calls.
func (e *Engine) refreshIntensities(progress float64, now time.Time) {
	elapsed := now.Sub(e.startedAt)
	for i := range e.active {
		cfg := e.cfg.Tactics[e.active[i].Type]
		e.active[i].Intensity = AdaptiveIntensity(cfg.BaseIntensity, progress, elapsed, e.cfg.IntensityMultiplier)
		e.active[i].JustFired = false
	}
}

func (e *Engine) activeCopy() []ActiveTactic {
	out := make([]ActiveTactic, len(e.active))
	copy(out, e.active)
	return out
}

// Phase reports a tactic's current lifecycle phase. Cooldown expiry
// returns the tactic to Eligible, not Idle; Idle is reserved for
// disabled tactics.
func (e *Engine) Phase(t TacticType) Phase {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, ok := e.cfg.Tactics[t]
	if !ok || !cfg.Enabled {
		return PhaseIdle
	}

	st := e.states[t]
	if st.lastTriggeredAt == nil {
		return PhaseEligible
	}

	now := e.now()
	for _, a := range e.active {
		if a.Type == t && a.JustFired {
			return PhaseFired
		}
	}
	if now.Sub(*st.lastTriggeredAt) < cfg.Cooldown {
		return PhaseCooling
	}
	return PhaseEligible
}

// FiredCount returns the total number of tactic firings this session.
func (e *Engine) FiredCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.firedCount
}

// Close stops late async content from mutating state.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
	e.onUpdate = nil
}
