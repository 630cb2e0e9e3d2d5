package suggest

import "time"

// Strategy selects when qualifying input changes turn into suggestion
// requests.
type Strategy string

const (
	// StrategyImmediate fires on every qualifying change.
	StrategyImmediate Strategy = "immediate"
	// StrategyModerate fires after a fixed debounce delay.
	StrategyModerate Strategy = "moderate"
	// StrategyOnDemand fires only when explicitly requested, e.g. the
	// player opens the suggestions panel.
	StrategyOnDemand Strategy = "on-demand"
)

// Config controls scheduling for one difficulty tier.
type Config struct {
	// Threshold is the minimum input length before any suggestion
	// request is issued.
	Threshold int

	// Strategy selects the timing strategy.
	Strategy Strategy

	// Debounce is the quiet period for StrategyModerate.
	Debounce time.Duration

	// HintDelay is the debounce for companion contextual-hint requests.
	// Deliberately longer than Debounce so hints lag suggestions.
	HintDelay time.Duration
}

// ConfigForTier returns the scheduling profile for a difficulty tier
// (1-10). Easy tiers suggest eagerly; hard tiers make the player ask.
func ConfigForTier(tier int) Config {
	switch {
	case tier <= 3:
		return Config{
			Threshold: 1,
			Strategy:  StrategyImmediate,
			Debounce:  300 * time.Millisecond,
			HintDelay: 2 * time.Second,
		}
	case tier <= 7:
		return Config{
			Threshold: 2,
			Strategy:  StrategyModerate,
			Debounce:  600 * time.Millisecond,
			HintDelay: 4 * time.Second,
		}
	default:
		return Config{
			Threshold: 3,
			Strategy:  StrategyOnDemand,
			Debounce:  800 * time.Millisecond,
			HintDelay: 6 * time.Second,
		}
	}
}
