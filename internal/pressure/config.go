package pressure

import (
	"fmt"
	"time"
)

// TacticConfig is the static per-tactic, per-tier trigger profile.
type TacticConfig struct {
	Enabled            bool
	BaseIntensity      IntensityLevel
	TriggerProbability float64 // Bernoulli success probability, [0,1]
	MinProgress        float64 // inclusive lower progress gate
	MaxProgress        float64 // inclusive upper progress gate
	MinTime            time.Duration
	Cooldown           time.Duration
}

// Validate checks the config invariants.
func (c TacticConfig) Validate() error {
	if c.TriggerProbability < 0 || c.TriggerProbability > 1 {
		return fmt.Errorf("trigger probability %f out of [0,1]", c.TriggerProbability)
	}
	if c.MinProgress > c.MaxProgress {
		return fmt.Errorf("min progress %f above max progress %f", c.MinProgress, c.MaxProgress)
	}
	if c.MinProgress < 0 || c.MaxProgress > 1 {
		return fmt.Errorf("progress gates [%f, %f] out of [0,1]", c.MinProgress, c.MaxProgress)
	}
	return nil
}

// TierConfig is the full pressure profile for one difficulty tier.
type TierConfig struct {
	Tactics map[TacticType]TacticConfig

	// IntensityMultiplier is the tier's global scaling applied after the
	// progress and time factors.
	IntensityMultiplier float64
}

// Validate checks every tactic config in the tier.
func (c TierConfig) Validate() error {
	for t, tc := range c.Tactics {
		if err := tc.Validate(); err != nil {
			return fmt.Errorf("tactic %s: %w", t, err)
		}
	}
	return nil
}

// ConfigForTier returns the pressure profile for a difficulty tier
// (1-10). Tiers 1-2 disable pressure entirely. From tier 3 up, tactics
// switch on progressively, probabilities rise, and cooldowns shrink.
func ConfigForTier(tier int) TierConfig {
	if tier < 1 {
		tier = 1
	}
	if tier > 10 {
		tier = 10
	}

	if tier <= 2 {
		return TierConfig{Tactics: map[TacticType]TacticConfig{}, IntensityMultiplier: 0}
	}

	// scale grows 0..1 across tiers 3..10.
	scale := float64(tier-3) / 7.0

	level := IntensitySubtle
	switch {
	case tier >= 9:
		level = IntensityMaximum
	case tier >= 7:
		level = IntensityAggressive
	case tier >= 5:
		level = IntensityModerate
	}

	prob := 0.15 + 0.35*scale
	cooldown := time.Duration(90-50*scale) * time.Second
	minTime := time.Duration(45-30*scale) * time.Second

	tactics := map[TacticType]TacticConfig{
		TacticPlantDoubt: {
			Enabled:            true,
			BaseIntensity:      level,
			TriggerProbability: prob,
			MinProgress:        0.1,
			MaxProgress:        0.9,
			MinTime:            minTime,
			Cooldown:           cooldown,
		},
		TacticMisleadingHint: {
			Enabled:            tier >= 5,
			BaseIntensity:      level,
			TriggerProbability: prob * 0.8,
			MinProgress:        0.0,
			MaxProgress:        0.6,
			MinTime:            minTime,
			Cooldown:           cooldown * 2,
		},
		TacticTimePressure: {
			Enabled:            true,
			BaseIntensity:      level,
			TriggerProbability: prob,
			MinProgress:        0.0,
			MaxProgress:        1.0,
			MinTime:            minTime * 2,
			Cooldown:           cooldown,
		},
		TacticSocialPressure: {
			Enabled:            tier >= 4,
			BaseIntensity:      level,
			TriggerProbability: prob * 0.7,
			MinProgress:        0.2,
			MaxProgress:        1.0,
			MinTime:            minTime,
			Cooldown:           cooldown * 2,
		},
		TacticShakeConfidence: {
			Enabled:            tier >= 6,
			BaseIntensity:      level,
			TriggerProbability: prob * 0.6,
			MinProgress:        0.3,
			MaxProgress:        0.9,
			MinTime:            minTime,
			Cooldown:           cooldown * 3,
		},
		TacticRedHerring: {
			Enabled:            tier >= 7,
			BaseIntensity:      level,
			TriggerProbability: prob * 0.5,
			MinProgress:        0.0,
			MaxProgress:        0.7,
			MinTime:            minTime,
			Cooldown:           cooldown * 3,
		},
	}

	return TierConfig{
		Tactics:             tactics,
		IntensityMultiplier: 0.6 + 0.4*scale,
	}
}
