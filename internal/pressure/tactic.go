package pressure

// TacticType identifies one of the six behavioral-pressure mechanisms.
// The string values are the wire identifiers passed to content generation.
type TacticType string

const (
	// TacticPlantDoubt makes the player second-guess their input.
	TacticPlantDoubt TacticType = "plant_doubt"
	// TacticMisleadingHint offers a technically-true hint pointing away
	// from the easy path.
	TacticMisleadingHint TacticType = "misleading_hint"
	// TacticTimePressure implies the clock matters more than it does.
	TacticTimePressure TacticType = "time_pressure"
	// TacticSocialPressure implies other players are doing better.
	TacticSocialPressure TacticType = "social_pressure"
	// TacticShakeConfidence questions the player's instincts.
	TacticShakeConfidence TacticType = "shake_confidence"
	// TacticRedHerring introduces an irrelevant consideration.
	TacticRedHerring TacticType = "red_herring"
)

// AllTactics returns the six tactic types in stable order.
func AllTactics() []TacticType {
	return []TacticType{
		TacticPlantDoubt,
		TacticMisleadingHint,
		TacticTimePressure,
		TacticSocialPressure,
		TacticShakeConfidence,
		TacticRedHerring,
	}
}

// Phase is a tactic's position in its trigger lifecycle.
type Phase int

const (
	// PhaseIdle means the tactic is not currently considered.
	PhaseIdle Phase = iota
	// PhaseEligible means the tactic passed the enable check and awaits
	// its gates and probability draw.
	PhaseEligible
	// PhaseFired means the tactic fired in the current cycle.
	PhaseFired
	// PhaseCooling means the tactic fired recently and its cooldown has
	// not yet elapsed.
	PhaseCooling
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseEligible:
		return "eligible"
	case PhaseFired:
		return "fired"
	case PhaseCooling:
		return "cooling"
	default:
		return "idle"
	}
}

// IntensityLevel is the configured baseline strength of a tactic.
type IntensityLevel string

const (
	IntensitySubtle     IntensityLevel = "subtle"
	IntensityModerate   IntensityLevel = "moderate"
	IntensityAggressive IntensityLevel = "aggressive"
	IntensityMaximum    IntensityLevel = "maximum"
)

// Base maps the level to its numeric starting value in [0,1].
func (l IntensityLevel) Base() float64 {
	switch l {
	case IntensitySubtle:
		return 0.25
	case IntensityModerate:
		return 0.5
	case IntensityAggressive:
		return 0.75
	case IntensityMaximum:
		return 1.0
	default:
		return 0.25
	}
}
