package pressure

// fallbackPhrases holds the static per-tactic message lists used whenever
// content generation fails, times out, or is not configured. Indexed by
// an RNG draw so repeated firings vary.
var fallbackPhrases = map[TacticType][]string{
	TacticPlantDoubt: {
		"Is that really where this is going?",
		"You seem very committed to that first word.",
		"Interesting choice. Bold, even.",
	},
	TacticMisleadingHint: {
		"Have you considered reading it right to left?",
		"Sometimes the answer is about what's missing.",
		"The font size might matter here. Or might not.",
	},
	TacticTimePressure: {
		"The clock is not on your side.",
		"Most people have moved on by now.",
		"Tick tock.",
	},
	TacticSocialPressure: {
		"Someone solved this one in 40 seconds.",
		"Today's fastest solver didn't need any hints.",
		"Your streak is watching.",
	},
	TacticShakeConfidence: {
		"Rebus puzzles usually aren't your strong suit, are they?",
		"That instinct has misled you before.",
		"Take a breath. Then reconsider everything.",
	},
	TacticRedHerring: {
		"The number of letters might be a prime. Worth checking?",
		"Did you account for the color it would be, if it had one?",
		"The answer rhymes with something. Most words do.",
	},
}

// FallbackMessage returns a static phrase for the tactic, selected by an
// RNG draw in [0,1).
func FallbackMessage(t TacticType, draw float64) string {
	phrases := fallbackPhrases[t]
	if len(phrases) == 0 {
		return "Keep going."
	}
	idx := int(draw * float64(len(phrases)))
	if idx >= len(phrases) {
		idx = len(phrases) - 1
	}
	return phrases[idx]
}
