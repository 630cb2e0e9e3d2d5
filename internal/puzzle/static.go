package puzzle

// builtins is the offline puzzle set, used when no LLM provider is
// configured and as the generator's fallback.
var builtins = []Puzzle{
	{
		ID:          "builtin-001",
		Prompt:      "STAND\n  I",
		Answer:      "I UNDERSTAND",
		Category:    CategoryPhrase,
		Context:     "a word positioned under another word",
		Difficulty:  2,
		Explanation: "The word I is under STAND: I understand.",
	},
	{
		ID:          "builtin-002",
		Prompt:      "🌧️ + 🏹",
		Answer:      "RAINBOW",
		Category:    CategoryCompound,
		Context:     "weather plus archery equipment",
		Difficulty:  1,
		Explanation: "Rain plus bow: rainbow.",
	},
	{
		ID:          "builtin-003",
		Prompt:      "ONCE\n12:00 AM",
		Answer:      "ONCE UPON A TIME",
		Category:    CategoryPhrase,
		Context:     "a storybook opening built from a word above a clock time",
		Difficulty:  4,
		Explanation: "ONCE sits upon a time: once upon a time.",
	},
	{
		ID:          "builtin-004",
		Prompt:      "HEAD\nHEELS",
		Answer:      "HEAD OVER HEELS",
		Category:    CategoryIdiom,
		Context:     "one body part printed above another",
		Difficulty:  3,
		Explanation: "HEAD is over HEELS: head over heels.",
	},
	{
		ID:          "builtin-005",
		Prompt:      "ME QUIT",
		Answer:      "QUIT FOLLOWING ME",
		Category:    CategoryPhrase,
		Context:     "word order reversed to show pursuit",
		Difficulty:  6,
		Explanation: "QUIT follows ME: quit following me.",
	},
	{
		ID:          "builtin-006",
		Prompt:      "ECNALG",
		Answer:      "BACKWARD GLANCE",
		Category:    CategoryPhrase,
		Context:     "a word spelled in reverse",
		Difficulty:  5,
		Explanation: "GLANCE spelled backward: backward glance.",
	},
	{
		ID:          "builtin-007",
		Prompt:      "🐝 + 🍃",
		Answer:      "BELIEF",
		Category:    CategoryCompound,
		Context:     "an insect plus foliage",
		Difficulty:  3,
		Explanation: "Bee plus leaf: belief.",
	},
	{
		ID:          "builtin-008",
		Prompt:      "T_RN",
		Answer:      "NO U TURN",
		Category:    CategoryPhrase,
		Context:     "a road sign with a missing letter",
		Difficulty:  7,
		Explanation: "TURN with no U: no U turn.",
	},
}

// Builtins returns a copy of the offline puzzle set.
func Builtins() []Puzzle {
	out := make([]Puzzle, len(builtins))
	copy(out, builtins)
	return out
}

// BuiltinForTier returns the builtin puzzle closest to the requested
// difficulty tier, skipping answers already used.
func BuiltinForTier(tier int, priorAnswers []string) Puzzle {
	used := make(map[string]bool, len(priorAnswers))
	for _, a := range priorAnswers {
		used[a] = true
	}

	best := builtins[0]
	bestDist := 1 << 30
	for _, p := range builtins {
		if used[p.Answer] {
			continue
		}
		dist := p.Difficulty - tier
		if dist < 0 {
			dist = -dist
		}
		if dist < bestDist {
			best = p
			bestDist = dist
		}
	}
	return best
}
