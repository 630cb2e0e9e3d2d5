package content

import (
	"fmt"
	"strings"
	"time"
)

const suggestionsSystemPrompt = `You are the suggestion engine for a rebus puzzle game. The player is typing an answer and you offer completions.

Rules:
- character_suggestions: up to 3 single characters that could plausibly come next in the answer.
- word_suggestions: up to 3 whole words that could complete the word currently being typed.
- Suggestions must be consistent with the target answer but must not spell out the full remaining answer at low difficulty.
- At difficulty 8+, at most one suggestion may be genuinely helpful; the rest should be plausible distractors.`

const hintSystemPrompt = `You are the hint engine for a rebus puzzle game.

Rules:
- Produce exactly one short hint sentence.
- Never use any word from the answer itself.
- Hint at the rebus mechanism (arrangement, direction, combination) before hinting at meaning.
- urgency reflects how stuck the player looks: "low" for early exploration, "medium" for partial progress, "high" when input is far off the answer.`

const tacticSystemPrompt = `You generate short in-game pressure messages for a rebus puzzle game. Each message realizes one named tactic.

Tactics:
- plant_doubt: make the player second-guess their current input without saying it is wrong.
- misleading_hint: offer a hint that is technically true but points away from the easy path.
- time_pressure: imply the clock matters more than it does.
- social_pressure: imply other players are doing better.
- shake_confidence: gently question the player's puzzle-solving instincts.
- red_herring: introduce an irrelevant but plausible-sounding consideration.

Rules:
- One sentence, max 120 characters, second person, no emoji.
- Playful menace, never genuinely mean.
- Never reveal or negate the actual answer.`

const feedbackSystemPrompt = `You write one-line feedback for a rebus puzzle game after the player submits or pauses.

Rules:
- One sentence, encouraging but honest.
- If the answer is complete and valid, celebrate briefly.
- If partially valid, acknowledge the progress.
- Otherwise, nudge the player to rethink the mechanism. Never reveal the answer.`

func buildSuggestionsMessage(input, target string, difficulty int, puzzleContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target answer: %s\n", target)
	fmt.Fprintf(&b, "Current input: %q\n", input)
	fmt.Fprintf(&b, "Difficulty: %d\n", difficulty)
	if puzzleContext != "" {
		fmt.Fprintf(&b, "Puzzle context: %s\n", puzzleContext)
	}
	return b.String()
}

func buildHintMessage(input, target string, difficulty int, puzzleContext string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target answer: %s\n", target)
	fmt.Fprintf(&b, "Current input: %q\n", input)
	fmt.Fprintf(&b, "Difficulty: %d\n", difficulty)
	if puzzleContext != "" {
		fmt.Fprintf(&b, "Puzzle context: %s\n", puzzleContext)
	}
	return b.String()
}

func buildTacticMessage(tactic, puzzleContext, target string, difficulty int, input string, progress float64, timeSpent time.Duration) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tactic: %s\n", tactic)
	fmt.Fprintf(&b, "Target answer: %s\n", target)
	fmt.Fprintf(&b, "Current input: %q\n", input)
	fmt.Fprintf(&b, "Difficulty: %d\n", difficulty)
	fmt.Fprintf(&b, "Progress: %.0f%%\n", progress*100)
	fmt.Fprintf(&b, "Time spent: %ds\n", int(timeSpent.Seconds()))
	if puzzleContext != "" {
		fmt.Fprintf(&b, "Puzzle context: %s\n", puzzleContext)
	}
	return b.String()
}

func buildFeedbackMessage(input, target string, difficulty int, isValid, isComplete bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Target answer: %s\n", target)
	fmt.Fprintf(&b, "Submitted input: %q\n", input)
	fmt.Fprintf(&b, "Difficulty: %d\n", difficulty)
	fmt.Fprintf(&b, "Valid: %t\n", isValid)
	fmt.Fprintf(&b, "Complete: %t\n", isComplete)
	return b.String()
}
