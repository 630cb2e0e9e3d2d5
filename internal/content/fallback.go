package content

import (
	"strings"

	"github.com/byronwade/rebuzzle/internal/answer"
)

// FallbackSuggestions derives deterministic local suggestions from the
// target answer: the single next character, and whole-word completions of
// the word currently being typed. Used whenever the provider fails or
// returns nothing, so the UI never shows an empty suggestion panel.
func FallbackSuggestions(input, target string) *SuggestionSet {
	set := &SuggestionSet{}

	inputRunes := []rune(input)
	targetRunes := []rune(target)
	if len(inputRunes) < len(targetRunes) {
		set.CharacterSuggestions = []string{string(targetRunes[len(inputRunes)])}
	}

	if word := currentWordCompletion(input, target); word != "" {
		set.WordSuggestions = []string{word}
	}

	return set
}

// currentWordCompletion returns the target word at the position the player
// is currently typing, when the typed prefix is close to it.
func currentWordCompletion(input, target string) string {
	inputWords := answer.Words(input)
	targetWords := answer.Words(target)
	if len(inputWords) == 0 || len(inputWords) > len(targetWords) {
		return ""
	}

	idx := len(inputWords) - 1
	typed := inputWords[idx]
	candidate := targetWords[idx]

	if strings.HasPrefix(strings.ToLower(candidate), strings.ToLower(typed)) {
		return candidate
	}
	if answer.Similarity(typed, candidate) >= 50 {
		return candidate
	}
	return ""
}

// FallbackHint produces a deterministic hint from the puzzle context or,
// lacking one, from the answer's shape.
func FallbackHint(target, puzzleContext string, progress float64) *Hint {
	urgency := UrgencyLow
	switch {
	case progress >= 0.5:
		urgency = UrgencyHigh
	case progress >= 0.2:
		urgency = UrgencyMedium
	}

	if puzzleContext != "" {
		return &Hint{Text: "Think about this: " + puzzleContext, Urgency: urgency}
	}

	words := answer.Words(target)
	if len(words) > 1 {
		return &Hint{Text: wordCountHint(len(words)), Urgency: urgency}
	}
	return &Hint{Text: "The answer is a single word. Say the prompt out loud.", Urgency: urgency}
}

func wordCountHint(n int) string {
	counts := map[int]string{2: "two", 3: "three", 4: "four", 5: "five"}
	if w, ok := counts[n]; ok {
		return "The answer is " + w + " words. Read the arrangement, not just the letters."
	}
	return "The answer is a phrase. Read the arrangement, not just the letters."
}

// fallbackFeedback returns deterministic feedback for the four
// valid/complete combinations.
func fallbackFeedback(isValid, isComplete bool) string {
	switch {
	case isValid && isComplete:
		return "Solved! You saw right through it."
	case isValid:
		return "You're on the right track — keep going."
	case isComplete:
		return "Close in length, but the words aren't landing. Rethink the arrangement."
	default:
		return "Not yet. Look at how the pieces are positioned."
	}
}
