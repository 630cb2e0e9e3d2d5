package puzzle

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a rebus puzzle designer. A rebus encodes a word or phrase through the arrangement, size, direction, or combination of words, letters, and emoji.

Rules:
- Generate a single rebus puzzle at the requested difficulty (1 = obvious, 10 = devious).
- The prompt must be renderable in a terminal: plain text and common emoji only, newlines for vertical arrangements.
- The answer must be a common English word or phrase, uppercase.
- The answer must be fully derivable from the prompt; no outside trivia unless category is pop_culture.
- The context sentence must describe the mechanism or theme WITHOUT revealing the answer or any of its words.
- Do not reuse any answer from the "already used" list.`

// buildUserMessage constructs the user message for puzzle generation.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Difficulty: %d\n", input.Difficulty)
	if input.Category != "" {
		fmt.Fprintf(&b, "Category: %s\n", input.Category)
	} else {
		b.WriteString("Category: any\n")
	}

	b.WriteString("\nAlready used this session:\n")
	if len(input.PriorAnswers) == 0 {
		b.WriteString("None")
	} else {
		for i, a := range input.PriorAnswers {
			fmt.Fprintf(&b, "%d. %s\n", i+1, a)
		}
	}

	return b.String()
}
