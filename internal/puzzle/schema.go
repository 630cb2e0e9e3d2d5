package puzzle

import "github.com/byronwade/rebuzzle/internal/llm"

// puzzleSchema defines the JSON schema for generated rebus puzzles.
var puzzleSchema = &llm.Schema{
	Name:        "rebus-puzzle",
	Description: "A rebus puzzle with prompt, answer, and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"prompt": map[string]any{
				"type":        "string",
				"description": "The rebus rendered as plain text and/or emoji, newlines allowed for vertical arrangements",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The target word or phrase, uppercase",
			},
			"category": map[string]any{
				"type": "string",
				"enum": []any{"phrase", "compound_word", "idiom", "pop_culture"},
			},
			"context": map[string]any{
				"type":        "string",
				"description": "One-sentence theme description that does not reveal the answer",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "How the rebus maps to the answer, one or two sentences",
			},
		},
		"required":             []any{"prompt", "answer", "category", "context", "explanation"},
		"additionalProperties": false,
	},
}
