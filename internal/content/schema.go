package content

import "github.com/byronwade/rebuzzle/internal/llm"

// suggestionsSchema defines the JSON schema for answer suggestions.
var suggestionsSchema = &llm.Schema{
	Name:        "answer-suggestions",
	Description: "Character and word completion suggestions for a partial puzzle answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"character_suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
				"description": "Single next-character completions",
			},
			"word_suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"maxItems":    3,
				"description": "Whole-word completions for the word being typed",
			},
		},
		"required":             []any{"character_suggestions", "word_suggestions"},
		"additionalProperties": false,
	},
}

// hintSchema defines the JSON schema for contextual hints.
var hintSchema = &llm.Schema{
	Name:        "contextual-hint",
	Description: "A contextual hint nudging the player toward the answer without revealing it",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"hint": map[string]any{
				"type":        "string",
				"description": "One-sentence hint, no answer words",
			},
			"urgency": map[string]any{
				"type": "string",
				"enum": []any{"low", "medium", "high"},
			},
		},
		"required":             []any{"hint", "urgency"},
		"additionalProperties": false,
	},
}
