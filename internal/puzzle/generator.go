package puzzle

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/byronwade/rebuzzle/internal/llm"
)

// Generator produces puzzles for a session.
type Generator interface {
	// Generate returns a puzzle for the given input. Implementations must
	// always return a usable puzzle; on provider failure they fall back
	// to the builtin set.
	Generate(ctx context.Context, input GenerateInput) (*Puzzle, error)
}

// Config controls the LLM puzzle generator.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns recommended generator defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.9,
	}
}

// LLMGenerator generates rebus puzzles through an LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	cfg      Config
}

// New creates an LLM-backed generator. A nil provider yields builtin
// puzzles only.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, cfg: cfg}
}

type puzzleOutput struct {
	Prompt      string `json:"prompt"`
	Answer      string `json:"answer"`
	Category    string `json:"category"`
	Context     string `json:"context"`
	Explanation string `json:"explanation"`
}

// Generate produces a puzzle, falling back to the builtin set when the
// provider is missing, fails, or returns an unusable puzzle.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Puzzle, error) {
	if g.provider == nil {
		p := BuiltinForTier(input.Difficulty, input.PriorAnswers)
		return &p, nil
	}

	ctx = llm.WithPurpose(ctx, "puzzle")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input)},
		},
		Schema:      puzzleSchema,
		MaxTokens:   g.cfg.MaxTokens,
		Temperature: g.cfg.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		p := BuiltinForTier(input.Difficulty, input.PriorAnswers)
		return &p, nil
	}

	var out puzzleOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		p := BuiltinForTier(input.Difficulty, input.PriorAnswers)
		return &p, nil
	}

	answer := strings.ToUpper(strings.TrimSpace(out.Answer))
	if out.Prompt == "" || answer == "" {
		p := BuiltinForTier(input.Difficulty, input.PriorAnswers)
		return &p, nil
	}

	return &Puzzle{
		ID:          fmt.Sprintf("gen-%s", uuid.NewString()),
		Prompt:      out.Prompt,
		Answer:      answer,
		Category:    Category(out.Category),
		Context:     out.Context,
		Difficulty:  input.Difficulty,
		Explanation: out.Explanation,
	}, nil
}
