package content

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/byronwade/rebuzzle/internal/llm"
)

// SuggestionSet holds character- and word-level completions for the
// player's partial input.
type SuggestionSet struct {
	CharacterSuggestions []string `json:"character_suggestions"`
	WordSuggestions      []string `json:"word_suggestions"`
}

// Urgency grades how strongly a hint should be presented.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Hint is a contextual hint with presentation urgency.
type Hint struct {
	Text    string  `json:"hint"`
	Urgency Urgency `json:"urgency"`
}

// Service generates player-facing content through an LLM provider.
// Every method degrades to deterministic local content on provider
// failure; no method ever surfaces a provider error to the player.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a content generation service. A nil provider is
// allowed; all methods then use their local fallbacks.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// GenerateSuggestions produces completions for the player's partial input.
func (s *Service) GenerateSuggestions(ctx context.Context, input, target string, difficulty int, puzzleContext string) (*SuggestionSet, error) {
	if s.provider == nil {
		return FallbackSuggestions(input, target), nil
	}

	ctx = llm.WithPurpose(ctx, "suggestions")

	req := llm.Request{
		System: suggestionsSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSuggestionsMessage(input, target, difficulty, puzzleContext)},
		},
		Schema:      suggestionsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackSuggestions(input, target), nil
	}

	var set SuggestionSet
	if err := json.Unmarshal(resp.Content, &set); err != nil {
		return FallbackSuggestions(input, target), nil
	}
	if len(set.CharacterSuggestions) == 0 && len(set.WordSuggestions) == 0 {
		return FallbackSuggestions(input, target), nil
	}
	return &set, nil
}

// GenerateContextualHint produces a hint for the current input state.
func (s *Service) GenerateContextualHint(ctx context.Context, input, target string, difficulty int, puzzleContext string, progress float64) (*Hint, error) {
	if s.provider == nil {
		return FallbackHint(target, puzzleContext, progress), nil
	}

	ctx = llm.WithPurpose(ctx, "hint")

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildHintMessage(input, target, difficulty, puzzleContext)},
		},
		Schema:      hintSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return FallbackHint(target, puzzleContext, progress), nil
	}

	var hint Hint
	if err := json.Unmarshal(resp.Content, &hint); err != nil || hint.Text == "" {
		return FallbackHint(target, puzzleContext, progress), nil
	}
	return &hint, nil
}

// GenerateTacticContent produces the message for one fired pressure
// tactic. The tactic name is the engine's wire identifier, e.g.
// "plant_doubt". An error is returned only when the provider is absent or
// failed and no text could be produced; callers are expected to hold
// their own static fallback lists per tactic.
func (s *Service) GenerateTacticContent(ctx context.Context, tactic, puzzleContext, target string, difficulty int, input string, progress float64, timeSpent time.Duration) (string, error) {
	if s.provider == nil {
		return "", fmt.Errorf("no provider configured")
	}

	ctx = llm.WithPurpose(ctx, "tactic")

	req := llm.Request{
		System: tacticSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildTacticMessage(tactic, puzzleContext, target, difficulty, input, progress, timeSpent)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("tactic content: %w", err)
	}

	text := strings.TrimSpace(strings.Trim(string(resp.Content), `"`))
	if text == "" {
		return "", fmt.Errorf("tactic content: empty response")
	}
	return text, nil
}

// GenerateFeedbackMessage produces one-line feedback after a submission.
// It always returns a usable string.
func (s *Service) GenerateFeedbackMessage(ctx context.Context, input, target string, difficulty int, isValid, isComplete bool) string {
	if s.provider == nil {
		return fallbackFeedback(isValid, isComplete)
	}

	ctx = llm.WithPurpose(ctx, "feedback")

	req := llm.Request{
		System: feedbackSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildFeedbackMessage(input, target, difficulty, isValid, isComplete)},
		},
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return fallbackFeedback(isValid, isComplete)
	}

	text := strings.TrimSpace(strings.Trim(string(resp.Content), `"`))
	if text == "" {
		return fallbackFeedback(isValid, isComplete)
	}
	return text
}
