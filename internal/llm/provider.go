package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for LLM interaction. All puzzle content
// generation (suggestions, hints, pressure-tactic copy, feedback) goes
// through this interface.
type Provider interface {
	// Generate sends a prompt to the LLM and returns a structured response.
	// When the request carries a Schema, the provider uses its native
	// structured-output mechanism and the response Content is the
	// validated JSON.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to send to the LLM.
type Request struct {
	// System is the system prompt. Sets the LLM's role and constraints.
	System string

	// Messages is the conversation history. Content generation in Rebuzzle
	// is single-turn, so this normally holds one user message.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil,
	// the response Content is raw text as json.RawMessage.
	Schema *Schema

	// MaxTokens is the maximum number of tokens in the response.
	MaxTokens int

	// Temperature controls randomness. Range: 0.0 - 1.0.
	Temperature float64
}

// Message represents a single message in the conversation.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema defines the JSON structure expected from the LLM.
type Schema struct {
	// Name identifies this schema (tool name for Anthropic, schema name
	// for OpenAI). Kebab-case, e.g. "answer-suggestions".
	Name string

	// Description is sent to the LLM to guide generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the LLM's output.
type Response struct {
	// Content is the generated output. Validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
