package content

// Config holds content generation settings shared by all four request
// kinds. Token budgets are small: every response is a short list or a
// single sentence.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for content generation.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.7,
	}
}
