package cmd

import (
	"fmt"

	"github.com/byronwade/rebuzzle/internal/llm"
	"github.com/spf13/cobra"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Show LLM provider configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				fmt.Println("No LLM provider configured.")
				fmt.Println()
				fmt.Println("Set REBUZZLE_LLM_PROVIDER plus the matching API key, or export")
				fmt.Println("ANTHROPIC_API_KEY, OPENAI_API_KEY, or GEMINI_API_KEY.")
				fmt.Println("Puzzles and hints fall back to the builtin set without one.")
				return nil
			}
			cfg = discovered
			fmt.Println("Provider discovered from standard environment keys.")
		}

		fmt.Printf("Provider  %s\n", cfg.Provider)
		switch cfg.Provider {
		case "anthropic":
			fmt.Printf("Model     %s\n", cfg.Anthropic.Model)
		case "openai":
			fmt.Printf("Model     %s\n", cfg.OpenAI.Model)
			if cfg.OpenAI.BaseURL != "" {
				fmt.Printf("Base URL  %s\n", cfg.OpenAI.BaseURL)
			}
		case "gemini":
			fmt.Printf("Model     %s\n", cfg.Gemini.Model)
		}
		return nil
	},
}
