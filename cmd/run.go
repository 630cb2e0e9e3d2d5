package cmd

import (
	"fmt"
	"os"

	"github.com/byronwade/rebuzzle/internal/app"
	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/llm"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Playing with builtin puzzles and local hints.")
	} else {
		opts.Generator = puzzle.New(provider, puzzle.DefaultConfig())
		opts.Content = content.NewService(provider, content.DefaultConfig())
	}

	return app.Run(opts)
}
