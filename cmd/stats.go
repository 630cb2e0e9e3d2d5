package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show puzzle statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}

		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		stats, err := s.EventRepo().Stats(context.Background())
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if stats.TotalAttempts == 0 {
			fmt.Println("No puzzles attempted yet. Run `rebuzzle play` to start.")
			return nil
		}

		rate := float64(stats.Solved) / float64(stats.TotalAttempts) * 100
		avg := time.Duration(stats.AvgDurationMs) * time.Millisecond

		fmt.Printf("Attempts     %d\n", stats.TotalAttempts)
		fmt.Printf("Solved       %d (%.0f%%)\n", stats.Solved, rate)
		fmt.Printf("Avg time     %d:%02d\n", int(avg.Minutes()), int(avg.Seconds())%60)
		fmt.Printf("Hints used   %d\n", stats.HintsUsed)
		return nil
	},
}
