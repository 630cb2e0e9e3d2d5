package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestAppendAttemptAndStats(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()
	ctx := context.Background()

	attempts := []AttemptEventData{
		{SessionID: "s1", PuzzleID: "p1", Difficulty: 5, Solved: true, DurationMs: 30000, HintsUsed: 1},
		{SessionID: "s1", PuzzleID: "p2", Difficulty: 5, Solved: false, DurationMs: 90000, HintsUsed: 2},
		{SessionID: "s2", PuzzleID: "p1", Difficulty: 3, Solved: true, DurationMs: 60000},
	}
	for _, a := range attempts {
		require.NoError(t, repo.AppendAttempt(ctx, a))
	}

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalAttempts)
	assert.Equal(t, 2, stats.Solved)
	assert.Equal(t, 3, stats.HintsUsed)
	assert.Equal(t, int64(60000), stats.AvgDurationMs)
}

func TestAppendLLMRequest(t *testing.T) {
	st := openTestStore(t)
	repo := st.EventRepo()

	err := repo.AppendLLMRequest(context.Background(), LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "suggestions",
		InputTokens:  120,
		OutputTokens: 40,
		LatencyMs:    250,
		Success:      true,
	})
	require.NoError(t, err)

	var count int
	row := st.DB().QueryRow(`SELECT COUNT(*) FROM llm_request_events WHERE purpose = 'suggestions'`)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestStatsEmpty(t *testing.T) {
	st := openTestStore(t)

	stats, err := st.EventRepo().Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalAttempts)
	assert.Equal(t, 0, stats.Solved)
}
