package store

import (
	"context"
	"database/sql"
	"fmt"
)

// AttemptEventData captures one completed puzzle attempt.
type AttemptEventData struct {
	SessionID       string
	PuzzleID        string
	Difficulty      int
	Solved          bool
	DurationMs      int64
	HintsUsed       int
	SuggestionsUsed int
	TacticsFired    int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptStats aggregates attempt events for the stats command.
type AttemptStats struct {
	TotalAttempts int
	Solved        int
	AvgDurationMs int64
	HintsUsed     int
}

// EventRepo provides append and aggregate access to domain events.
type EventRepo interface {
	// AppendAttempt records a completed puzzle attempt.
	AppendAttempt(ctx context.Context, data AttemptEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Stats returns aggregate attempt statistics across all sessions.
	Stats(ctx context.Context) (*AttemptStats, error)
}

type eventRepo struct {
	db *sql.DB
}

func (r *eventRepo) AppendAttempt(ctx context.Context, data AttemptEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO attempt_events
			(session_id, puzzle_id, difficulty, solved, duration_ms, hints_used, suggestions_used, tactics_fired)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.SessionID, data.PuzzleID, data.Difficulty, boolInt(data.Solved),
		data.DurationMs, data.HintsUsed, data.SuggestionsUsed, data.TacticsFired,
	)
	if err != nil {
		return fmt.Errorf("append attempt event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(provider, model, purpose, input_tokens, output_tokens, latency_ms, success, error_message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		data.Provider, data.Model, data.Purpose, data.InputTokens,
		data.OutputTokens, data.LatencyMs, boolInt(data.Success), data.ErrorMessage,
	)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) Stats(ctx context.Context) (*AttemptStats, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(solved), 0),
			COALESCE(AVG(duration_ms), 0),
			COALESCE(SUM(hints_used), 0)
		 FROM attempt_events`,
	)

	var stats AttemptStats
	var avg float64
	if err := row.Scan(&stats.TotalAttempts, &stats.Solved, &avg, &stats.HintsUsed); err != nil {
		return nil, fmt.Errorf("query attempt stats: %w", err)
	}
	stats.AvgDurationMs = int64(avg)
	return &stats, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
