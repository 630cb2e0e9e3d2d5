package play

import (
	"time"

	"github.com/byronwade/rebuzzle/internal/puzzle"
)

// puzzleReadyMsg is sent when the next puzzle has been generated.
type puzzleReadyMsg struct {
	Puzzle *puzzle.Puzzle
	Err    error
}

// tickMsg drives the periodic refresh: pressure re-evaluation, elapsed
// time, and picking up debounced validation results.
type tickMsg time.Time

// feedbackMsg carries the generated post-solve feedback line.
type feedbackMsg struct {
	Text string
}

// attemptSavedMsg confirms attempt persistence completed.
type attemptSavedMsg struct {
	Err error
}
