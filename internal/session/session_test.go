package session

import (
	"context"
	"testing"
	"time"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/pressure"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/suggest"
)

func testPuzzle() puzzle.Puzzle {
	return puzzle.Puzzle{
		ID:         "test-1",
		Prompt:     "HELLO under WORLD",
		Answer:     "HELLO WORLD",
		Category:   puzzle.CategoryPhrase,
		Difficulty: 5,
	}
}

// fastConfig keeps the debounce short enough for polling tests.
func fastConfig() Config {
	return Config{ValidationDebounce: 10 * time.Millisecond}
}

// waitValidation polls until the session's validation reflects fn or the
// deadline passes.
func waitValidation(t *testing.T, s *Session, fn func(Validation) bool) Validation {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		v := s.Validation()
		if fn(v) {
			return v
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("validation never reached expected state; last: %+v", s.Validation())
	return Validation{}
}

func TestSessionTypingAndCursor(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	for _, r := range "HELO" {
		s.InsertRune(r)
	}
	if got := s.Text(); got != "HELO" {
		t.Fatalf("Text = %q", got)
	}

	// Fix the typo: move back one and insert the missing L.
	s.CursorLeft()
	s.InsertRune('L')
	if got := s.Text(); got != "HELLO" {
		t.Errorf("Text after mid-string insert = %q", got)
	}
	if got := s.Cursor(); got != 4 {
		t.Errorf("Cursor = %d, want 4", got)
	}

	s.CursorEnd()
	s.Backspace()
	if got := s.Text(); got != "HELL" {
		t.Errorf("Text after backspace = %q", got)
	}
	s.CursorHome()
	s.DeleteForward()
	if got := s.Text(); got != "ELL" {
		t.Errorf("Text after delete forward = %q", got)
	}
}

func TestSessionDebouncedValidation(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	for _, r := range "HELLO" {
		s.InsertRune(r)
	}

	v := waitValidation(t, s, func(v Validation) bool { return len(v.Chars) == 5 })
	if len(v.Words) != 1 || !v.Words[0] {
		t.Errorf("Words = %v, want single matched word", v.Words)
	}
	if v.Progress <= 0 {
		t.Errorf("Progress = %f, want > 0", v.Progress)
	}
	if v.IsCorrect {
		t.Error("half the answer should not be correct")
	}
}

func TestSessionUndoRedo(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	s.InsertText("HELLO")
	s.InsertText(" WORLD")

	if !s.Undo() {
		t.Fatal("Undo returned false")
	}
	if got := s.Text(); got != "HELLO" {
		t.Fatalf("Text after undo = %q", got)
	}
	if got := s.Cursor(); got != 5 {
		t.Errorf("Cursor after undo = %d, want 5", got)
	}

	if !s.Redo() {
		t.Fatal("Redo returned false")
	}
	if got := s.Text(); got != "HELLO WORLD" {
		t.Errorf("Text after redo = %q", got)
	}

	// A fresh edit invalidates the redo branch.
	s.Undo()
	s.InsertRune('!')
	if s.CanRedo() {
		t.Error("CanRedo after new edit, want redo branch dropped")
	}
}

func TestSessionUndoEmptyIsNoop(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	if s.Undo() {
		t.Error("Undo on fresh session returned true")
	}
	if s.Redo() {
		t.Error("Redo on fresh session returned true")
	}
}

func TestSessionPasteIsSingleEdit(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	s.InsertText("HELLO WORLD")
	s.Undo()
	if got := s.Text(); got != "" {
		t.Errorf("paste should undo as one edit, got %q", got)
	}
}

func TestSessionSubmitGating(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	s.InsertText("GOODBYE MOON")
	if _, ok := s.Submit(); ok {
		t.Fatal("wrong answer accepted")
	}
	if s.Solved() {
		t.Fatal("session marked solved after rejected submit")
	}

	s.DeleteAll()
	s.InsertText("hello  world")
	v, ok := s.Submit()
	if !ok {
		t.Fatalf("normalized-equal answer rejected: %+v", v)
	}
	if !s.Solved() {
		t.Error("session not marked solved")
	}
}

func TestSessionSubmitAcceptsNearMiss(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	// A single trailing insertion stays above the 85% similarity bar.
	s.InsertText("HELLO WORLDS")
	if _, ok := s.Submit(); !ok {
		t.Error("single-character near miss rejected")
	}
}

// stubRequester satisfies suggest.Requester without a provider.
type stubRequester struct{}

func (stubRequester) GenerateSuggestions(ctx context.Context, input, target string, difficulty int, puzzleContext string) (*content.SuggestionSet, error) {
	return &content.SuggestionSet{CharacterSuggestions: []string{"X"}}, nil
}

func (stubRequester) GenerateContextualHint(ctx context.Context, input, target string, difficulty int, puzzleContext string, progress float64) (*content.Hint, error) {
	return &content.Hint{Text: "think about it", Urgency: content.UrgencyLow}, nil
}

type alwaysFire struct{}

func (alwaysFire) Float64() float64 { return 0.0 }

func TestSessionEndToEnd(t *testing.T) {
	puz := testPuzzle()

	updates := make(chan struct{}, 64)
	notify := func() {
		select {
		case updates <- struct{}{}:
		default:
		}
	}

	scheduler := suggest.NewScheduler(stubRequester{}, suggest.ConfigForTier(5), puz.Difficulty, puz.Answer, puz.Context, notify)

	cfg := pressure.ConfigForTier(5)
	for tac, tc := range cfg.Tactics {
		tc.MinTime = 0
		tc.MinProgress = 0
		cfg.Tactics[tac] = tc
	}
	engine := pressure.NewEngine(cfg, pressure.Options{Rand: alwaysFire{}})

	s := New(puz, scheduler, engine, fastConfig(), notify)
	defer s.Close()

	var last float64
	for _, stage := range []string{"H", "HE", "HELLO", "HELLO W", "HELLO WORL"} {
		s.DeleteAll()
		s.InsertText(stage)
		v := waitValidation(t, s, func(v Validation) bool {
			return len(v.Chars) == len(stage)
		})
		if v.Progress < last {
			t.Errorf("progress fell from %f to %f at %q", last, v.Progress, stage)
		}
		last = v.Progress
	}

	if tactics := s.ActiveTactics(); len(tactics) == 0 {
		t.Error("no pressure tactics fired with an always-open configuration")
	}

	s.DeleteAll()
	s.InsertText("HELLO WORLD")
	if _, ok := s.Submit(); !ok {
		t.Fatal("exact answer rejected")
	}

	st := s.Stats()
	if !st.Solved {
		t.Error("stats not marked solved")
	}
	if st.Keystrokes == 0 {
		t.Error("stats recorded no keystrokes")
	}
	if st.TacticsFired == 0 {
		t.Error("stats recorded no tactic firings")
	}
}

func TestSessionStatsUndoCounts(t *testing.T) {
	s := New(testPuzzle(), nil, nil, fastConfig(), nil)
	defer s.Close()

	s.InsertText("A")
	s.InsertText("B")
	s.Undo()
	s.Redo()
	s.Undo()

	st := s.Stats()
	if st.UndoCount != 2 || st.RedoCount != 1 {
		t.Errorf("undo/redo counts = %d/%d, want 2/1", st.UndoCount, st.RedoCount)
	}
}
