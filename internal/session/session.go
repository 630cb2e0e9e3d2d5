// Package session wires the per-puzzle input state machine together:
// edit history, debounced validation, suggestion scheduling, and the
// pressure engine. One Session lives for one puzzle attempt.
package session

import (
	"sync"
	"time"

	"github.com/byronwade/rebuzzle/internal/answer"
	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/history"
	"github.com/byronwade/rebuzzle/internal/pressure"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/suggest"
	"github.com/byronwade/rebuzzle/internal/timing"
)

// DefaultValidationDebounce is the quiet period after the last keystroke
// before validation runs against the target answer.
const DefaultValidationDebounce = 150 * time.Millisecond

// Config tunes a Session. Zero values take defaults.
type Config struct {
	ValidationDebounce time.Duration
	CorrectThreshold   float64
	Clock              func() time.Time
}

func (c Config) withDefaults() Config {
	if c.ValidationDebounce <= 0 {
		c.ValidationDebounce = DefaultValidationDebounce
	}
	if c.CorrectThreshold <= 0 {
		c.CorrectThreshold = answer.DefaultCorrectThreshold
	}
	if c.Clock == nil {
		c.Clock = time.Now
	}
	return c
}

// Validation is the result of comparing the current input against the
// target answer.
type Validation struct {
	Words     []bool
	Chars     []answer.CharStatus
	Progress  float64
	IsCorrect bool
}

// Stats summarizes one attempt for persistence once the session ends.
type Stats struct {
	Keystrokes   int
	UndoCount    int
	RedoCount    int
	HintRequests int
	TacticsFired int
	Elapsed      time.Duration
	Solved       bool
}

// Session is the live state of one puzzle attempt. All exported methods
// are safe to call from the UI event loop; validation lands asynchronously
// via the configured debounce and is published through onUpdate.
type Session struct {
	puz       puzzle.Puzzle
	cfg       Config
	hist      *history.Manager
	scheduler *suggest.Scheduler
	engine    *pressure.Engine
	debounce  *timing.Debouncer
	onUpdate  func()
	startedAt time.Time

	mu         sync.Mutex
	text       []rune
	cursor     int
	validation Validation
	keystrokes int
	undoCount  int
	redoCount  int
	solved     bool
	closed     bool
}

// New creates a session for one attempt. scheduler and engine may be nil
// when the caller wants raw input handling only (tests, replays).
// onUpdate is invoked whenever asynchronously computed state changes.
func New(puz puzzle.Puzzle, scheduler *suggest.Scheduler, engine *pressure.Engine, cfg Config, onUpdate func()) *Session {
	cfg = cfg.withDefaults()
	if onUpdate == nil {
		onUpdate = func() {}
	}
	s := &Session{
		puz:       puz,
		cfg:       cfg,
		hist:      history.New(),
		scheduler: scheduler,
		engine:    engine,
		debounce:  timing.NewDebouncer(),
		onUpdate:  onUpdate,
		startedAt: cfg.Clock(),
	}
	s.validation = s.validate("")
	return s
}

// InsertRune inserts one typed character at the cursor.
func (s *Session) InsertRune(r rune) {
	s.edit(func() {
		s.text = append(s.text[:s.cursor], append([]rune{r}, s.text[s.cursor:]...)...)
		s.cursor++
	})
}

// InsertText inserts pasted text at the cursor as a single edit.
func (s *Session) InsertText(str string) {
	if str == "" {
		return
	}
	runes := []rune(str)
	s.edit(func() {
		s.text = append(s.text[:s.cursor], append(runes, s.text[s.cursor:]...)...)
		s.cursor += len(runes)
	})
}

// Backspace deletes the character before the cursor.
func (s *Session) Backspace() {
	s.edit(func() {
		if s.cursor == 0 {
			return
		}
		s.text = append(s.text[:s.cursor-1], s.text[s.cursor:]...)
		s.cursor--
	})
}

// DeleteForward deletes the character under the cursor.
func (s *Session) DeleteForward() {
	s.edit(func() {
		if s.cursor >= len(s.text) {
			return
		}
		s.text = append(s.text[:s.cursor], s.text[s.cursor+1:]...)
	})
}

// DeleteAll clears the input as a single undoable edit.
func (s *Session) DeleteAll() {
	s.edit(func() {
		s.text = s.text[:0]
		s.cursor = 0
	})
}

// edit runs fn under the lock with history capture and schedules the
// debounced validation pass. No-op edits (text unchanged) record nothing.
func (s *Session) edit(fn func()) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	before := history.Snapshot{
		Text:   string(s.text),
		Cursor: history.Cursor{Start: s.cursor, End: s.cursor},
	}
	fn()
	changed := string(s.text) != before.Text
	if changed {
		s.hist.Push(before)
		s.keystrokes++
	}
	s.mu.Unlock()

	if changed {
		s.scheduleValidation()
	}
}

// CursorLeft moves the caret one position left.
func (s *Session) CursorLeft() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor > 0 {
		s.cursor--
	}
}

// CursorRight moves the caret one position right.
func (s *Session) CursorRight() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor < len(s.text) {
		s.cursor++
	}
}

// CursorHome moves the caret to the start of the input.
func (s *Session) CursorHome() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = 0
}

// CursorEnd moves the caret past the last character.
func (s *Session) CursorEnd() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = len(s.text)
}

// Undo restores the previous snapshot, resyncing the caret to the
// restored state. Returns false when the undo stack is empty.
func (s *Session) Undo() bool {
	s.mu.Lock()
	snap := s.hist.Undo(string(s.text), history.Cursor{Start: s.cursor, End: s.cursor})
	if snap == nil {
		s.mu.Unlock()
		return false
	}
	s.restoreLocked(*snap)
	s.undoCount++
	s.mu.Unlock()

	s.scheduleValidation()
	return true
}

// Redo reverses the most recent undo. Returns false when the redo stack
// is empty.
func (s *Session) Redo() bool {
	s.mu.Lock()
	snap := s.hist.Redo(string(s.text), history.Cursor{Start: s.cursor, End: s.cursor})
	if snap == nil {
		s.mu.Unlock()
		return false
	}
	s.restoreLocked(*snap)
	s.redoCount++
	s.mu.Unlock()

	s.scheduleValidation()
	return true
}

func (s *Session) restoreLocked(snap history.Snapshot) {
	s.text = []rune(snap.Text)
	s.cursor = snap.Cursor.Start
	if s.cursor > len(s.text) {
		s.cursor = len(s.text)
	}
	if s.cursor < 0 {
		s.cursor = 0
	}
}

// CanUndo reports whether an undo step is available.
func (s *Session) CanUndo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanUndo()
}

// CanRedo reports whether a redo step is available.
func (s *Session) CanRedo() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hist.CanRedo()
}

// scheduleValidation arms the debounce timer. The validation pass runs on
// the timer goroutine and publishes through onUpdate.
func (s *Session) scheduleValidation() {
	s.debounce.Trigger(s.cfg.ValidationDebounce, func() {
		s.runValidation()
		s.onUpdate()
	})
}

// runValidation recomputes validation for the current text and feeds the
// result to the suggestion scheduler and the pressure engine.
func (s *Session) runValidation() Validation {
	s.mu.Lock()
	if s.closed {
		v := s.validation
		s.mu.Unlock()
		return v
	}
	text := string(s.text)
	v := s.validate(text)
	s.validation = v
	scheduler := s.scheduler
	engine := s.engine
	s.mu.Unlock()

	if scheduler != nil {
		scheduler.InputChanged(text, v.Progress)
	}
	if engine != nil {
		engine.Evaluate(v.Progress)
	}
	return v
}

func (s *Session) validate(text string) Validation {
	return Validation{
		Words:     answer.ValidateWords(text, s.puz.Answer),
		Chars:     answer.ValidateCharacters(text, s.puz.Answer),
		Progress:  answer.EstimateProgress(text, s.puz.Answer),
		IsCorrect: answer.IsCorrect(text, s.puz.Answer, s.cfg.CorrectThreshold),
	}
}

// Submit runs an immediate validation pass, bypassing the debounce, and
// reports whether the input counts as correct. A correct submission marks
// the session solved and cancels pending async work.
func (s *Session) Submit() (Validation, bool) {
	s.debounce.Cancel()
	v := s.runValidation()
	if !v.IsCorrect {
		return v, false
	}

	s.mu.Lock()
	s.solved = true
	s.mu.Unlock()

	if s.scheduler != nil {
		s.scheduler.CancelPending()
	}
	return v, true
}

// RequestHelp asks the scheduler for suggestions right now, regardless of
// strategy. This is the on-demand path bound to an explicit key.
func (s *Session) RequestHelp() {
	s.mu.Lock()
	text := string(s.text)
	progress := s.validation.Progress
	scheduler := s.scheduler
	s.mu.Unlock()

	if scheduler != nil {
		scheduler.RequestNow(text, progress)
	}
}

// Text returns the current input text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text)
}

// Cursor returns the caret position in runes.
func (s *Session) Cursor() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cursor
}

// Validation returns the most recently computed validation state. It may
// lag the text by up to the debounce interval.
func (s *Session) Validation() Validation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validation
}

// Solved reports whether a correct submission has been accepted.
func (s *Session) Solved() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solved
}

// Puzzle returns the puzzle this session is attempting.
func (s *Session) Puzzle() puzzle.Puzzle {
	return s.puz
}

// ActiveTactics returns the pressure engine's current active set.
func (s *Session) ActiveTactics() []pressure.ActiveTactic {
	if s.engine == nil {
		return nil
	}
	return s.engine.Evaluate(s.Validation().Progress)
}

// Suggestions returns the latest suggestion set, if any.
func (s *Session) Suggestions() *content.SuggestionSet {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Suggestions()
}

// Hint returns the latest contextual hint, if any.
func (s *Session) Hint() *content.Hint {
	if s.scheduler == nil {
		return nil
	}
	return s.scheduler.Hint()
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.cfg.Clock().Sub(s.startedAt)
}

// Stats snapshots attempt statistics for persistence.
func (s *Session) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := Stats{
		Keystrokes: s.keystrokes,
		UndoCount:  s.undoCount,
		RedoCount:  s.redoCount,
		Elapsed:    s.cfg.Clock().Sub(s.startedAt),
		Solved:     s.solved,
	}
	if s.scheduler != nil {
		st.HintRequests = s.scheduler.RequestCount()
	}
	if s.engine != nil {
		st.TacticsFired = s.engine.FiredCount()
	}
	return st
}

// Close cancels pending timers and shuts down the composed services.
func (s *Session) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()

	s.debounce.Cancel()
	if s.scheduler != nil {
		s.scheduler.Close()
	}
	if s.engine != nil {
		s.engine.Close()
	}
}
