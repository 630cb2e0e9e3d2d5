package play

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/google/uuid"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/pressure"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/router"
	"github.com/byronwade/rebuzzle/internal/screen"
	sess "github.com/byronwade/rebuzzle/internal/session"
	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/byronwade/rebuzzle/internal/suggest"
	"github.com/byronwade/rebuzzle/internal/ui/layout"
)

// refreshInterval paces the play screen's tick loop. It also bounds how
// stale the rendered validation and pressure state can get.
const refreshInterval = 200 * time.Millisecond

type phase int

const (
	phaseLoading phase = iota
	phaseActive
	phaseSolved
)

// Deps bundles the services the play screen needs. Content and EventRepo
// may be nil; the screen then runs on fallbacks without persistence.
type Deps struct {
	Generator puzzle.Generator
	Content   *content.Service
	EventRepo store.EventRepo
}

// PlayScreen runs one puzzle attempt at a time, replacing the puzzle in
// place when the player advances.
type PlayScreen struct {
	deps Deps
	tier int

	sessionID    string
	phase        phase
	puz          *puzzle.Puzzle
	session      *sess.Session
	tactics      []pressure.ActiveTactic
	spin         spinner.Model
	feedback     string
	notice       string
	solvedCount  int
	priorAnswers []string
	errMsg       string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)
var _ router.Closer = (*PlayScreen)(nil)

// New creates a play screen for the given difficulty tier.
func New(deps Deps, tier int) *PlayScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return &PlayScreen{
		deps:      deps,
		tier:      tier,
		sessionID: uuid.New().String(),
		phase:     phaseLoading,
		spin:      sp,
	}
}

func (p *PlayScreen) Init() tea.Cmd {
	return tea.Batch(p.generatePuzzle(), p.spin.Tick, tickCmd())
}

func (p *PlayScreen) Title() string {
	return "Play"
}

func (p *PlayScreen) KeyHints() []layout.KeyHint {
	switch p.phase {
	case phaseSolved:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next puzzle"},
			{Key: "Esc", Description: "Home"},
		}
	case phaseActive:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Tab", Description: "Hint"},
			{Key: "Ctrl+Z/Y", Description: "Undo/Redo"},
			{Key: "Esc", Description: "Quit"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Home"},
		}
	}
}

// Close stops the session's timers when the screen is popped.
func (p *PlayScreen) Close() {
	if p.session != nil {
		p.session.Close()
	}
}

func (p *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case puzzleReadyMsg:
		return p.handlePuzzleReady(msg)

	case tickMsg:
		return p.handleTick()

	case spinner.TickMsg:
		if p.phase != phaseLoading {
			return p, nil
		}
		var cmd tea.Cmd
		p.spin, cmd = p.spin.Update(msg)
		return p, cmd

	case feedbackMsg:
		p.feedback = msg.Text
		return p, nil

	case attemptSavedMsg:
		// Persistence failures are not surfaced mid-game.
		return p, nil

	case tea.KeyPressMsg:
		return p.handleKey(msg)
	}

	return p, nil
}

// generatePuzzle requests the next puzzle off the event loop.
func (p *PlayScreen) generatePuzzle() tea.Cmd {
	gen := p.deps.Generator
	tier := p.tier
	prior := append([]string(nil), p.priorAnswers...)

	return func() tea.Msg {
		if gen == nil {
			pz := puzzle.BuiltinForTier(tier, prior)
			return puzzleReadyMsg{Puzzle: &pz}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		pz, err := gen.Generate(ctx, puzzle.GenerateInput{
			Difficulty:   tier,
			PriorAnswers: prior,
		})
		return puzzleReadyMsg{Puzzle: pz, Err: err}
	}
}

func (p *PlayScreen) handlePuzzleReady(msg puzzleReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil || msg.Puzzle == nil {
		// The generator falls back to builtins internally; an error here
		// means even that failed.
		if msg.Err != nil {
			p.errMsg = msg.Err.Error()
		}
		return p, nil
	}

	if p.session != nil {
		p.session.Close()
	}

	p.puz = msg.Puzzle
	p.feedback = ""
	p.notice = ""
	p.tactics = nil

	var scheduler *suggest.Scheduler
	if p.deps.Content != nil {
		scheduler = suggest.NewScheduler(
			p.deps.Content,
			suggest.ConfigForTier(p.tier),
			p.tier,
			p.puz.Answer,
			p.puz.Context,
			nil,
		)
	}

	engine := pressure.NewEngine(pressure.ConfigForTier(p.tier), pressure.Options{
		Content: p.tacticContent(),
	})

	p.session = sess.New(*p.puz, scheduler, engine, sess.Config{}, nil)
	p.phase = phaseActive
	return p, nil
}

// tacticContent adapts the content service to the pressure engine's
// callback, closing over the current puzzle. The player's live input is
// deliberately not threaded through; the callback runs off the event
// loop and the prompt works from progress alone.
func (p *PlayScreen) tacticContent() pressure.ContentFunc {
	if p.deps.Content == nil {
		return nil
	}
	svc := p.deps.Content
	puz := p.puz
	tier := p.tier

	return func(ctx context.Context, tactic pressure.TacticType, progress float64, elapsed time.Duration) (string, error) {
		return svc.GenerateTacticContent(ctx, string(tactic), puz.Context, puz.Answer, tier, "", progress, elapsed)
	}
}

func (p *PlayScreen) handleTick() (screen.Screen, tea.Cmd) {
	if p.phase == phaseActive && p.session != nil {
		p.tactics = p.session.ActiveTactics()
	}
	return p, tickCmd()
}

func (p *PlayScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	switch p.phase {
	case phaseLoading:
		return p, nil

	case phaseSolved:
		if msg.String() == "enter" {
			p.phase = phaseLoading
			return p, tea.Batch(p.generatePuzzle(), p.spin.Tick)
		}
		return p, nil
	}

	if p.session == nil {
		return p, nil
	}

	switch msg.String() {
	case "enter":
		return p.handleSubmit()
	case "backspace":
		p.notice = ""
		p.session.Backspace()
	case "delete":
		p.notice = ""
		p.session.DeleteForward()
	case "left":
		p.session.CursorLeft()
	case "right":
		p.session.CursorRight()
	case "home":
		p.session.CursorHome()
	case "end":
		p.session.CursorEnd()
	case "ctrl+z":
		p.session.Undo()
	case "ctrl+y":
		p.session.Redo()
	case "ctrl+u":
		p.notice = ""
		p.session.DeleteAll()
	case "tab":
		p.session.RequestHelp()
	default:
		if msg.Text != "" {
			p.notice = ""
			if len([]rune(msg.Text)) > 1 {
				p.session.InsertText(msg.Text)
			} else {
				for _, r := range msg.Text {
					p.session.InsertRune(r)
				}
			}
		}
	}
	return p, nil
}

func (p *PlayScreen) handleSubmit() (screen.Screen, tea.Cmd) {
	_, ok := p.session.Submit()
	if !ok {
		p.notice = "Not quite. Keep going."
		return p, nil
	}

	p.phase = phaseSolved
	p.solvedCount++
	p.priorAnswers = append(p.priorAnswers, p.puz.Answer)
	p.tactics = nil

	return p, tea.Batch(p.saveAttempt(), p.requestFeedback())
}

// saveAttempt persists the attempt event. No-op without a repo.
func (p *PlayScreen) saveAttempt() tea.Cmd {
	repo := p.deps.EventRepo
	if repo == nil || p.session == nil {
		return nil
	}

	st := p.session.Stats()
	data := store.AttemptEventData{
		SessionID:       p.sessionID,
		PuzzleID:        p.puz.ID,
		Difficulty:      p.tier,
		Solved:          st.Solved,
		DurationMs:      st.Elapsed.Milliseconds(),
		HintsUsed:       st.HintRequests,
		SuggestionsUsed: st.HintRequests,
		TacticsFired:    st.TacticsFired,
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return attemptSavedMsg{Err: repo.AppendAttempt(ctx, data)}
	}
}

// requestFeedback fetches a post-solve feedback line. The content service
// always returns something, even without a provider.
func (p *PlayScreen) requestFeedback() tea.Cmd {
	svc := p.deps.Content
	if svc == nil {
		return func() tea.Msg { return feedbackMsg{Text: "Solved!"} }
	}

	input := p.session.Text()
	target := p.puz.Answer
	tier := p.tier

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return feedbackMsg{Text: svc.GenerateFeedbackMessage(ctx, input, target, tier, true, true)}
	}
}

// SolvedCount reports puzzles solved on this screen, for the header.
func (p *PlayScreen) SolvedCount() int {
	return p.solvedCount
}

// Tier reports the screen's difficulty tier, for the header.
func (p *PlayScreen) Tier() int {
	return p.tier
}

func tickCmd() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
