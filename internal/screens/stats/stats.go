// Package stats shows aggregate attempt statistics from the event store.
package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byronwade/rebuzzle/internal/screen"
	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/byronwade/rebuzzle/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats *store.AttemptStats
	Err   error
}

// StatsScreen displays lifetime attempt statistics.
type StatsScreen struct {
	repo   store.EventRepo
	stats  *store.AttemptStats
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)

// New creates a stats screen backed by the given repo.
func New(repo store.EventRepo) *StatsScreen {
	return &StatsScreen{repo: repo}
}

func (s *StatsScreen) Init() tea.Cmd {
	repo := s.repo
	return func() tea.Msg {
		if repo == nil {
			return statsLoadedMsg{Stats: &store.AttemptStats{}}
		}
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		st, err := repo.Stats(ctx)
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(statsLoadedMsg); ok {
		if m.Err != nil {
			s.errMsg = m.Err.Error()
		} else {
			s.stats = m.Stats
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n  " + s.errMsg)
	}
	if s.stats == nil {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Loading...")
	}

	st := s.stats
	rate := 0.0
	if st.TotalAttempts > 0 {
		rate = float64(st.Solved) / float64(st.TotalAttempts)
	}
	avg := time.Duration(st.AvgDurationMs) * time.Millisecond

	rows := []string{
		statRow("Attempts", fmt.Sprintf("%d", st.TotalAttempts)),
		statRow("Solved", fmt.Sprintf("%d (%.0f%%)", st.Solved, rate*100)),
		statRow("Avg time", fmt.Sprintf("%d:%02d", int(avg.Minutes()), int(avg.Seconds())%60)),
		statRow("Hints used", fmt.Sprintf("%d", st.HintsUsed)),
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))
	return "\n" + lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(card)
}

func statRow(label, value string) string {
	return theme.Hint.Render(fmt.Sprintf("%-12s", label)) +
		theme.Body.Bold(true).Render(value)
}
