// Package home is the entry screen: difficulty selection and navigation.
package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/router"
	"github.com/byronwade/rebuzzle/internal/screen"
	"github.com/byronwade/rebuzzle/internal/screens/play"
	"github.com/byronwade/rebuzzle/internal/screens/stats"
	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/byronwade/rebuzzle/internal/ui/components"
	"github.com/byronwade/rebuzzle/internal/ui/layout"
	"github.com/byronwade/rebuzzle/internal/ui/theme"
)

const (
	minTier     = 1
	maxTier     = 10
	defaultTier = 4
)

// Deps bundles the services the home screen hands down to child screens.
// Any field may be nil; children degrade gracefully.
type Deps struct {
	Generator puzzle.Generator
	Content   *content.Service
	EventRepo store.EventRepo
}

// HomeScreen is the main menu.
type HomeScreen struct {
	deps Deps
	menu components.Menu
	tier int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(deps Deps) *HomeScreen {
	h := &HomeScreen{
		deps: deps,
		tier: defaultTier,
	}

	items := []components.MenuItem{
		{Label: "PLAY", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{
					Screen: play.New(play.Deps{
						Generator: deps.Generator,
						Content:   deps.Content,
						EventRepo: deps.EventRepo,
					}, h.tier),
				}
			}
		}},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.EventRepo)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "←→", Description: "Difficulty"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "left", "h":
			if h.tier > minTier {
				h.tier--
			}
			return h, nil
		case "right", "l":
			if h.tier < maxTier {
				h.tier++
			}
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Width(width).Render("R E B U Z Z L E")
	subtitle := theme.Subtitle.Width(width).Render("say what you see")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, h.renderTierPicker(width))

	menu := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	sections = append(sections, menu)

	return "\n" + strings.Join(sections, "\n\n")
}

// renderTierPicker shows the selected difficulty as a filled track.
func (h *HomeScreen) renderTierPicker(width int) string {
	var track strings.Builder
	for i := minTier; i <= maxTier; i++ {
		if i <= h.tier {
			track.WriteString(theme.Selected.Render("■"))
		} else {
			track.WriteString(theme.Unknown.Render("□"))
		}
		if i < maxTier {
			track.WriteString(" ")
		}
	}

	label := theme.Hint.Render(fmt.Sprintf("difficulty %d/%d", h.tier, maxTier))
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(track.String() + "\n" + label)
}

// Tier returns the currently selected difficulty tier.
func (h *HomeScreen) Tier() int {
	return h.tier
}
