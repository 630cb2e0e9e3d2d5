package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/puzzle"
	"github.com/byronwade/rebuzzle/internal/router"
	"github.com/byronwade/rebuzzle/internal/screen"
	"github.com/byronwade/rebuzzle/internal/screens/home"
	"github.com/byronwade/rebuzzle/internal/store"
	"github.com/byronwade/rebuzzle/internal/ui/layout"
)

// Options carries the injected services for the TUI. Nil fields are
// allowed; the app runs with builtin puzzles and no persistence.
type Options struct {
	Generator puzzle.Generator
	Content   *content.Service
	EventRepo store.EventRepo
}

// headerStats is implemented by screens that feed the header's status
// cluster.
type headerStats interface {
	SolvedCount() int
	Tier() int
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Generator: opts.Generator,
		Content:   opts.Content,
		EventRepo: opts.EventRepo,
	})
	return AppModel{
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var solved, tier int
	if hs, ok := active.(headerStats); ok {
		solved = hs.SolvedCount()
		tier = hs.Tier()
	}

	header := layout.RenderHeader(title, solved, tier, m.width)

	var footerHints []layout.KeyHint
	if kp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = kp.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
