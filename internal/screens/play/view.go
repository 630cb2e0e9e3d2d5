package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byronwade/rebuzzle/internal/content"
	"github.com/byronwade/rebuzzle/internal/ui/components"
	"github.com/byronwade/rebuzzle/internal/ui/theme"
)

func (p *PlayScreen) View(width, height int) string {
	if p.errMsg != "" {
		return renderError(width, p.errMsg)
	}

	switch p.phase {
	case phaseLoading:
		return p.renderLoading(width)
	case phaseSolved:
		return p.renderSolved(width)
	default:
		return p.renderPuzzle(width)
	}
}

func renderError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("\n\n  " + msg)
}

func (p *PlayScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n  " + p.spin.View() + " Drawing up a rebus...")
}

func (p *PlayScreen) renderPuzzle(width int) string {
	if p.puz == nil || p.session == nil {
		return ""
	}

	v := p.session.Validation()

	var b strings.Builder

	// Status line: puzzle counter, elapsed, progress.
	elapsed := p.session.Elapsed()
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  Puzzle %d", p.solvedCount+1))
	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// The rebus itself, boxed and centered.
	prompt := theme.Card.
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.Text).
		Render(p.puz.Prompt)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(prompt))
	b.WriteString("\n\n")

	// Answer line with per-character feedback.
	box := components.AnswerBox{
		Text:   p.session.Text(),
		Cursor: p.session.Cursor(),
		Chars:  v.Chars,
		Words:  v.Words,
	}
	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + box.View())
	b.WriteString(answerLine)

	if marks := box.WordMarks(); marks != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(marks))
	}
	b.WriteString("\n\n")

	// Progress bar.
	bar := components.NewProgressBar("", v.Progress, true, min(width-8, 48))
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(bar.View()))
	b.WriteString("\n\n")

	if p.notice != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Render(p.notice))
		b.WriteString("\n\n")
	}

	b.WriteString(p.renderAssistance(width))
	b.WriteString(p.renderTactics(width))

	return b.String()
}

// renderAssistance shows the latest suggestions and hint, when present.
func (p *PlayScreen) renderAssistance(width int) string {
	var lines []string

	if set := p.session.Suggestions(); set != nil {
		if len(set.CharacterSuggestions) > 0 {
			lines = append(lines, theme.Hint.Render("next: "+strings.Join(set.CharacterSuggestions, " ")))
		}
		if len(set.WordSuggestions) > 0 {
			lines = append(lines, theme.Hint.Render("try: "+strings.Join(set.WordSuggestions, ", ")))
		}
	}
	if hint := p.session.Hint(); hint != nil && hint.Text != "" {
		style := theme.Hint
		if hint.Urgency == content.UrgencyHigh {
			style = lipgloss.NewStyle().Foreground(theme.Accent).Italic(true)
		}
		lines = append(lines, style.Render("hint: "+hint.Text))
	}

	if len(lines) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n")) + "\n\n"
}

// renderTactics shows active pressure messages, styled by intensity.
func (p *PlayScreen) renderTactics(width int) string {
	if len(p.tactics) == 0 {
		return ""
	}

	var lines []string
	for _, t := range p.tactics {
		style := theme.PressureSoft
		if t.Intensity >= 0.6 {
			style = theme.PressureLoud
		}
		lines = append(lines, style.Render("» "+t.Message))
	}

	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

func (p *PlayScreen) renderSolved(width int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("✔ " + p.puz.Answer))
	b.WriteString("\n\n")

	if p.puz.Explanation != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(p.puz.Explanation))
		b.WriteString("\n\n")
	}

	if p.feedback != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Italic(true).
			Render(p.feedback))
		b.WriteString("\n\n")
	}

	st := p.session.Stats()
	summary := fmt.Sprintf("%d:%02d  ·  %d keystrokes  ·  %d hints",
		int(st.Elapsed.Minutes()), int(st.Elapsed.Seconds())%60,
		st.Keystrokes, st.HintRequests)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(summary))

	return b.String()
}
