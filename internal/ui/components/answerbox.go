package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/byronwade/rebuzzle/internal/answer"
	"github.com/byronwade/rebuzzle/internal/ui/theme"
)

// AnswerBox renders the player's in-progress answer with per-character
// feedback coloring and a caret. Character statuses may lag the text by
// the validation debounce; unclassified trailing characters render plain.
type AnswerBox struct {
	Text   string
	Cursor int
	Chars  []answer.CharStatus
	Words  []bool
}

var caretStyle = lipgloss.NewStyle().
	Background(theme.Primary).
	Foreground(theme.BgDark)

func charStyle(s answer.CharStatus) lipgloss.Style {
	switch s {
	case answer.CharCorrect:
		return theme.Correct
	case answer.CharPartial:
		return theme.Partial
	case answer.CharIncorrect:
		return theme.Incorrect
	default:
		return theme.Unknown
	}
}

// View renders the answer line.
func (a AnswerBox) View() string {
	runes := []rune(a.Text)

	var b strings.Builder
	for i, r := range runes {
		styled := string(r)
		if i < len(a.Chars) {
			styled = charStyle(a.Chars[i]).Render(string(r))
		} else {
			styled = theme.Body.Render(string(r))
		}
		if i == a.Cursor {
			styled = caretStyle.Render(string(r))
		}
		b.WriteString(styled)
	}
	if a.Cursor >= len(runes) {
		b.WriteString(caretStyle.Render(" "))
	}

	return b.String()
}

// WordMarks renders one check or cross per typed word, aligned under the
// answer line.
func (a AnswerBox) WordMarks() string {
	if len(a.Words) == 0 {
		return ""
	}

	marks := make([]string, len(a.Words))
	for i, ok := range a.Words {
		if ok {
			marks[i] = theme.Correct.Render("✓")
		} else {
			marks[i] = theme.Incorrect.Render("✗")
		}
	}
	return strings.Join(marks, " ")
}
