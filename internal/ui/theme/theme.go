package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — moody puzzle-room tones with a warm accent
var (
	Primary   = lipgloss.Color("#F59E0B") // Amber
	Secondary = lipgloss.Color("#06B6D4") // Cyan
	Accent    = lipgloss.Color("#A78BFA") // Soft Violet
	Success   = lipgloss.Color("#34D399") // Emerald
	Warning   = lipgloss.Color("#FBBF24") // Gold
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#FAFAF9") // Warm White
	TextDim   = lipgloss.Color("#78716C") // Stone
	BgDark    = lipgloss.Color("#111113") // Near Black
	BgCard    = lipgloss.Color("#1C1B22") // Charcoal
	Border    = lipgloss.Color("#3F3F46") // Zinc
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Partial = lipgloss.NewStyle().
		Foreground(Warning)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Unknown = lipgloss.NewStyle().
		Foreground(TextDim)
)

// Pressure messages scale from whisper to shout with tactic intensity.
var (
	PressureSoft = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	PressureLoud = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true).
			Italic(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
			Background(BgCard).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)
)
