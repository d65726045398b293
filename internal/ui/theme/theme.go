package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm study-app greens with clear correct/incorrect states
var (
	Primary   = lipgloss.Color("#4CAF50") // Green
	Secondary = lipgloss.Color("#26A69A") // Teal
	Accent    = lipgloss.Color("#FFB300") // Amber
	Success   = lipgloss.Color("#66BB6A") // Light Green
	Error     = lipgloss.Color("#EF5350") // Red
	Text      = lipgloss.Color("#FAFAFA") // White
	TextDim   = lipgloss.Color("#9E9E9E") // Grey
	BgDark    = lipgloss.Color("#102017") // Deep Forest
	BgCard    = lipgloss.Color("#1B2E22") // Dark Moss
	Border    = lipgloss.Color("#33524A") // Pine
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

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)
