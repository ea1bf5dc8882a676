package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — calm ink-and-sakura tones
var (
	Primary   = lipgloss.Color("#E0529C") // Sakura Pink
	Secondary = lipgloss.Color("#6366F1") // Indigo
	Accent    = lipgloss.Color("#F59E0B") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Warning   = lipgloss.Color("#EAB308") // Yellow
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#111827") // Sumi Ink
	BgCard    = lipgloss.Color("#1F2937") // Dark Slate
	Border    = lipgloss.Color("#374151") // Slate
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

	// Kana is the big prompt glyph on the drill screen.
	Kana = lipgloss.NewStyle().
		Bold(true).
		Foreground(Text).
		Align(lipgloss.Center)
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

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	// Heatmap cells by response speed.
	HeatFastCell = lipgloss.NewStyle().
			Foreground(Success)

	HeatMediumCell = lipgloss.NewStyle().
			Foreground(Warning)

	HeatSlowCell = lipgloss.NewStyle().
			Foreground(Error)

	HeatEmptyCell = lipgloss.NewStyle().
			Foreground(TextDim)
)
