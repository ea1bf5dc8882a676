package progress

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/router"
	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/screens/history"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// MistakeListLimit is how many recent mistakes appear under the row table.
const MistakeListLimit = 10

// ProgressScreen shows per-row learning progress and recent mistakes.
type ProgressScreen struct {
	store *session.Store
}

var _ screen.Screen = (*ProgressScreen)(nil)
var _ screen.KeyHintProvider = (*ProgressScreen)(nil)

// New creates a new ProgressScreen.
func New(store *session.Store) *ProgressScreen {
	return &ProgressScreen{store: store}
}

func (p *ProgressScreen) Init() tea.Cmd {
	return nil
}

func (p *ProgressScreen) Title() string {
	return "Progress"
}

func (p *ProgressScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "History"},
		{Key: "Esc", Description: "Back"},
	}
}

func (p *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	if kmsg.String() == "tab" {
		store := p.store
		return p, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: history.New(store)}
		}
	}
	return p, nil
}

func (p *ProgressScreen) View(width, height int) string {
	rows := stats.RowProgress(p.store.Statistics())

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Learning Progress"))
	b.WriteString("\n\n")

	var table strings.Builder
	header := fmt.Sprintf("%s %8s %8s %8s",
		runewidth.FillRight("row", 8), "tries", "acc", "avg")
	table.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	table.WriteString("\n")

	shown := 0
	for _, row := range rows {
		// Untouched rows stay hidden until practiced.
		if row.Attempts == 0 {
			continue
		}
		shown++
		line := fmt.Sprintf("%s %8d %7.0f%% %7.1fs",
			runewidth.FillRight(row.Name, 8),
			row.Attempts,
			row.AccuracyPct,
			row.AverageResponseTimeMs/1000,
		)
		table.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		table.WriteString("\n")
	}

	if shown == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No rows practiced yet."))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, table.String()))
	}

	b.WriteString("\n")
	b.WriteString(p.renderMistakes(width))

	return b.String()
}

// renderMistakes lists the most recent incorrect answers.
func (p *ProgressScreen) renderMistakes(width int) string {
	mistakes := stats.RecentMistakes(p.store.History(), MistakeListLimit)
	if len(mistakes) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Recent mistakes"))
	b.WriteString("\n\n")

	var list strings.Builder
	// Newest first.
	for i := len(mistakes) - 1; i >= 0; i-- {
		m := mistakes[i]
		line := fmt.Sprintf("%s answered %q, expected %q",
			runewidth.FillRight(m.CharacterKey, 4),
			m.UserAnswer,
			m.CorrectAnswer,
		)
		list.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		list.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))
	return b.String()
}
