package weakspots

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/router"
	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/screens/progress"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/components"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// WeakListLimit matches the weakness analysis list length.
const WeakListLimit = 15

// WeakSpotsScreen lists the lowest-accuracy characters.
type WeakSpotsScreen struct {
	store *session.Store
}

var _ screen.Screen = (*WeakSpotsScreen)(nil)
var _ screen.KeyHintProvider = (*WeakSpotsScreen)(nil)

// New creates a new WeakSpotsScreen.
func New(store *session.Store) *WeakSpotsScreen {
	return &WeakSpotsScreen{store: store}
}

func (w *WeakSpotsScreen) Init() tea.Cmd {
	return nil
}

func (w *WeakSpotsScreen) Title() string {
	return "Weak Spots"
}

func (w *WeakSpotsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Progress"},
		{Key: "Esc", Description: "Back"},
	}
}

func (w *WeakSpotsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return w, nil
	}

	if kmsg.String() == "tab" {
		store := w.store
		return w, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: progress.New(store)}
		}
	}
	return w, nil
}

func (w *WeakSpotsScreen) View(width, height int) string {
	entries := stats.WeakSpots(w.store.Statistics(), WeakListLimit)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Weakness Analysis"))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No practiced characters yet."))
		return b.String()
	}

	barWidth := width/2 - 20
	if barWidth < 12 {
		barWidth = 12
	}

	var list strings.Builder
	for i, e := range entries {
		pct := 100 * e.Accuracy

		rank := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("%2d.", i+1))
		char := accuracyStyle(pct).Render(runewidth.FillRight(e.Char, 4))
		bar := components.NewAccuracyBar("", e.Accuracy, barWidth).View()
		detail := lipgloss.NewStyle().Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %3.0f%%  %d tries  %.1fs", pct, e.Attempts,
				e.AverageResponseTimeMs/1000))

		list.WriteString(rank + " " + char + bar + detail + "\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		"lowest accuracy first · red below 50% · yellow below 70%"))

	return b.String()
}

func accuracyStyle(pct float64) lipgloss.Style {
	switch {
	case pct < 50:
		return lipgloss.NewStyle().Foreground(theme.Error).Bold(true)
	case pct < 70:
		return lipgloss.NewStyle().Foreground(theme.Warning).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(theme.Text)
	}
}
