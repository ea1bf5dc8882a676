package history

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// HistoryScreen lists answer records, newest first.
type HistoryScreen struct {
	store  *session.Store
	offset int
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(store *session.Store) *HistoryScreen {
	return &HistoryScreen{store: store}
}

func (h *HistoryScreen) Init() tea.Cmd {
	return nil
}

func (h *HistoryScreen) Title() string {
	return "History"
}

func (h *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if h.offset > 0 {
			h.offset--
		}
	case "down", "j":
		h.offset++
	}
	return h, nil
}

func (h *HistoryScreen) View(width, height int) string {
	records := h.store.History()

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Answer History"))
	b.WriteString("\n\n")

	if len(records) == 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No answers recorded yet."))
		return b.String()
	}

	visible := height - 6
	if visible < 1 {
		visible = 1
	}
	if h.offset > len(records)-visible {
		h.offset = len(records) - visible
	}
	if h.offset < 0 {
		h.offset = 0
	}

	var list strings.Builder
	shown := 0
	// Newest first; offset scrolls toward older records.
	for i := len(records) - 1 - h.offset; i >= 0 && shown < visible; i-- {
		r := records[i]

		mark := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !r.IsCorrect {
			mark = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		line := fmt.Sprintf("%s %s  %s %-12s %6.1fs  %s",
			r.Timestamp.Format("15:04:05"),
			mark,
			runewidth.FillRight(r.CharacterKey, 4),
			r.UserAnswer,
			float64(r.ResponseTimeMs)/1000,
			r.CorrectAnswer,
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !r.IsCorrect {
			style = lipgloss.NewStyle().Foreground(theme.TextDim)
		}
		list.WriteString(style.Render(line))
		list.WriteString("\n")
		shown++
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list.String()))

	remaining := len(records) - h.offset - shown
	if remaining > 0 {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("… %d older", remaining)))
	}

	return b.String()
}
