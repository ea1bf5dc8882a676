package heatmap

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/router"
	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/screens/weakspots"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// HeatmapScreen renders the catalog grid colored by response speed.
type HeatmapScreen struct {
	store    *session.Store
	hiragana bool
}

var _ screen.Screen = (*HeatmapScreen)(nil)
var _ screen.KeyHintProvider = (*HeatmapScreen)(nil)

// New creates a new HeatmapScreen showing hiragana first.
func New(store *session.Store) *HeatmapScreen {
	return &HeatmapScreen{store: store, hiragana: true}
}

func (h *HeatmapScreen) Init() tea.Cmd {
	return nil
}

func (h *HeatmapScreen) Title() string {
	return "Heatmap"
}

func (h *HeatmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Weak spots"},
		{Key: "S", Description: "Switch script"},
		{Key: "Esc", Description: "Back"},
	}
}

func (h *HeatmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}

	switch kmsg.String() {
	case "tab":
		store := h.store
		return h, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: weakspots.New(store)}
		}
	case "s":
		h.hiragana = !h.hiragana
	}
	return h, nil
}

func (h *HeatmapScreen) View(width, height int) string {
	rows := stats.Heatmap(h.store.Statistics(), h.hiragana)

	script := "Katakana"
	if h.hiragana {
		script = "Hiragana"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render(fmt.Sprintf("Response Time Heatmap · %s", script)))
	b.WriteString("\n\n")

	var practiced, slow, cells int
	var grid strings.Builder
	for _, row := range rows {
		grid.WriteString(lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(runewidth.FillRight(row.Name, 8)))
		for _, cell := range row.Cells {
			cells++
			if cell.Attempts > 0 {
				practiced++
			}
			if cell.Level == stats.HeatSlow {
				slow++
			}
			grid.WriteString(renderCell(cell))
		}
		grid.WriteString("\n")
	}

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, grid.String()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, legend()))
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("practiced %d/%d · slow %d", practiced, cells, slow)))

	return b.String()
}

// renderCell draws one fixed-width cell: the glyph plus its accuracy,
// colored by heat level.
func renderCell(c stats.HeatCell) string {
	style := theme.HeatEmptyCell
	switch c.Level {
	case stats.HeatFast:
		style = theme.HeatFastCell
	case stats.HeatMedium:
		style = theme.HeatMediumCell
	case stats.HeatSlow:
		style = theme.HeatSlowCell
	}

	label := "  ·"
	if c.Attempts > 0 {
		label = fmt.Sprintf("%3.0f", c.AccuracyPct)
	}
	return style.Render(runewidth.FillRight(c.Char, 3) + label + " ")
}

func legend() string {
	parts := []string{
		theme.HeatFastCell.Render("■ <1.5s"),
		theme.HeatMediumCell.Render("■ <3s"),
		theme.HeatSlowCell.Render("■ slow"),
		theme.HeatEmptyCell.Render("■ unpracticed"),
	}
	return strings.Join(parts, "   ")
}
