package statistics

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// renderDetail shows every catalog character with its stats.
func (s *StatisticsScreen) renderDetail(width, height int) string {
	rows := stats.DetailRows(s.store.Statistics(), s.filter, s.order)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Character Detail"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("filter: %s   sort: %s   %d characters",
			filterLabel(s.filter), sortLabel(s.order), len(rows))))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %s %-10s %-8s %8s %8s %10s",
		runewidth.FillRight("kana", 6), "script", "romaji", "tries", "acc", "avg")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Bold(true).Render(header))
	b.WriteString("\n")

	visible := height - 8
	if visible < 1 {
		visible = 1
	}
	if s.offset > len(rows)-visible {
		s.offset = len(rows) - visible
	}
	if s.offset < 0 {
		s.offset = 0
	}

	end := s.offset + visible
	if end > len(rows) {
		end = len(rows)
	}

	for _, r := range rows[s.offset:end] {
		line := fmt.Sprintf("  %s %-10s %-8s %8d %s %10s",
			runewidth.FillRight(r.Char, 6),
			r.Script,
			r.Romaji,
			r.Attempts,
			detailAccuracy(r),
			detailAvg(r),
		)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if r.Attempts == 0 {
			style = style.Foreground(theme.TextDim)
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	if end < len(rows) {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("  … %d more", len(rows)-end)))
	}

	return b.String()
}

// detailAccuracy formats the accuracy column, colored by cut lines and
// padded to 8 columns before styling so rows stay aligned.
func detailAccuracy(r stats.DetailRow) string {
	if r.Attempts == 0 {
		return fmt.Sprintf("%8s", "—")
	}
	pct := 100 * r.Accuracy
	text := fmt.Sprintf("%7.0f%%", pct)
	switch {
	case pct >= 80:
		return lipgloss.NewStyle().Foreground(theme.Success).Render(text)
	case pct >= 60:
		return lipgloss.NewStyle().Foreground(theme.Warning).Render(text)
	default:
		return lipgloss.NewStyle().Foreground(theme.Error).Render(text)
	}
}

func detailAvg(r stats.DetailRow) string {
	if r.Attempts == 0 {
		return "—"
	}
	return fmt.Sprintf("%.1fs", r.AverageResponseTimeMs/1000)
}

func filterLabel(f stats.DetailFilter) string {
	switch f {
	case stats.FilterPracticed:
		return "practiced"
	case stats.FilterUnpracticed:
		return "unpracticed"
	default:
		return "all"
	}
}

func sortLabel(o stats.DetailSort) string {
	switch o {
	case stats.SortByResponseTime:
		return "response time"
	case stats.SortByAttempts:
		return "attempts"
	default:
		return "accuracy"
	}
}
