package statistics

import (
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/ayato/kanadrill/internal/router"
	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/screens/heatmap"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// ResponseListLimit caps the fastest/slowest response-time lists.
const ResponseListLimit = 5

// StatisticsScreen shows the lifetime statistics panel and the
// per-character detail table.
type StatisticsScreen struct {
	store      *session.Store
	showDetail bool
	filter     stats.DetailFilter
	order      stats.DetailSort
	offset     int
}

var _ screen.Screen = (*StatisticsScreen)(nil)
var _ screen.KeyHintProvider = (*StatisticsScreen)(nil)

// New creates a new StatisticsScreen.
func New(store *session.Store) *StatisticsScreen {
	return &StatisticsScreen{
		store:  store,
		filter: stats.FilterAll,
		order:  stats.SortByAccuracy,
	}
}

func (s *StatisticsScreen) Init() tea.Cmd {
	return nil
}

func (s *StatisticsScreen) Title() string {
	return "Statistics"
}

func (s *StatisticsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "Tab", Description: "Heatmap"},
		{Key: "D", Description: "Detail"},
	}
	if s.showDetail {
		hints = append(hints,
			layout.KeyHint{Key: "F", Description: "Filter"},
			layout.KeyHint{Key: "S", Description: "Sort"},
			layout.KeyHint{Key: "↑↓", Description: "Scroll"},
		)
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *StatisticsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "tab":
		store := s.store
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: heatmap.New(store)}
		}
	case "d":
		s.showDetail = !s.showDetail
		s.offset = 0
	case "f":
		if s.showDetail {
			s.filter = (s.filter + 1) % 3
			s.offset = 0
		}
	case "s":
		if s.showDetail {
			s.order = (s.order + 1) % 3
			s.offset = 0
		}
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	}
	return s, nil
}

func (s *StatisticsScreen) View(width, height int) string {
	if s.showDetail {
		return s.renderDetail(width, height)
	}
	return s.renderPanel(width)
}

// renderPanel shows the lifetime totals.
func (s *StatisticsScreen) renderPanel(width int) string {
	st := s.store.Statistics()
	practiced, total := stats.PracticedCount(st)

	label := lipgloss.NewStyle().Foreground(theme.TextDim).Width(22)
	value := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)

	rows := []string{
		label.Render("Questions answered") + value.Render(fmt.Sprintf("%d", st.TotalQuestions)),
		label.Render("Correct") + value.Render(fmt.Sprintf("%d", st.CorrectAnswers)),
		label.Render("Incorrect") + value.Render(fmt.Sprintf("%d", st.IncorrectAnswers)),
		label.Render("Accuracy") + s.accuracyValue(st.Accuracy, st.TotalQuestions),
		label.Render("Avg response") + value.Render(fmt.Sprintf("%.1fs", st.AverageResponseTimeMs/1000)),
		label.Render("Kana practiced") + value.Render(fmt.Sprintf("%d / %d", practiced, total)),
	}

	card := theme.Card.Render(strings.Join(rows, "\n"))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Lifetime Statistics"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))

	if st.TotalQuestions == 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
			Render("No answers yet. Start a drill to build your statistics."))
		return b.String()
	}

	b.WriteString("\n\n")
	b.WriteString(s.renderResponseTimes(st, width))

	return b.String()
}

// renderResponseTimes shows the fastest and slowest characters side by side.
func (s *StatisticsScreen) renderResponseTimes(st stats.Statistics, width int) string {
	fastest := stats.Fastest(st, ResponseListLimit)
	slowest := stats.Slowest(st, ResponseListLimit)
	if len(fastest) == 0 {
		return ""
	}

	cols := lipgloss.JoinHorizontal(lipgloss.Top,
		responseList("Fastest", fastest, theme.Success),
		"      ",
		responseList("Slowest", slowest, theme.Error),
	)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render("Response Times"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, cols))
	return b.String()
}

func responseList(title string, entries []stats.CharEntry, accent color.Color) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(accent).Bold(true).Render(title))
	b.WriteString("\n")
	for i, e := range entries {
		line := fmt.Sprintf("%d. %s %5.1fs", i+1,
			runewidth.FillRight(e.Char, 4), e.AverageResponseTimeMs/1000)
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		b.WriteString("\n")
	}
	return b.String()
}

// accuracyValue colors the accuracy number by the usual cut lines.
func (s *StatisticsScreen) accuracyValue(accuracy float64, attempts int) string {
	style := lipgloss.NewStyle().Bold(true)
	switch {
	case attempts == 0:
		style = style.Foreground(theme.TextDim)
	case accuracy >= 80:
		style = style.Foreground(theme.Success)
	case accuracy >= 60:
		style = style.Foreground(theme.Warning)
	default:
		style = style.Foreground(theme.Error)
	}
	return style.Render(fmt.Sprintf("%.1f%%", accuracy))
}
