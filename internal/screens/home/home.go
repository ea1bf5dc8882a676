package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kanadrill/internal/router"
	"github.com/ayato/kanadrill/internal/screen"
	drillscreen "github.com/ayato/kanadrill/internal/screens/drill"
	"github.com/ayato/kanadrill/internal/screens/settings"
	"github.com/ayato/kanadrill/internal/screens/statistics"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/components"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	store *session.Store
	menu  components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(store *session.Store) *HomeScreen {
	items := []components.MenuItem{
		{Label: "START DRILL", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: drillscreen.New(store)}
			}
		}},
		{Label: "STATISTICS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statistics.New(store)}
			}
		}},
		{Label: "SETTINGS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: settings.New(store)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		store: store,
		menu:  components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("あ ア  Kana Drill"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("hiragana and katakana practice"))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.renderLifetimeBar()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View()))

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// renderLifetimeBar shows the lifetime numbers under the title.
func (h *HomeScreen) renderLifetimeBar() string {
	st := h.store.Statistics()
	practiced, total := stats.PracticedCount(st)

	parts := []string{
		fmt.Sprintf("answered %d", st.TotalQuestions),
		fmt.Sprintf("accuracy %.0f%%", st.Accuracy),
		fmt.Sprintf("kana %d/%d", practiced, total),
	}

	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2).
		Render(strings.Join(parts, "   "))
}
