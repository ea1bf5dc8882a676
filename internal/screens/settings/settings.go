package settings

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/ui/layout"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

// Form rows, top to bottom.
const (
	rowPracticeMode = iota
	rowQuestionType
	rowAutoNext
	rowTimeLimit
	rowReset
	rowCount
)

var timeLimitSteps = []int{0, 5, 10, 15, 30, 60}

// SettingsScreen edits drill settings in place. Every change goes straight
// through the session store, so it persists and regenerates the question.
type SettingsScreen struct {
	store        *session.Store
	selected     int
	confirmReset bool
}

var _ screen.Screen = (*SettingsScreen)(nil)
var _ screen.KeyHintProvider = (*SettingsScreen)(nil)

// New creates a new SettingsScreen.
func New(store *session.Store) *SettingsScreen {
	return &SettingsScreen{store: store}
}

func (s *SettingsScreen) Init() tea.Cmd {
	return nil
}

func (s *SettingsScreen) Title() string {
	return "Settings"
}

func (s *SettingsScreen) KeyHints() []layout.KeyHint {
	if s.confirmReset {
		return []layout.KeyHint{
			{Key: "Y", Description: "Reset"},
			{Key: "N", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Select"},
		{Key: "←→", Description: "Change"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SettingsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	key := kmsg.String()

	if s.confirmReset {
		switch key {
		case "y", "Y":
			s.store.ResetStatistics()
			s.confirmReset = false
		case "n", "N", "esc":
			s.confirmReset = false
		}
		return s, nil
	}

	switch key {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < rowCount-1 {
			s.selected++
		}
	case "left", "h":
		s.change(-1)
	case "right", "l", "enter", "space", " ":
		if s.selected == rowReset {
			s.confirmReset = true
			return s, nil
		}
		s.change(1)
	}
	return s, nil
}

// change cycles the selected setting by delta and pushes the patch into
// the store.
func (s *SettingsScreen) change(delta int) {
	cur := s.store.Settings()

	switch s.selected {
	case rowPracticeMode:
		modes := []drill.Mode{drill.ModeHiragana, drill.ModeKatakana, drill.ModeMixed}
		m := cycle(modes, cur.PracticeMode, delta)
		s.store.UpdateSettings(session.SettingsPatch{PracticeMode: &m})

	case rowQuestionType:
		types := []drill.QuestionType{drill.KanaToRomaji, drill.KanaToPronunciation, drill.RomajiToKana}
		qt := cycle(types, cur.QuestionType, delta)
		s.store.UpdateSettings(session.SettingsPatch{QuestionType: &qt})

	case rowAutoNext:
		next := !cur.AutoNext
		s.store.UpdateSettings(session.SettingsPatch{AutoNext: &next})

	case rowTimeLimit:
		limit := cycle(timeLimitSteps, cur.TimeLimitSeconds, delta)
		s.store.UpdateSettings(session.SettingsPatch{TimeLimitSeconds: &limit})
	}
}

func (s *SettingsScreen) View(width, height int) string {
	if s.confirmReset {
		return renderResetConfirm(width)
	}

	cur := s.store.Settings()

	rows := []struct {
		label string
		value string
	}{
		{"Practice mode", modeLabel(cur.PracticeMode)},
		{"Question type", typeLabel(cur.QuestionType)},
		{"Auto next", onOff(cur.AutoNext)},
		{"Time limit", limitLabel(cur.TimeLimitSeconds)},
		{"Reset statistics", "…"},
	}

	var form strings.Builder
	for i, row := range rows {
		label := fmt.Sprintf("%-18s", row.label)
		line := label + "  ◂ " + fmt.Sprintf("%-22s", row.value) + " ▸"
		if i == rowReset {
			line = label
		}

		if i == s.selected {
			form.WriteString(theme.Selected.Render("  ▸ " + line))
		} else {
			form.WriteString(theme.Unselected.Render("    " + line))
		}
		form.WriteString("\n\n")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Settings"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form.String()))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
		Render("changes apply immediately and replace the current question"))

	return b.String()
}

func renderResetConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Reset all statistics?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Lifetime statistics and history will be cleared. Settings are kept."))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, reset"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep my data"))
	return b.String()
}

// cycle steps through options by delta, wrapping both ways. Unknown current
// values land on the first option.
func cycle[T comparable](options []T, current T, delta int) T {
	idx := 0
	for i, o := range options {
		if o == current {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(options)) % len(options)
	return options[idx]
}

func modeLabel(m drill.Mode) string {
	switch m {
	case drill.ModeKatakana:
		return "Katakana カ"
	case drill.ModeMixed:
		return "Mixed あ/カ"
	default:
		return "Hiragana あ"
	}
}

func typeLabel(qt drill.QuestionType) string {
	switch qt {
	case drill.KanaToPronunciation:
		return "Kana → pronunciation"
	case drill.RomajiToKana:
		return "Romaji → kana"
	default:
		return "Kana → romaji"
	}
}

func onOff(b bool) string {
	if b {
		return "On"
	}
	return "Off"
}

func limitLabel(secs int) string {
	if secs == 0 {
		return "None"
	}
	return fmt.Sprintf("%d seconds", secs)
}
