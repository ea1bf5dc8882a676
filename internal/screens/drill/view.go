package drill

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	dr "github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/ui/theme"
)

func (d *DrillScreen) View(width, height int) string {
	q, ok := d.store.CurrentQuestion()
	if !ok {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\n  Preparing question...")
	}

	var b strings.Builder

	b.WriteString(d.renderScoreLine(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	// Prompt card. Kana prompts get the big glyph treatment; romaji prompts
	// stay modest.
	prompt := q.DisplayText
	card := theme.Card.Align(lipgloss.Center).Padding(1, 4)
	if q.Type == dr.RomajiToKana {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card.Render(prompt)))
	} else {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			card.Render(theme.Kana.Render(prompt))))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(promptHint(q)))
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + d.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n\n")

	if d.store.ShowAnswer() && d.lastRec != nil {
		b.WriteString(d.renderFeedback(width))
	} else if limit := d.store.Settings().TimeLimitSeconds; limit > 0 {
		remaining := d.remainingSeconds()
		if remaining < 0 {
			remaining = 0
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("%ds left", remaining)))
	}

	return b.String()
}

// renderScoreLine shows the session counters above the card.
func (d *DrillScreen) renderScoreLine(width int) string {
	c := d.store.Counters()

	accuracy := 0.0
	if c.Questions > 0 {
		accuracy = float64(c.Correct) / float64(c.Questions) * 100
	}

	left := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s", modeLabel(d.store.Settings().PracticeMode)))

	right := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d  %.0f%%",
			c.Questions,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✓"),
			c.Correct,
			accuracy,
		))

	line := left
	pad := width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if pad > 0 {
		line += strings.Repeat(" ", pad) + right
	}
	return line
}

// renderFeedback shows the verdict under the answer line.
func (d *DrillScreen) renderFeedback(width int) string {
	rec := d.lastRec

	var b strings.Builder
	if rec.IsCorrect {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", rec.CorrectAnswer)))
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%.1fs", float64(rec.ResponseTimeMs)/1000)))

	if !d.store.Settings().AutoNext {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Press Enter for the next question"))
	}

	return b.String()
}

// promptHint tells the learner what kind of answer is expected.
func promptHint(q dr.Question) string {
	switch q.Type {
	case dr.RomajiToKana:
		switch q.Mode {
		case dr.ModeHiragana:
			return "type the hiragana"
		case dr.ModeKatakana:
			return "type the katakana"
		default:
			return "type the kana (either script)"
		}
	case dr.KanaToPronunciation:
		return "type the pronunciation"
	default:
		return "type the romaji"
	}
}

func modeLabel(m dr.Mode) string {
	switch m {
	case dr.ModeKatakana:
		return "Katakana"
	case dr.ModeMixed:
		return "Mixed"
	default:
		return "Hiragana"
	}
}
