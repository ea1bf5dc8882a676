package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/ayato/kanadrill/internal/ui/theme"
)

// ProgressBar displays a horizontal bar for a 0..1 value.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
	fill        color.Color
}

// NewProgressBar creates a progress bar with the default fill color.
func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{
		Label:       label,
		Percent:     percent,
		ShowPercent: showPercent,
		Width:       width,
		fill:        theme.Secondary,
	}
}

// NewAccuracyBar creates a bar whose fill color follows the accuracy cut
// lines used across the analytics views: red below 50%, yellow below 70%,
// green otherwise.
func NewAccuracyBar(label string, accuracy float64, width int) ProgressBar {
	fill := theme.Success
	switch {
	case accuracy < 0.5:
		fill = theme.Error
	case accuracy < 0.7:
		fill = theme.Warning
	}
	return ProgressBar{
		Label:   label,
		Percent: accuracy,
		Width:   width,
		fill:    fill,
	}
}

// View renders the bar.
func (p ProgressBar) View() string {
	var result string

	if p.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(p.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	percentWidth := 0
	if p.ShowPercent {
		percentWidth = 6 // " 100%"
	}

	barWidth := p.Width - labelWidth - percentWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * p.Percent)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	fill := p.fill
	if fill == nil {
		fill = theme.Secondary
	}

	result += lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	if p.ShowPercent {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("  %d%%", int(p.Percent*100)))
	}

	return result
}
