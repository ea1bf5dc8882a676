package components

import (
	"image/color"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kanadrill/internal/ui/theme"
)

func menuItems(labels ...string) []MenuItem {
	items := make([]MenuItem, len(labels))
	for i, l := range labels {
		items[i] = MenuItem{Label: l}
	}
	return items
}

func TestMenuWrapsAtBothEnds(t *testing.T) {
	m := NewMenu(menuItems("a", "b", "c"))

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 2 {
		t.Errorf("up from first selects %d, want 2 (wrap to last)", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 0 {
		t.Errorf("down from last selects %d, want 0 (wrap to first)", m.Selected)
	}
}

func TestMenuSkipsDisabledItems(t *testing.T) {
	items := menuItems("a", "b", "c")
	items[1].Disabled = true

	m := NewMenu(items)
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if m.Selected != 2 {
		t.Errorf("down selects %d, want 2 (skip disabled)", m.Selected)
	}
}

func TestNewMenuSelectsFirstEnabled(t *testing.T) {
	items := menuItems("a", "b", "c")
	items[0].Disabled = true

	m := NewMenu(items)
	if m.Selected != 1 {
		t.Errorf("initial selection = %d, want 1", m.Selected)
	}
}

func TestAccuracyBarFillColor(t *testing.T) {
	cases := []struct {
		accuracy float64
		want     color.Color
	}{
		{0.3, theme.Error},
		{0.6, theme.Warning},
		{0.9, theme.Success},
	}
	for _, tc := range cases {
		bar := NewAccuracyBar("", tc.accuracy, 20)
		if bar.fill != tc.want {
			t.Errorf("accuracy %.1f fill = %v, want %v", tc.accuracy, bar.fill, tc.want)
		}
	}
}
