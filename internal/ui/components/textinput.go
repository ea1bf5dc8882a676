package components

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/ayato/kanadrill/internal/ui/theme"
)

// AnswerInput wraps bubbles/textinput for typing romaji or kana answers.
// Input passes through unfiltered so pasted or IME-composed kana works.
type AnswerInput struct {
	Model     textinput.Model
	submitted bool
	valid     bool
}

// NewAnswerInput creates a new styled answer input.
func NewAnswerInput(placeholder string, charLimit int) AnswerInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	if charLimit > 0 {
		ti.CharLimit = charLimit
	}

	return AnswerInput{Model: ti}
}

// Init returns the initial command.
func (t AnswerInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages.
func (t AnswerInput) Update(msg tea.Msg) (AnswerInput, tea.Cmd) {
	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the input, with a verdict mark after submission.
func (t AnswerInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t AnswerInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result.
func (t *AnswerInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
}

// Reset clears the input and the verdict mark for the next question.
func (t *AnswerInput) Reset() {
	t.Model.SetValue("")
	t.submitted = false
	t.valid = false
}
