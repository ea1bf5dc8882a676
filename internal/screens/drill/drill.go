package drill

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/ayato/kanadrill/internal/screen"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
	"github.com/ayato/kanadrill/internal/ui/components"
	"github.com/ayato/kanadrill/internal/ui/layout"
)

// DrillScreen runs the question/answer loop against the session store.
type DrillScreen struct {
	store   *session.Store
	input   components.AnswerInput
	lastRec *stats.AnswerRecord
	asked   time.Time
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a new DrillScreen. Opening the screen starts a fresh session:
// counters reset, lifetime statistics are untouched.
func New(store *session.Store) *DrillScreen {
	return &DrillScreen{
		store: store,
		input: components.NewAnswerInput("type answer...", 20),
	}
}

func (d *DrillScreen) Init() tea.Cmd {
	d.store.InitializeSession()
	d.asked = time.Now()
	d.input.Reset()

	cmds := []tea.Cmd{d.input.Init()}
	if d.store.Settings().TimeLimitSeconds > 0 {
		cmds = append(cmds, countdownTick())
	}
	return tea.Batch(cmds...)
}

func (d *DrillScreen) Title() string {
	return "Drill"
}

func (d *DrillScreen) KeyHints() []layout.KeyHint {
	if d.store.ShowAnswer() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+S", Description: "Skip"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		if d.store.AutoAdvance(msg.Token) {
			return d, d.nextQuestion()
		}
		return d, nil

	case countdownTickMsg:
		return d.handleCountdown()

	case tea.KeyMsg:
		return d.handleKey(msg)
	}

	if d.store.State() == session.StateAwaitingAnswer {
		var cmd tea.Cmd
		d.input, cmd = d.input.Update(msg)
		return d, cmd
	}
	return d, nil
}

func (d *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if d.store.ShowAnswer() {
		// Only explicit advance keys serve the next question, so stray
		// typing can't fall into the next answer.
		switch key {
		case "enter", "space", " ", "n":
			d.store.GenerateNewQuestion()
			return d, d.nextQuestion()
		}
		return d, nil
	}

	switch key {
	case "enter":
		return d.submit()
	case "ctrl+s":
		// Skip without judging; the abandoned question records nothing.
		d.store.GenerateNewQuestion()
		return d, d.nextQuestion()
	}

	var cmd tea.Cmd
	d.input, cmd = d.input.Update(msg)
	return d, cmd
}

func (d *DrillScreen) submit() (screen.Screen, tea.Cmd) {
	rec, token, ok := d.store.SubmitAnswer(d.input.Value())
	if !ok {
		return d, nil
	}

	d.lastRec = &rec
	d.input.Submit(rec.IsCorrect)

	if d.store.Settings().AutoNext {
		return d, tea.Tick(d.store.AutoAdvanceDelay(), func(time.Time) tea.Msg {
			return advanceMsg{Token: token}
		})
	}
	return d, nil
}

func (d *DrillScreen) handleCountdown() (screen.Screen, tea.Cmd) {
	limit := d.store.Settings().TimeLimitSeconds
	if limit <= 0 {
		return d, nil
	}

	if d.store.State() == session.StateAwaitingAnswer && d.remainingSeconds() <= 0 {
		// Out of time: skip to the next question, nothing is recorded.
		d.store.GenerateNewQuestion()
		return d, tea.Batch(d.nextQuestion(), countdownTick())
	}
	return d, countdownTick()
}

// nextQuestion resets the input for the question the store just served.
func (d *DrillScreen) nextQuestion() tea.Cmd {
	d.asked = time.Now()
	d.input.Reset()
	return d.input.Init()
}

// remainingSeconds returns seconds left on the current question, negative
// once the limit has passed.
func (d *DrillScreen) remainingSeconds() int {
	limit := d.store.Settings().TimeLimitSeconds
	elapsed := int(time.Since(d.asked).Seconds())
	return limit - elapsed
}

func countdownTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}
