package session

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/stats"
)

// fakeClock advances by a fixed step on every read, so response times are
// deterministic.
type fakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func newFakeClock(step time.Duration) *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0), step: step}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type memPersister struct {
	mu    sync.Mutex
	state *PersistedState
	saves int
}

func (m *memPersister) Load(context.Context) (*PersistedState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state, nil
}

func (m *memPersister) Save(_ context.Context, s PersistedState) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := s
	m.state = &copied
	m.saves++
	return nil
}

func (m *memPersister) snapshot() *PersistedState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func testStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	gen := drill.NewGeneratorWithSource(rand.New(rand.NewSource(7)))
	return New(gen, nil, opts...)
}

func submitCorrect(t *testing.T, s *Store) stats.AnswerRecord {
	t.Helper()
	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("no current question")
	}
	rec, _, ok := s.SubmitAnswer(q.AcceptedAnswers[0])
	if !ok {
		t.Fatal("submit rejected")
	}
	return rec
}

func TestInitializeSession(t *testing.T) {
	s := testStore(t)

	if s.State() != StateIdle {
		t.Errorf("state before init = %v, want Idle", s.State())
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("question exists before init")
	}

	s.InitializeSession()

	if s.State() != StateAwaitingAnswer {
		t.Errorf("state = %v, want AwaitingAnswer", s.State())
	}
	if _, ok := s.CurrentQuestion(); !ok {
		t.Error("no question after init")
	}
	c := s.Counters()
	if c.Questions != 0 || c.Correct != 0 {
		t.Errorf("counters = %+v, want zeroed", c)
	}
}

func TestInitializeSession_KeepsLifetimeStatistics(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	submitCorrect(t, s)

	s.InitializeSession()

	if got := s.Statistics().TotalQuestions; got != 1 {
		t.Errorf("TotalQuestions after re-init = %d, want 1", got)
	}
	if got := s.Counters().Questions; got != 0 {
		t.Errorf("session Questions after re-init = %d, want 0", got)
	}
}

func TestSubmitAnswer_CorrectUpdatesEverything(t *testing.T) {
	clock := newFakeClock(800 * time.Millisecond)
	s := testStore(t, WithClock(clock.Now))
	s.InitializeSession()

	rec := submitCorrect(t, s)

	if !rec.IsCorrect {
		t.Error("record not correct")
	}
	if rec.ResponseTimeMs < 0 {
		t.Errorf("ResponseTimeMs = %d, want non-negative", rec.ResponseTimeMs)
	}

	st := s.Statistics()
	if st.TotalQuestions != 1 || st.CorrectAnswers != 1 || st.Accuracy != 100 {
		t.Errorf("statistics = %+v, want 1 correct at 100%%", st)
	}
	cs := st.CharStats(rec.CharacterKey)
	if cs.Attempts != 1 || cs.Correct != 1 || cs.Accuracy != 1 {
		t.Errorf("char stats = %+v, want 1/1", cs)
	}

	if s.State() != StateShowingResult {
		t.Errorf("state = %v, want ShowingResult", s.State())
	}
	if !s.ShowAnswer() {
		t.Error("ShowAnswer false after submit")
	}
	if len(s.History()) != 1 {
		t.Errorf("history len = %d, want 1", len(s.History()))
	}
	c := s.Counters()
	if c.Questions != 1 || c.Correct != 1 {
		t.Errorf("counters = %+v, want 1/1", c)
	}
}

func TestSubmitAnswer_Incorrect(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()

	rec, _, ok := s.SubmitAnswer("definitely-wrong")
	if !ok {
		t.Fatal("submit rejected")
	}
	if rec.IsCorrect {
		t.Error("wrong answer judged correct")
	}

	st := s.Statistics()
	if st.IncorrectAnswers != 1 || st.Accuracy != 0 {
		t.Errorf("statistics = %+v, want 1 incorrect at 0%%", st)
	}
	if cs := st.CharStats(rec.CharacterKey); cs.Accuracy != 0 {
		t.Errorf("char accuracy = %v, want 0", cs.Accuracy)
	}
}

func TestSubmitAnswer_BlankIsNoOp(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()

	for _, input := range []string{"", "   ", "\t\n"} {
		if _, _, ok := s.SubmitAnswer(input); ok {
			t.Errorf("SubmitAnswer(%q) accepted, want no-op", input)
		}
	}
	if s.Statistics().TotalQuestions != 0 {
		t.Error("blank input mutated statistics")
	}
	if s.State() != StateAwaitingAnswer {
		t.Error("blank input changed state")
	}
}

func TestSubmitAnswer_IgnoredWhileShowingResult(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	submitCorrect(t, s)

	if _, _, ok := s.SubmitAnswer("anything"); ok {
		t.Error("submit accepted while showing result")
	}
	if s.Statistics().TotalQuestions != 1 {
		t.Error("double submit mutated statistics")
	}
}

func TestSubmitAnswer_CaseAndWhitespaceInsensitive(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()

	q, _ := s.CurrentQuestion()
	rec, _, ok := s.SubmitAnswer("  " + upperFirst(q.AcceptedAnswers[0]) + "  ")
	if !ok {
		t.Fatal("submit rejected")
	}
	if !rec.IsCorrect {
		t.Errorf("submission %q not matched against %q", rec.UserAnswer, q.AcceptedAnswers[0])
	}
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}

func TestGenerateNewQuestion_ClearsResult(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	before, _ := s.CurrentQuestion()
	submitCorrect(t, s)

	s.GenerateNewQuestion()

	after, _ := s.CurrentQuestion()
	if after.ID == before.ID {
		t.Error("question not replaced")
	}
	if s.ShowAnswer() {
		t.Error("ShowAnswer still set")
	}
	if s.State() != StateAwaitingAnswer {
		t.Errorf("state = %v, want AwaitingAnswer", s.State())
	}
}

func TestAutoAdvance_StaleTokenIgnored(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()

	_, token, ok := s.SubmitAnswer("zz")
	if !ok {
		t.Fatal("submit rejected")
	}

	// Learner advances manually before the timer fires.
	s.GenerateNewQuestion()
	current, _ := s.CurrentQuestion()

	if s.AutoAdvance(token) {
		t.Error("stale auto-advance fired")
	}
	after, _ := s.CurrentQuestion()
	if after.ID != current.ID {
		t.Error("stale auto-advance replaced the question")
	}
}

func TestAutoAdvance_CurrentTokenAdvances(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	before, _ := s.CurrentQuestion()

	_, token, ok := s.SubmitAnswer("zz")
	if !ok {
		t.Fatal("submit rejected")
	}

	if !s.AutoAdvance(token) {
		t.Fatal("auto-advance refused current token")
	}
	after, _ := s.CurrentQuestion()
	if after.ID == before.ID {
		t.Error("auto-advance did not replace the question")
	}
	if s.State() != StateAwaitingAnswer {
		t.Errorf("state = %v, want AwaitingAnswer", s.State())
	}

	if s.AutoAdvance(token) {
		t.Error("token reusable after firing")
	}
}

func TestUpdateSettings_MergesAndRegenerates(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	before, _ := s.CurrentQuestion()

	mode := drill.ModeKatakana
	s.UpdateSettings(SettingsPatch{PracticeMode: &mode})

	got := s.Settings()
	if got.PracticeMode != drill.ModeKatakana {
		t.Errorf("PracticeMode = %v, want katakana", got.PracticeMode)
	}
	if got.QuestionType != drill.KanaToRomaji {
		t.Errorf("QuestionType = %v, want unchanged default", got.QuestionType)
	}

	after, _ := s.CurrentQuestion()
	if after.ID == before.ID {
		t.Error("settings change did not regenerate the question")
	}
	if s.Statistics().TotalQuestions != 0 {
		t.Error("abandoned question leaked into statistics")
	}
}

func TestResetStatistics_Idempotent(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	submitCorrect(t, s)
	q, _ := s.CurrentQuestion()

	s.ResetStatistics()
	s.ResetStatistics()

	st := s.Statistics()
	if st.TotalQuestions != 0 || len(st.CharacterStats) != 0 {
		t.Errorf("statistics = %+v, want all-zero", st)
	}
	if len(s.History()) != 0 {
		t.Error("history not cleared")
	}
	if c := s.Counters(); c.Questions != 0 {
		t.Error("counters not cleared")
	}

	// Reset leaves the current question and state alone.
	after, ok := s.CurrentQuestion()
	if !ok || after.ID != q.ID {
		t.Error("reset replaced the current question")
	}
	if s.State() != StateShowingResult {
		t.Errorf("state = %v, want ShowingResult preserved", s.State())
	}
}

func TestHistory_PersistCapAt100(t *testing.T) {
	p := &memPersister{}
	gen := drill.NewGeneratorWithSource(rand.New(rand.NewSource(7)))
	s := New(gen, p)
	s.InitializeSession()

	var lastID string
	for i := 0; i < 150; i++ {
		rec := submitCorrect(t, s)
		lastID = rec.QuestionID
		s.GenerateNewQuestion()
	}

	if got := len(s.History()); got != 150 {
		t.Errorf("in-memory history len = %d, want 150", got)
	}

	// Saves are async; ResetStatistics is not involved, just wait for the
	// last write to land.
	deadline := time.Now().Add(2 * time.Second)
	var persisted *PersistedState
	for time.Now().Before(deadline) {
		persisted = p.snapshot()
		if persisted != nil && len(persisted.History) == HistoryPersistLimit &&
			persisted.History[len(persisted.History)-1].QuestionID == lastID {
			break
		}
		time.Sleep(5 * time.Millisecond)
	}

	if persisted == nil {
		t.Fatal("nothing persisted")
	}
	if len(persisted.History) != HistoryPersistLimit {
		t.Fatalf("persisted history len = %d, want %d", len(persisted.History), HistoryPersistLimit)
	}
	if persisted.History[len(persisted.History)-1].QuestionID != lastID {
		t.Error("persisted history does not end with the most recent record")
	}
	// Most recent 100 in original order.
	for i := 1; i < len(persisted.History); i++ {
		if persisted.History[i].Timestamp.Before(persisted.History[i-1].Timestamp) {
			t.Fatal("persisted history out of order")
		}
	}
	if persisted.Statistics.TotalQuestions != 150 {
		t.Errorf("persisted TotalQuestions = %d, want 150", persisted.Statistics.TotalQuestions)
	}
}

func TestNew_LoadsPersistedState(t *testing.T) {
	seed := stats.Fold(stats.New(), stats.AnswerRecord{
		QuestionID: "old", IsCorrect: true, CharacterKey: "あ", ResponseTimeMs: 500,
	})
	p := &memPersister{state: &PersistedState{
		Settings:   Settings{PracticeMode: drill.ModeMixed, QuestionType: drill.RomajiToKana, AutoNext: false},
		Statistics: seed,
		History:    []stats.AnswerRecord{{QuestionID: "old"}},
	}}

	gen := drill.NewGeneratorWithSource(rand.New(rand.NewSource(7)))
	s := New(gen, p)

	if got := s.Settings().PracticeMode; got != drill.ModeMixed {
		t.Errorf("loaded PracticeMode = %v, want mixed", got)
	}
	if got := s.Statistics().TotalQuestions; got != 1 {
		t.Errorf("loaded TotalQuestions = %d, want 1", got)
	}
	if got := len(s.History()); got != 1 {
		t.Errorf("loaded history len = %d, want 1", got)
	}
}

func TestStatisticsSnapshot_IsACopy(t *testing.T) {
	s := testStore(t)
	s.InitializeSession()
	rec := submitCorrect(t, s)

	snap := s.Statistics()
	snap.CharacterStats[rec.CharacterKey] = stats.CharacterStats{Attempts: 99}

	if got := s.Statistics().CharStats(rec.CharacterKey).Attempts; got != 1 {
		t.Errorf("external mutation leaked into store: attempts = %d, want 1", got)
	}
}
