// Package session owns the drill loop state: current question, settings,
// history, counters and lifetime statistics. All mutation goes through one
// mutex-guarded store; readers get value snapshots.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/stats"
)

// State is the drill loop's position.
type State int

const (
	StateIdle           State = iota // before the first InitializeSession
	StateAwaitingAnswer              // question shown, not yet judged
	StateShowingResult               // answer judged, result on screen
)

// HistoryPersistLimit caps how many answer records are persisted. The
// in-memory history may grow past this during a session.
const HistoryPersistLimit = 100

// DefaultAutoAdvanceDelay is how long a judged answer stays on screen
// before auto-advancing when AutoNext is enabled.
const DefaultAutoAdvanceDelay = 1500 * time.Millisecond

// AdvanceToken identifies one pending auto-advance. Any question change
// invalidates older tokens, so a stale timer fire is a no-op.
type AdvanceToken uint64

// Counters are the per-session numbers, reset on every InitializeSession
// and never persisted.
type Counters struct {
	StartTime time.Time
	Questions int
	Correct   int
}

// PersistedState is the shape written to and read from storage.
type PersistedState struct {
	Settings   Settings
	Statistics stats.Statistics
	History    []stats.AnswerRecord
}

// Persister stores and recalls the persisted state. Implementations must
// tolerate concurrent Save calls; the store fires them without waiting.
type Persister interface {
	Load(ctx context.Context) (*PersistedState, error)
	Save(ctx context.Context, state PersistedState) error
}

// Store orchestrates question generation, evaluation and statistics.
type Store struct {
	mu sync.Mutex

	gen       *drill.Generator
	persister Persister // nil = in-memory only
	now       func() time.Time
	delay     time.Duration

	settings   Settings
	statistics stats.Statistics
	history    []stats.AnswerRecord
	counters   Counters

	state         State
	current       *drill.Question
	questionStart time.Time
	showAnswer    bool
	advanceGen    AdvanceToken

	saveMu    sync.Mutex
	saveSeq   uint64
	lastSaved uint64
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source. Tests use it for fixed response times.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithDefaults overrides the settings used when nothing is persisted yet.
func WithDefaults(settings Settings) Option {
	return func(s *Store) { s.settings = settings }
}

// WithAutoAdvanceDelay overrides the auto-advance delay.
func WithAutoAdvanceDelay(d time.Duration) Option {
	return func(s *Store) { s.delay = d }
}

// New builds a Store, loading settings, statistics and capped history from
// the persister when one is given. A load failure starts fresh rather than
// corrupting anything: the core has no fatal paths.
func New(gen *drill.Generator, persister Persister, opts ...Option) *Store {
	s := &Store{
		gen:        gen,
		persister:  persister,
		now:        time.Now,
		delay:      DefaultAutoAdvanceDelay,
		settings:   DefaultSettings(),
		statistics: stats.New(),
		state:      StateIdle,
	}
	for _, opt := range opts {
		opt(s)
	}

	if persister != nil {
		if loaded, err := persister.Load(context.Background()); err == nil && loaded != nil {
			s.settings = loaded.Settings
			if loaded.Statistics.CharacterStats != nil {
				s.statistics = loaded.Statistics
			}
			if len(loaded.History) > HistoryPersistLimit {
				loaded.History = loaded.History[len(loaded.History)-HistoryPersistLimit:]
			}
			s.history = loaded.History
		}
	}

	return s
}

// InitializeSession resets the session counters and serves a fresh
// question. Callable any number of times; persisted state is untouched.
func (s *Store) InitializeSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counters = Counters{StartTime: s.now()}
	s.nextQuestionLocked()
}

// GenerateNewQuestion replaces the current question and returns to
// AwaitingAnswer. Invalid in Idle (before the first init), where it is
// absorbed as a no-op.
func (s *Store) GenerateNewQuestion() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateIdle {
		return
	}
	s.nextQuestionLocked()
}

// UpdateSettings merges a partial update, persists, and regenerates the
// question under the new settings. The abandoned in-flight question
// contributes nothing to statistics.
func (s *Store) UpdateSettings(patch SettingsPatch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings = s.settings.merge(patch)
	if s.state != StateIdle {
		s.nextQuestionLocked()
	}
	s.persistLocked()
}

// SubmitAnswer judges the submitted text against the current question.
// Blank input, a missing question, or a result already showing are all
// silently absorbed: ok is false and no state changes. On success it
// returns the created record and, when AutoNext is on, a token for
// scheduling AutoAdvance.
func (s *Store) SubmitAnswer(text string) (rec stats.AnswerRecord, token AdvanceToken, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAwaitingAnswer || s.current == nil {
		return stats.AnswerRecord{}, 0, false
	}
	if isBlank(text) {
		return stats.AnswerRecord{}, 0, false
	}

	now := s.now()
	responseMs := now.Sub(s.questionStart).Milliseconds()
	if responseMs < 0 {
		responseMs = 0
	}

	q := *s.current
	verdict := drill.Evaluate(q, text)

	rec = stats.AnswerRecord{
		QuestionID:     q.ID,
		UserAnswer:     text,
		CorrectAnswer:  verdict.Expected,
		IsCorrect:      verdict.Correct,
		Timestamp:      now,
		Character:      q.Character,
		CharacterKey:   q.StatKey(verdict.Matched),
		ResponseTimeMs: responseMs,
	}

	s.statistics = stats.Fold(s.statistics, rec)
	s.history = append(s.history, rec)
	s.counters.Questions++
	if rec.IsCorrect {
		s.counters.Correct++
	}
	s.showAnswer = true
	s.state = StateShowingResult
	s.persistLocked()

	if s.settings.AutoNext {
		token = s.advanceGen
	}
	return rec, token, true
}

// AutoAdvance serves the next question if the token is still current.
// A token issued before any later question change is stale and ignored.
func (s *Store) AutoAdvance(token AdvanceToken) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateShowingResult || token != s.advanceGen {
		return false
	}
	s.nextQuestionLocked()
	return true
}

// ResetStatistics zeroes lifetime statistics, history and session counters.
// The current question and state are untouched. Idempotent.
func (s *Store) ResetStatistics() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.statistics = stats.Reset()
	s.history = nil
	s.counters = Counters{StartTime: s.now()}
	s.persistLocked()
}

// Statistics returns a deep-copied snapshot for readers.
func (s *Store) Statistics() stats.Statistics {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistics.Clone()
}

// History returns a copy of the in-memory answer history, oldest first.
func (s *Store) History() []stats.AnswerRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]stats.AnswerRecord, len(s.history))
	copy(out, s.history)
	return out
}

// Settings returns the current settings.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Counters returns the session counters.
func (s *Store) Counters() Counters {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counters
}

// CurrentQuestion returns the active question, if any.
func (s *Store) CurrentQuestion() (drill.Question, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return drill.Question{}, false
	}
	return *s.current, true
}

// ShowAnswer reports whether the result overlay should be visible.
func (s *Store) ShowAnswer() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.showAnswer
}

// State returns the drill loop state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// AutoAdvanceDelay returns the configured delay for scheduling AutoAdvance.
func (s *Store) AutoAdvanceDelay() time.Duration {
	return s.delay
}

// nextQuestionLocked generates a question, clears the result overlay, and
// invalidates any pending auto-advance. Callers hold s.mu.
func (s *Store) nextQuestionLocked() {
	q := s.gen.Generate(s.settings.PracticeMode, s.settings.QuestionType)
	s.current = &q
	s.questionStart = s.now()
	s.showAnswer = false
	s.state = StateAwaitingAnswer
	s.advanceGen++
}

// persistLocked snapshots the persistable state and writes it without
// blocking the caller. Storage failures never touch in-memory state.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}

	history := s.history
	if len(history) > HistoryPersistLimit {
		history = history[len(history)-HistoryPersistLimit:]
	}
	snap := PersistedState{
		Settings:   s.settings,
		Statistics: s.statistics.Clone(),
		History:    append([]stats.AnswerRecord(nil), history...),
	}

	s.saveSeq++
	seq := s.saveSeq

	go func() {
		// Fire and forget; the storage collaborator owns its failures.
		// The sequence check keeps a slow older write from clobbering a
		// newer snapshot.
		s.saveMu.Lock()
		defer s.saveMu.Unlock()
		if seq <= s.lastSaved {
			return
		}
		s.lastSaved = seq
		_ = s.persister.Save(context.Background(), snap)
	}()
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
