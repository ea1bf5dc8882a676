// Package stats folds judged answers into running statistics and derives
// the projections the analytics screens render.
package stats

import (
	"time"

	"github.com/ayato/kanadrill/internal/kana"
)

// CharacterStats is the running record for one character key.
type CharacterStats struct {
	Attempts              int
	Correct               int
	Accuracy              float64 // correct/attempts, 0 when unpracticed
	LastAttempt           time.Time
	AverageResponseTimeMs float64
	FastestResponseTimeMs int64
	SlowestResponseTimeMs int64
	TotalResponseTimeMs   int64
}

// Statistics is the lifetime aggregate across all answered questions.
type Statistics struct {
	TotalQuestions        int
	CorrectAnswers        int
	IncorrectAnswers      int
	Accuracy              float64 // percentage 0–100
	AverageResponseTimeMs float64 // running mean across all answers
	CharacterStats        map[string]CharacterStats
}

// AnswerRecord is one judged answer. Created exactly once per submission.
type AnswerRecord struct {
	QuestionID     string
	UserAnswer     string
	CorrectAnswer  string
	IsCorrect      bool
	Timestamp      time.Time
	Character      kana.Character
	CharacterKey   string
	ResponseTimeMs int64
}

// New returns the all-zero Statistics value.
func New() Statistics {
	return Statistics{CharacterStats: make(map[string]CharacterStats)}
}

// Reset returns a fresh all-zero Statistics. Identical to New; the separate
// name marks the only bulk-mutation entry point.
func Reset() Statistics {
	return New()
}

// Fold returns the statistics snapshot after absorbing one answer record.
// The prior snapshot is not mutated; callers replace their state with the
// result atomically.
func Fold(s Statistics, r AnswerRecord) Statistics {
	next := s
	next.CharacterStats = make(map[string]CharacterStats, len(s.CharacterStats)+1)
	for k, v := range s.CharacterStats {
		next.CharacterStats[k] = v
	}

	cs := next.CharacterStats[r.CharacterKey]
	cs.Attempts++
	if r.IsCorrect {
		cs.Correct++
	}
	cs.Accuracy = float64(cs.Correct) / float64(cs.Attempts)
	cs.TotalResponseTimeMs += r.ResponseTimeMs
	cs.AverageResponseTimeMs = float64(cs.TotalResponseTimeMs) / float64(cs.Attempts)
	if cs.Attempts == 1 {
		cs.FastestResponseTimeMs = r.ResponseTimeMs
		cs.SlowestResponseTimeMs = r.ResponseTimeMs
	} else {
		if r.ResponseTimeMs < cs.FastestResponseTimeMs {
			cs.FastestResponseTimeMs = r.ResponseTimeMs
		}
		if r.ResponseTimeMs > cs.SlowestResponseTimeMs {
			cs.SlowestResponseTimeMs = r.ResponseTimeMs
		}
	}
	cs.LastAttempt = r.Timestamp
	next.CharacterStats[r.CharacterKey] = cs

	next.TotalQuestions++
	if r.IsCorrect {
		next.CorrectAnswers++
	} else {
		next.IncorrectAnswers++
	}
	next.Accuracy = 100 * float64(next.CorrectAnswers) / float64(next.TotalQuestions)

	// Welford-style incremental mean: stable over long sessions without
	// keeping the full response-time history.
	delta := float64(r.ResponseTimeMs) - next.AverageResponseTimeMs
	next.AverageResponseTimeMs += delta / float64(next.TotalQuestions)

	return next
}

// CharStats returns the record for a character key, zero-valued when the
// character has never been practiced. A lookup miss is not an error.
func (s Statistics) CharStats(key string) CharacterStats {
	return s.CharacterStats[key]
}

// Clone returns a deep copy safe to hand to readers.
func (s Statistics) Clone() Statistics {
	c := s
	c.CharacterStats = make(map[string]CharacterStats, len(s.CharacterStats))
	for k, v := range s.CharacterStats {
		c.CharacterStats[k] = v
	}
	return c
}
