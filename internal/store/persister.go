package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/kana"
	"github.com/ayato/kanadrill/internal/session"
	"github.com/ayato/kanadrill/internal/stats"
)

var _ session.Persister = (*Store)(nil)

// Load reads the persisted state. Returns nil with no error on a fresh
// database so the session store starts from defaults.
func (s *Store) Load(ctx context.Context) (*session.PersistedState, error) {
	settings, found, err := s.loadSettings(ctx)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	statistics, err := s.loadStatistics(ctx)
	if err != nil {
		return nil, err
	}

	history, err := s.loadHistory(ctx)
	if err != nil {
		return nil, err
	}

	return &session.PersistedState{
		Settings:   settings,
		Statistics: statistics,
		History:    history,
	}, nil
}

// Save replaces the persisted state wholesale in one transaction. The
// state is a snapshot; a row-by-row diff buys nothing at this size.
func (s *Store) Save(ctx context.Context, state session.PersistedState) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO settings (id, practice_mode, question_type, auto_next, time_limit_secs)
		 VALUES (1, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			practice_mode = excluded.practice_mode,
			question_type = excluded.question_type,
			auto_next = excluded.auto_next,
			time_limit_secs = excluded.time_limit_secs`,
		string(state.Settings.PracticeMode),
		string(state.Settings.QuestionType),
		boolToInt(state.Settings.AutoNext),
		state.Settings.TimeLimitSeconds,
	)
	if err != nil {
		return fmt.Errorf("save settings: %w", err)
	}

	st := state.Statistics
	_, err = tx.ExecContext(ctx,
		`INSERT INTO global_stats (id, total_questions, correct_answers, incorrect_answers, accuracy, avg_response_ms)
		 VALUES (1, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			total_questions = excluded.total_questions,
			correct_answers = excluded.correct_answers,
			incorrect_answers = excluded.incorrect_answers,
			accuracy = excluded.accuracy,
			avg_response_ms = excluded.avg_response_ms`,
		st.TotalQuestions, st.CorrectAnswers, st.IncorrectAnswers, st.Accuracy, st.AverageResponseTimeMs,
	)
	if err != nil {
		return fmt.Errorf("save global stats: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM char_stats`); err != nil {
		return fmt.Errorf("clear char stats: %w", err)
	}
	for key, cs := range st.CharacterStats {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO char_stats (char_key, attempts, correct, accuracy, last_attempt, avg_response_ms, fastest_ms, slowest_ms, total_ms)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			key, cs.Attempts, cs.Correct, cs.Accuracy,
			cs.LastAttempt.Format(time.RFC3339Nano),
			cs.AverageResponseTimeMs, cs.FastestResponseTimeMs, cs.SlowestResponseTimeMs, cs.TotalResponseTimeMs,
		)
		if err != nil {
			return fmt.Errorf("save char stats %s: %w", key, err)
		}
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM answer_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	history := state.History
	if len(history) > session.HistoryPersistLimit {
		history = history[len(history)-session.HistoryPersistLimit:]
	}
	for _, r := range history {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO answer_history (question_id, user_answer, correct_answer, is_correct, ts, char_key, hiragana, katakana, romaji, pronunciation, response_ms)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.QuestionID, r.UserAnswer, r.CorrectAnswer, boolToInt(r.IsCorrect),
			r.Timestamp.Format(time.RFC3339Nano), r.CharacterKey,
			r.Character.Hiragana, r.Character.Katakana, r.Character.Romaji, r.Character.Pronunciation,
			r.ResponseTimeMs,
		)
		if err != nil {
			return fmt.Errorf("save history record: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}

func (s *Store) loadSettings(ctx context.Context) (session.Settings, bool, error) {
	var (
		mode, qt  string
		autoNext  int
		timeLimit int
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT practice_mode, question_type, auto_next, time_limit_secs FROM settings WHERE id = 1`,
	).Scan(&mode, &qt, &autoNext, &timeLimit)
	if errors.Is(err, sql.ErrNoRows) {
		return session.Settings{}, false, nil
	}
	if err != nil {
		return session.Settings{}, false, fmt.Errorf("load settings: %w", err)
	}
	return session.Settings{
		PracticeMode:     drill.Mode(mode),
		QuestionType:     drill.QuestionType(qt),
		AutoNext:         autoNext != 0,
		TimeLimitSeconds: timeLimit,
	}, true, nil
}

func (s *Store) loadStatistics(ctx context.Context) (stats.Statistics, error) {
	statistics := stats.New()

	err := s.db.QueryRowContext(ctx,
		`SELECT total_questions, correct_answers, incorrect_answers, accuracy, avg_response_ms
		 FROM global_stats WHERE id = 1`,
	).Scan(
		&statistics.TotalQuestions, &statistics.CorrectAnswers, &statistics.IncorrectAnswers,
		&statistics.Accuracy, &statistics.AverageResponseTimeMs,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return statistics, nil
	}
	if err != nil {
		return statistics, fmt.Errorf("load global stats: %w", err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT char_key, attempts, correct, accuracy, last_attempt, avg_response_ms, fastest_ms, slowest_ms, total_ms
		 FROM char_stats`,
	)
	if err != nil {
		return statistics, fmt.Errorf("load char stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			key         string
			cs          stats.CharacterStats
			lastAttempt string
		)
		if err := rows.Scan(&key, &cs.Attempts, &cs.Correct, &cs.Accuracy, &lastAttempt,
			&cs.AverageResponseTimeMs, &cs.FastestResponseTimeMs, &cs.SlowestResponseTimeMs, &cs.TotalResponseTimeMs); err != nil {
			return statistics, fmt.Errorf("scan char stats: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, lastAttempt); err == nil {
			cs.LastAttempt = t
		}
		statistics.CharacterStats[key] = cs
	}
	if err := rows.Err(); err != nil {
		return statistics, fmt.Errorf("iterate char stats: %w", err)
	}
	return statistics, nil
}

func (s *Store) loadHistory(ctx context.Context) ([]stats.AnswerRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question_id, user_answer, correct_answer, is_correct, ts, char_key, hiragana, katakana, romaji, pronunciation, response_ms
		 FROM answer_history ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	defer rows.Close()

	var history []stats.AnswerRecord
	for rows.Next() {
		var (
			r         stats.AnswerRecord
			c         kana.Character
			isCorrect int
			ts        string
		)
		if err := rows.Scan(&r.QuestionID, &r.UserAnswer, &r.CorrectAnswer, &isCorrect, &ts,
			&r.CharacterKey, &c.Hiragana, &c.Katakana, &c.Romaji, &c.Pronunciation, &r.ResponseTimeMs); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		r.IsCorrect = isCorrect != 0
		if t, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			r.Timestamp = t
		}
		r.Character = c
		history = append(history, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return history, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
