package session

import "github.com/ayato/kanadrill/internal/drill"

// Settings are the learner's persisted preferences.
type Settings struct {
	PracticeMode     drill.Mode
	QuestionType     drill.QuestionType
	AutoNext         bool
	TimeLimitSeconds int // 0 = unlimited
}

// DefaultSettings mirrors the defaults a fresh install starts with.
func DefaultSettings() Settings {
	return Settings{
		PracticeMode:     drill.ModeHiragana,
		QuestionType:     drill.KanaToRomaji,
		AutoNext:         true,
		TimeLimitSeconds: 0,
	}
}

// SettingsPatch is a partial settings update; nil fields are left unchanged.
type SettingsPatch struct {
	PracticeMode     *drill.Mode
	QuestionType     *drill.QuestionType
	AutoNext         *bool
	TimeLimitSeconds *int
}

func (s Settings) merge(p SettingsPatch) Settings {
	if p.PracticeMode != nil {
		s.PracticeMode = *p.PracticeMode
	}
	if p.QuestionType != nil {
		s.QuestionType = *p.QuestionType
	}
	if p.AutoNext != nil {
		s.AutoNext = *p.AutoNext
	}
	if p.TimeLimitSeconds != nil {
		s.TimeLimitSeconds = *p.TimeLimitSeconds
	}
	return s
}
