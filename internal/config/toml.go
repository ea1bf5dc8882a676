// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/ayato/kanadrill/internal/drill"
	"github.com/ayato/kanadrill/internal/session"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Drill   DrillConfig   `toml:"drill"`
	Storage StorageConfig `toml:"storage"`
}

// DrillConfig maps drill-related settings.
type DrillConfig struct {
	PracticeMode     *string `toml:"practice-mode"` // hiragana, katakana, mixed
	QuestionType     *string `toml:"question-type"` // kana-to-romaji, kana-to-pronunciation, romaji-to-kana
	AutoNext         *bool   `toml:"auto-next"`
	AutoNextDelayMs  *int    `toml:"auto-next-delay-ms"`
	TimeLimitSeconds *int    `toml:"time-limit-secs"`
}

// StorageConfig maps storage-related settings.
type StorageConfig struct {
	DBPath *string `toml:"db-path"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Defaults merges the file config over the built-in defaults. Unknown mode
// or question-type strings are ignored rather than failing startup.
func (c FileConfig) Defaults() session.Settings {
	s := session.DefaultSettings()
	if c.Drill.PracticeMode != nil {
		if m, ok := parseMode(*c.Drill.PracticeMode); ok {
			s.PracticeMode = m
		}
	}
	if c.Drill.QuestionType != nil {
		if qt, ok := parseQuestionType(*c.Drill.QuestionType); ok {
			s.QuestionType = qt
		}
	}
	if c.Drill.AutoNext != nil {
		s.AutoNext = *c.Drill.AutoNext
	}
	if c.Drill.TimeLimitSeconds != nil && *c.Drill.TimeLimitSeconds >= 0 {
		s.TimeLimitSeconds = *c.Drill.TimeLimitSeconds
	}
	return s
}

func parseMode(s string) (drill.Mode, bool) {
	switch s {
	case string(drill.ModeHiragana):
		return drill.ModeHiragana, true
	case string(drill.ModeKatakana):
		return drill.ModeKatakana, true
	case string(drill.ModeMixed):
		return drill.ModeMixed, true
	}
	return "", false
}

func parseQuestionType(s string) (drill.QuestionType, bool) {
	switch s {
	case string(drill.KanaToRomaji):
		return drill.KanaToRomaji, true
	case string(drill.KanaToPronunciation):
		return drill.KanaToPronunciation, true
	case string(drill.RomajiToKana):
		return drill.RomajiToKana, true
	}
	return "", false
}
