// Package drill generates kana questions and judges typed answers.
package drill

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/ayato/kanadrill/internal/kana"
)

// Mode selects which script is shown and expected.
type Mode string

const (
	ModeHiragana Mode = "hiragana"
	ModeKatakana Mode = "katakana"
	ModeMixed    Mode = "mixed"
)

// QuestionType selects the prompt/answer direction.
type QuestionType string

const (
	KanaToRomaji        QuestionType = "kana-to-romaji"
	KanaToPronunciation QuestionType = "kana-to-pronunciation"
	RomajiToKana        QuestionType = "romaji-to-kana"
)

// Question is a single prompt with its accepted answers.
// Immutable once generated; it lives until the next question replaces it.
type Question struct {
	// ID uniquely identifies this question instance.
	ID string

	// Character is the catalog entry the question was drawn from.
	Character kana.Character

	// Type is the prompt/answer direction this question was generated for.
	Type QuestionType

	// Mode is the practice mode in effect at generation time.
	Mode Mode

	// DisplayText is the prompt shown to the learner.
	DisplayText string

	// AcceptedAnswers are the strings considered correct, in display
	// preference order. Length 2 only for romaji→kana in mixed mode.
	AcceptedAnswers []string
}

// StatKey returns the character key this question's answer should be
// bucketed under. Policy: key by the kana form the learner actually saw.
// For romaji prompts the displayed text is Latin, so the key is the kana
// form the learner produced (matched), falling back to hiragana when the
// answer didn't match any accepted form.
func (q Question) StatKey(matched string) string {
	switch q.Type {
	case RomajiToKana:
		if matched == q.Character.Hiragana || matched == q.Character.Katakana {
			return matched
		}
		return q.Character.Hiragana
	default:
		return q.DisplayText
	}
}

// Generator draws characters and derives prompts. Pure given its random
// source; it holds no session state.
type Generator struct {
	rnd *rand.Rand
}

// NewGenerator returns a Generator seeded with the current time.
func NewGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewGeneratorWithSource returns a Generator using the given random source.
// Tests pass a fixed seed for reproducible draws.
func NewGeneratorWithSource(rnd *rand.Rand) *Generator {
	return &Generator{rnd: rnd}
}

// Generate draws a character uniformly from the full catalog and builds a
// question for the given mode and type. The catalog is never filtered by
// mode: every character has both forms, mode only picks the script shown.
func (g *Generator) Generate(mode Mode, qt QuestionType) Question {
	c := kana.Random(g.rnd)

	q := Question{
		ID:        uuid.NewString(),
		Character: c,
		Type:      qt,
		Mode:      mode,
	}

	switch qt {
	case RomajiToKana:
		q.DisplayText = c.Romaji
		switch mode {
		case ModeHiragana:
			q.AcceptedAnswers = []string{c.Hiragana}
		case ModeKatakana:
			q.AcceptedAnswers = []string{c.Katakana}
		default:
			// Either script is accepted in mixed mode.
			q.AcceptedAnswers = []string{c.Hiragana, c.Katakana}
		}

	case KanaToPronunciation:
		q.DisplayText = g.displayKana(c, mode)
		q.AcceptedAnswers = []string{c.Pronunciation}

	default: // KanaToRomaji
		q.DisplayText = g.displayKana(c, mode)
		q.AcceptedAnswers = []string{c.Romaji}
	}

	return q
}

// displayKana picks the script to show: the mode's script, or a fair coin
// flip in mixed mode.
func (g *Generator) displayKana(c kana.Character, mode Mode) string {
	switch mode {
	case ModeKatakana:
		return c.Katakana
	case ModeMixed:
		if g.rnd.Intn(2) == 0 {
			return c.Katakana
		}
		return c.Hiragana
	default:
		return c.Hiragana
	}
}
