package stats

import (
	"testing"
	"time"

	"github.com/ayato/kanadrill/internal/kana"
)

var charA = kana.Character{Hiragana: "あ", Katakana: "ア", Romaji: "a", Pronunciation: "a"}
var charKa = kana.Character{Hiragana: "か", Katakana: "カ", Romaji: "ka", Pronunciation: "ka"}

func record(c kana.Character, correct bool, responseMs int64) AnswerRecord {
	return AnswerRecord{
		QuestionID:     "q",
		UserAnswer:     "x",
		CorrectAnswer:  c.Romaji,
		IsCorrect:      correct,
		Timestamp:      time.Now(),
		Character:      c,
		CharacterKey:   c.Hiragana,
		ResponseTimeMs: responseMs,
	}
}

func TestFold_CorrectAnswer(t *testing.T) {
	s := Fold(New(), record(charA, true, 800))

	if s.TotalQuestions != 1 || s.CorrectAnswers != 1 || s.IncorrectAnswers != 0 {
		t.Errorf("totals = %d/%d/%d, want 1/1/0",
			s.TotalQuestions, s.CorrectAnswers, s.IncorrectAnswers)
	}
	if s.Accuracy != 100 {
		t.Errorf("Accuracy = %v, want 100", s.Accuracy)
	}

	cs := s.CharStats("あ")
	if cs.Attempts != 1 || cs.Correct != 1 || cs.Accuracy != 1 {
		t.Errorf("CharStats[あ] = %+v, want attempts:1 correct:1 accuracy:1", cs)
	}
}

func TestFold_IncorrectAnswerDropsAccuracy(t *testing.T) {
	s := Fold(New(), record(charA, false, 800))

	if s.IncorrectAnswers != 1 {
		t.Errorf("IncorrectAnswers = %d, want 1", s.IncorrectAnswers)
	}
	if s.Accuracy != 0 {
		t.Errorf("Accuracy = %v, want 0", s.Accuracy)
	}
	if cs := s.CharStats("あ"); cs.Accuracy != 0 {
		t.Errorf("CharStats[あ].Accuracy = %v, want 0", cs.Accuracy)
	}
}

func TestFold_ResponseTimeExtrema(t *testing.T) {
	s := New()
	for _, ms := range []int64{1000, 2000, 3000} {
		r := record(charKa, true, ms)
		r.CharacterKey = "か"
		s = Fold(s, r)
	}

	cs := s.CharStats("か")
	if cs.AverageResponseTimeMs != 2000 {
		t.Errorf("AverageResponseTimeMs = %v, want 2000", cs.AverageResponseTimeMs)
	}
	if cs.FastestResponseTimeMs != 1000 {
		t.Errorf("FastestResponseTimeMs = %v, want 1000", cs.FastestResponseTimeMs)
	}
	if cs.SlowestResponseTimeMs != 3000 {
		t.Errorf("SlowestResponseTimeMs = %v, want 3000", cs.SlowestResponseTimeMs)
	}
	if s.AverageResponseTimeMs != 2000 {
		t.Errorf("global AverageResponseTimeMs = %v, want 2000", s.AverageResponseTimeMs)
	}
}

func TestFold_Invariants(t *testing.T) {
	s := New()
	times := []int64{300, 4200, 950, 120, 7000, 1800, 2500}
	for i, ms := range times {
		c := charA
		if i%2 == 0 {
			c = charKa
		}
		r := record(c, i%3 != 0, ms)
		r.CharacterKey = c.Hiragana
		s = Fold(s, r)

		if s.TotalQuestions != s.CorrectAnswers+s.IncorrectAnswers {
			t.Fatalf("total %d != correct %d + incorrect %d",
				s.TotalQuestions, s.CorrectAnswers, s.IncorrectAnswers)
		}
		wantAcc := 100 * float64(s.CorrectAnswers) / float64(s.TotalQuestions)
		if diff := s.Accuracy - wantAcc; diff > 1e-9 || diff < -1e-9 {
			t.Fatalf("Accuracy = %v, want %v", s.Accuracy, wantAcc)
		}
		for key, cs := range s.CharacterStats {
			if cs.Attempts == 0 {
				continue
			}
			if float64(cs.FastestResponseTimeMs) > cs.AverageResponseTimeMs ||
				cs.AverageResponseTimeMs > float64(cs.SlowestResponseTimeMs) {
				t.Fatalf("char %s: fastest %d <= avg %v <= slowest %d violated",
					key, cs.FastestResponseTimeMs, cs.AverageResponseTimeMs, cs.SlowestResponseTimeMs)
			}
		}
	}
}

func TestFold_DoesNotMutatePrior(t *testing.T) {
	s0 := Fold(New(), record(charA, true, 500))
	before := s0.CharStats("あ")

	_ = Fold(s0, record(charA, false, 900))

	after := s0.CharStats("あ")
	if before != after {
		t.Errorf("prior snapshot mutated: %+v != %+v", before, after)
	}
	if s0.TotalQuestions != 1 {
		t.Errorf("prior TotalQuestions = %d, want 1", s0.TotalQuestions)
	}
}

func TestReset_Idempotent(t *testing.T) {
	once := Reset()
	twice := Reset()

	if once.TotalQuestions != 0 || once.Accuracy != 0 || len(once.CharacterStats) != 0 {
		t.Errorf("Reset() = %+v, want all-zero", once)
	}
	if twice.TotalQuestions != once.TotalQuestions || len(twice.CharacterStats) != len(once.CharacterStats) {
		t.Error("second Reset differs from first")
	}
}

func TestCharStats_MissIsZeroValued(t *testing.T) {
	s := New()
	if cs := s.CharStats("ゑ"); cs.Attempts != 0 || cs.Accuracy != 0 {
		t.Errorf("missing key = %+v, want zero value", cs)
	}
}

func TestWelfordMeanMatchesDirectMean(t *testing.T) {
	s := New()
	times := []int64{100, 250, 3999, 72, 1500, 900, 66, 4200}
	var total int64
	for _, ms := range times {
		s = Fold(s, record(charA, true, ms))
		total += ms
	}

	want := float64(total) / float64(len(times))
	if diff := s.AverageResponseTimeMs - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("AverageResponseTimeMs = %v, want %v", s.AverageResponseTimeMs, want)
	}
}
