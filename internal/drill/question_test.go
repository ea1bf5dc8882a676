package drill

import (
	"math/rand"
	"testing"

	"github.com/ayato/kanadrill/internal/kana"
)

func testGenerator() *Generator {
	return NewGeneratorWithSource(rand.New(rand.NewSource(42)))
}

func TestGenerate_KanaToRomaji_Hiragana(t *testing.T) {
	g := testGenerator()
	q := g.Generate(ModeHiragana, KanaToRomaji)

	if q.DisplayText != q.Character.Hiragana {
		t.Errorf("DisplayText = %q, want hiragana %q", q.DisplayText, q.Character.Hiragana)
	}
	if len(q.AcceptedAnswers) != 1 || q.AcceptedAnswers[0] != q.Character.Romaji {
		t.Errorf("AcceptedAnswers = %v, want [%q]", q.AcceptedAnswers, q.Character.Romaji)
	}
}

func TestGenerate_KanaToRomaji_Katakana(t *testing.T) {
	g := testGenerator()
	q := g.Generate(ModeKatakana, KanaToRomaji)

	if q.DisplayText != q.Character.Katakana {
		t.Errorf("DisplayText = %q, want katakana %q", q.DisplayText, q.Character.Katakana)
	}
}

func TestGenerate_KanaToPronunciation(t *testing.T) {
	g := testGenerator()
	q := g.Generate(ModeHiragana, KanaToPronunciation)

	if len(q.AcceptedAnswers) != 1 || q.AcceptedAnswers[0] != q.Character.Pronunciation {
		t.Errorf("AcceptedAnswers = %v, want [%q]", q.AcceptedAnswers, q.Character.Pronunciation)
	}
}

func TestGenerate_RomajiToKana_MixedAcceptsBothScripts(t *testing.T) {
	g := testGenerator()
	for i := 0; i < 50; i++ {
		q := g.Generate(ModeMixed, RomajiToKana)

		if q.DisplayText != q.Character.Romaji {
			t.Fatalf("DisplayText = %q, want romaji %q", q.DisplayText, q.Character.Romaji)
		}
		if len(q.AcceptedAnswers) != 2 {
			t.Fatalf("AcceptedAnswers = %v, want both scripts", q.AcceptedAnswers)
		}
		if q.AcceptedAnswers[0] != q.Character.Hiragana || q.AcceptedAnswers[1] != q.Character.Katakana {
			t.Fatalf("AcceptedAnswers = %v, want [%q %q]",
				q.AcceptedAnswers, q.Character.Hiragana, q.Character.Katakana)
		}
	}
}

func TestGenerate_MixedShowsBothScripts(t *testing.T) {
	g := testGenerator()
	sawHiragana, sawKatakana := false, false
	for i := 0; i < 200; i++ {
		q := g.Generate(ModeMixed, KanaToRomaji)
		switch q.DisplayText {
		case q.Character.Hiragana:
			sawHiragana = true
		case q.Character.Katakana:
			sawKatakana = true
		default:
			t.Fatalf("DisplayText %q is neither script of %+v", q.DisplayText, q.Character)
		}
	}
	if !sawHiragana || !sawKatakana {
		t.Errorf("mixed mode never flipped: hiragana=%v katakana=%v", sawHiragana, sawKatakana)
	}
}

func TestGenerate_FreshIDs(t *testing.T) {
	g := testGenerator()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		q := g.Generate(ModeHiragana, KanaToRomaji)
		if q.ID == "" {
			t.Fatal("empty question ID")
		}
		if seen[q.ID] {
			t.Fatalf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestStatKey_KeyedByDisplayedKana(t *testing.T) {
	c := kana.Character{Hiragana: "か", Katakana: "カ", Romaji: "ka", Pronunciation: "ka"}

	tests := []struct {
		name    string
		q       Question
		matched string
		want    string
	}{
		{
			name: "kana prompt buckets under shown script",
			q:    Question{Character: c, Type: KanaToRomaji, DisplayText: "カ"},
			want: "カ",
		},
		{
			name:    "romaji prompt buckets under matched form",
			q:       Question{Character: c, Type: RomajiToKana, DisplayText: "ka"},
			matched: "カ",
			want:    "カ",
		},
		{
			name: "romaji prompt falls back to hiragana on a miss",
			q:    Question{Character: c, Type: RomajiToKana, DisplayText: "ka"},
			want: "か",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.q.StatKey(tt.matched); got != tt.want {
				t.Errorf("StatKey(%q) = %q, want %q", tt.matched, got, tt.want)
			}
		})
	}
}
