package kana

import (
	"math/rand"
	"testing"
)

func TestCatalogIsConsistent(t *testing.T) {
	if Len() == 0 {
		t.Fatal("catalog is empty")
	}

	total := 0
	for _, row := range Rows() {
		if row.Name == "" {
			t.Error("row with empty name")
		}
		if len(row.Characters) == 0 {
			t.Errorf("row %s has no characters", row.Name)
		}
		total += len(row.Characters)
		for _, c := range row.Characters {
			if c.Hiragana == "" || c.Katakana == "" || c.Romaji == "" || c.Pronunciation == "" {
				t.Errorf("incomplete character %+v in row %s", c, row.Name)
			}
		}
	}

	if total != Len() {
		t.Errorf("All() has %d characters, rows have %d", Len(), total)
	}
}

func TestFindByEitherScript(t *testing.T) {
	tests := []struct {
		lookup string
		romaji string
	}{
		{"あ", "a"},
		{"ア", "a"},
		{"し", "shi"},
		{"ツ", "tsu"},
		{"ぽ", "po"},
	}

	for _, tt := range tests {
		c, ok := Find(tt.lookup)
		if !ok {
			t.Errorf("Find(%q): not found", tt.lookup)
			continue
		}
		if c.Romaji != tt.romaji {
			t.Errorf("Find(%q).Romaji = %q, want %q", tt.lookup, c.Romaji, tt.romaji)
		}
	}

	if _, ok := Find("x"); ok {
		t.Error("Find(\"x\") should miss")
	}
}

func TestRandomStaysInCatalog(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		c := Random(rnd)
		if _, ok := Find(c.Hiragana); !ok {
			t.Fatalf("Random returned %+v which is not in the catalog", c)
		}
	}
}

func TestHiraganaFormsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, c := range All() {
		if seen[c.Hiragana] {
			t.Errorf("duplicate hiragana %q", c.Hiragana)
		}
		seen[c.Hiragana] = true
	}
}
