// Package kana holds the immutable catalog of Japanese kana characters.
package kana

import "math/rand"

// Character is one kana syllable in both scripts with its transliterations.
type Character struct {
	Hiragana      string
	Katakana      string
	Romaji        string
	Pronunciation string
}

// Row is a named gojūon row of characters (あ行, か行, ...).
type Row struct {
	Name       string
	Characters []Character
}

// Rows returns the catalog in gojūon order.
func Rows() []Row {
	return rows
}

// All returns every character flattened in catalog order.
func All() []Character {
	return allCharacters
}

// Len returns the number of characters in the catalog.
func Len() int {
	return len(allCharacters)
}

// Random draws one character uniformly from the full catalog.
func Random(rnd *rand.Rand) Character {
	return allCharacters[rnd.Intn(len(allCharacters))]
}

// Find looks up a character by either of its kana forms.
// The second return value is false when the string is not in the catalog.
func Find(s string) (Character, bool) {
	c, ok := byKana[s]
	return c, ok
}

var (
	allCharacters []Character
	byKana        map[string]Character
)

func init() {
	for _, row := range rows {
		allCharacters = append(allCharacters, row.Characters...)
	}
	byKana = make(map[string]Character, 2*len(allCharacters))
	for _, c := range allCharacters {
		byKana[c.Hiragana] = c
		// ぢ/づ share romaji with じ/ず but each kana form is unique.
		byKana[c.Katakana] = c
	}
}
