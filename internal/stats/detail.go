package stats

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ayato/kanadrill/internal/kana"
)

// DetailRow is one character form in the exhaustive per-character table.
type DetailRow struct {
	Char   string
	Script string // "hiragana" or "katakana"
	Romaji string
	CharacterStats
}

// DetailFilter restricts the detail table.
type DetailFilter int

const (
	FilterAll DetailFilter = iota
	FilterPracticed
	FilterUnpracticed
)

// DetailSort orders the detail table.
type DetailSort int

const (
	SortByAccuracy DetailSort = iota
	SortByResponseTime
	SortByAttempts
)

// DetailRows lists every catalog character in both scripts, including
// unpracticed ones as zero-valued rows, filtered and sorted for the table
// view. Accuracy and attempts sort ascending-worst-first the way the weak
// list does; response time sorts slowest first.
func DetailRows(s Statistics, filter DetailFilter, order DetailSort) []DetailRow {
	var rows []DetailRow
	for _, c := range kana.All() {
		rows = append(rows,
			DetailRow{Char: c.Hiragana, Script: "hiragana", Romaji: c.Romaji, CharacterStats: s.CharStats(c.Hiragana)},
			DetailRow{Char: c.Katakana, Script: "katakana", Romaji: c.Romaji, CharacterStats: s.CharStats(c.Katakana)},
		)
	}

	switch filter {
	case FilterPracticed:
		rows = lo.Filter(rows, func(r DetailRow, _ int) bool { return r.Attempts > 0 })
	case FilterUnpracticed:
		rows = lo.Filter(rows, func(r DetailRow, _ int) bool { return r.Attempts == 0 })
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		switch order {
		case SortByResponseTime:
			return a.AverageResponseTimeMs > b.AverageResponseTimeMs
		case SortByAttempts:
			return a.Attempts > b.Attempts
		default:
			// Unpracticed rows sink below practiced ones.
			if (a.Attempts > 0) != (b.Attempts > 0) {
				return a.Attempts > 0
			}
			return a.Accuracy < b.Accuracy
		}
	})

	return rows
}
