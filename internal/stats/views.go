package stats

import (
	"sort"

	"github.com/samber/lo"

	"github.com/ayato/kanadrill/internal/kana"
)

// CharEntry pairs a character key with its stats for list views.
type CharEntry struct {
	Char string
	CharacterStats
}

// Response-time heat thresholds in milliseconds.
const (
	HeatFastMs = 1500
	HeatSlowMs = 3000
)

// HeatLevel classifies a heatmap cell by average response time.
type HeatLevel int

const (
	HeatUnpracticed HeatLevel = iota
	HeatFast                  // avg < 1.5s
	HeatMedium                // avg < 3s
	HeatSlow                  // avg >= 3s
)

// HeatCell is one character cell in the heatmap grid.
type HeatCell struct {
	Char                  string
	Romaji                string
	Attempts              int
	AccuracyPct           float64
	AverageResponseTimeMs float64
	Level                 HeatLevel
}

// HeatRow is one catalog row of heatmap cells.
type HeatRow struct {
	Name  string
	Cells []HeatCell
}

// RowSummary aggregates both scripts of a catalog row.
type RowSummary struct {
	Name                  string
	Attempts              int
	Correct               int
	AccuracyPct           float64
	AverageResponseTimeMs float64
}

// WeakSpots returns the practiced characters with the lowest accuracy,
// ascending, at most limit entries. Ties break toward more attempts, then
// character order, so the list is stable across renders.
func WeakSpots(s Statistics, limit int) []CharEntry {
	entries := practiced(s)

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.Accuracy != b.Accuracy {
			return a.Accuracy < b.Accuracy
		}
		if a.Attempts != b.Attempts {
			return a.Attempts > b.Attempts
		}
		return a.Char < b.Char
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Slowest returns the practiced characters with the highest average
// response time, descending, at most limit entries.
func Slowest(s Statistics, limit int) []CharEntry {
	entries := practiced(s)

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.AverageResponseTimeMs != b.AverageResponseTimeMs {
			return a.AverageResponseTimeMs > b.AverageResponseTimeMs
		}
		return a.Char < b.Char
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Fastest returns the practiced characters with the lowest average
// response time, ascending, at most limit entries.
func Fastest(s Statistics, limit int) []CharEntry {
	entries := practiced(s)

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if a.AverageResponseTimeMs != b.AverageResponseTimeMs {
			return a.AverageResponseTimeMs < b.AverageResponseTimeMs
		}
		return a.Char < b.Char
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries
}

// Heatmap projects the catalog into rows of response-time heat cells for
// one script ("hiragana" or anything else for katakana). Unpracticed
// characters appear as zero-valued cells.
func Heatmap(s Statistics, hiragana bool) []HeatRow {
	return lo.Map(kana.Rows(), func(row kana.Row, _ int) HeatRow {
		cells := lo.Map(row.Characters, func(c kana.Character, _ int) HeatCell {
			char := c.Katakana
			if hiragana {
				char = c.Hiragana
			}
			cs := s.CharStats(char)
			return HeatCell{
				Char:                  char,
				Romaji:                c.Romaji,
				Attempts:              cs.Attempts,
				AccuracyPct:           100 * cs.Accuracy,
				AverageResponseTimeMs: cs.AverageResponseTimeMs,
				Level:                 heatLevel(cs),
			}
		})
		return HeatRow{Name: row.Name, Cells: cells}
	})
}

func heatLevel(cs CharacterStats) HeatLevel {
	switch {
	case cs.Attempts == 0:
		return HeatUnpracticed
	case cs.AverageResponseTimeMs < HeatFastMs:
		return HeatFast
	case cs.AverageResponseTimeMs < HeatSlowMs:
		return HeatMedium
	default:
		return HeatSlow
	}
}

// RowProgress aggregates stats per catalog row across both scripts.
// Rows with no attempts come back zero-valued; screens filter as needed.
func RowProgress(s Statistics) []RowSummary {
	return lo.Map(kana.Rows(), func(row kana.Row, _ int) RowSummary {
		sum := RowSummary{Name: row.Name}
		var totalMs int64
		for _, c := range row.Characters {
			for _, key := range []string{c.Hiragana, c.Katakana} {
				cs := s.CharStats(key)
				sum.Attempts += cs.Attempts
				sum.Correct += cs.Correct
				totalMs += cs.TotalResponseTimeMs
			}
		}
		if sum.Attempts > 0 {
			sum.AccuracyPct = 100 * float64(sum.Correct) / float64(sum.Attempts)
			sum.AverageResponseTimeMs = float64(totalMs) / float64(sum.Attempts)
		}
		return sum
	})
}

// PracticedCount returns how many of the catalog's character forms (both
// scripts) have at least one attempt, alongside the total form count.
func PracticedCount(s Statistics) (practiced, total int) {
	for _, c := range kana.All() {
		for _, key := range []string{c.Hiragana, c.Katakana} {
			total++
			if s.CharStats(key).Attempts > 0 {
				practiced++
			}
		}
	}
	return practiced, total
}

// RecentMistakes returns the last n incorrect records in original order.
func RecentMistakes(records []AnswerRecord, n int) []AnswerRecord {
	wrong := lo.Filter(records, func(r AnswerRecord, _ int) bool { return !r.IsCorrect })
	if n > 0 && len(wrong) > n {
		wrong = wrong[len(wrong)-n:]
	}
	return wrong
}

func practiced(s Statistics) []CharEntry {
	entries := make([]CharEntry, 0, len(s.CharacterStats))
	for char, cs := range s.CharacterStats {
		if cs.Attempts > 0 {
			entries = append(entries, CharEntry{Char: char, CharacterStats: cs})
		}
	}
	return entries
}
