// Package explore computes read-only language-distribution statistics over a
// dataset, backing the explore command. It shares the record schema with the
// scraping engine but never fetches anything.
package explore

import (
	"sort"
	"strings"

	"github.com/j-nivekk/miscdataworks/internal/record"
)

// LanguageCount is one language's descriptor tally.
type LanguageCount struct {
	Language string
	Count    int
}

// Stats summarizes descriptor availability for one kind across a dataset.
type Stats struct {
	TotalRecords     int
	RecordsWithMedia int
	Counts           map[string]int
}

// Scan tallies descriptor languages (lower-cased, "unknown" when absent) for
// the given kind.
func Scan(records []record.Record, kind record.Kind) Stats {
	stats := Stats{
		TotalRecords: len(records),
		Counts:       make(map[string]int),
	}
	for _, rec := range records {
		descriptors := rec.Descriptors(kind)
		if len(descriptors) == 0 {
			continue
		}
		stats.RecordsWithMedia++
		for _, desc := range descriptors {
			language := strings.ToLower(desc.LanguageCode)
			if language == "" {
				language = "unknown"
			}
			stats.Counts[language]++
		}
	}
	return stats
}

// UniqueLanguages returns the number of distinct language codes seen.
func (s Stats) UniqueLanguages() int {
	return len(s.Counts)
}

// Top returns the n most frequent languages, descending by count with ties
// broken alphabetically for stable output.
func (s Stats) Top(n int) []LanguageCount {
	ranked := make([]LanguageCount, 0, len(s.Counts))
	for language, count := range s.Counts {
		ranked = append(ranked, LanguageCount{Language: language, Count: count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Language < ranked[j].Language
	})
	if n > 0 && n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
