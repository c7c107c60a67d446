package scrape

import "github.com/j-nivekk/miscdataworks/internal/record"

// eligibleFormat is the only wire format the toolkit downloads: plain text
// over WebVTT. Descriptors in any other format are invisible to matching.
const eligibleFormat = "webvtt"

// Match selects the descriptor to fetch for one requested language, or
// reports that none qualifies. Filtering keeps descriptors whose format is
// eligible and whose language code satisfies the kind's matching policy;
// the first survivor in dataset order wins. When a record carries duplicate
// tracks for a language, later ones are never consulted.
func Match(rec record.Record, language string, kind record.Kind) (record.Descriptor, bool) {
	for _, desc := range rec.Descriptors(kind) {
		if desc.Format != eligibleFormat {
			continue
		}
		if kind.MatchesLanguage(desc.LanguageCode, language) {
			return desc, true
		}
	}
	return record.Descriptor{}, false
}
