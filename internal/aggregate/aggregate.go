package aggregate

import (
	"fmt"
	"strings"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

// Mode selects the output representation. Values match the CLI --format
// vocabulary.
type Mode string

const (
	// ModeTree writes one file per successful (identity, language) pair.
	ModeTree Mode = "text"
	// ModeMerged re-emits every input record as NDJSON with fetched content
	// inserted at the kind-specific path.
	ModeMerged Mode = "ndjson"
	// ModeTabular writes a CSV matrix of identity x requested languages.
	ModeTabular Mode = "csv"
)

// ParseMode validates a user-supplied format string.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case ModeTree:
		return ModeTree, nil
	case ModeMerged:
		return ModeMerged, nil
	case ModeTabular:
		return ModeTabular, nil
	default:
		return "", fmt.Errorf("format: unsupported value %q (want text, ndjson, or csv)", value)
	}
}

// Options configures one aggregation pass. Records must already be truncated
// to the scheduler's item limit.
type Options struct {
	Mode      Mode
	Kind      record.Kind
	Languages []string
	OutputDir string
	// GroupBy applies to tree mode only: "language" nests files under the
	// requested language, any other non-empty value is read as a dot path
	// from the original record.
	GroupBy string
}

// Artifact describes what an aggregation pass produced.
type Artifact struct {
	// Path is the output directory for tree mode, the output file otherwise.
	Path string
	// FilesWritten counts tree-mode files; 1 for the other modes.
	FilesWritten int
}

// Write dispatches to the selected mode.
func Write(records []record.Record, results []scrape.Result, opts Options) (Artifact, error) {
	switch opts.Mode {
	case ModeTree:
		return writeTree(records, results, opts)
	case ModeMerged:
		return writeMerged(records, results, opts)
	case ModeTabular:
		return writeTabular(records, results, opts)
	default:
		return Artifact{}, fmt.Errorf("aggregate: unknown mode %q", opts.Mode)
	}
}

// contentIndex maps identity -> language -> cell content. Failures become ""
// so the key set stays complete.
func contentIndex(results []scrape.Result) map[string]map[string]string {
	index := make(map[string]map[string]string)
	for _, res := range results {
		byLanguage, ok := index[res.Identity]
		if !ok {
			byLanguage = make(map[string]string)
			index[res.Identity] = byLanguage
		}
		if res.Success {
			byLanguage[res.Language] = res.Content
		} else {
			byLanguage[res.Language] = ""
		}
	}
	return index
}

// recordIndex maps identity -> record, first occurrence winning, for
// grouping-key lookups.
func recordIndex(records []record.Record) map[string]record.Record {
	index := make(map[string]record.Record, len(records))
	for _, rec := range records {
		if _, ok := index[rec.Identity]; !ok {
			index[rec.Identity] = rec
		}
	}
	return index
}
