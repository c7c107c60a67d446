package aggregate

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-nivekk/miscdataworks/internal/fileutil"
	"github.com/j-nivekk/miscdataworks/internal/jsontree"
	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

// MergedFileName is the merged-record output file inside the output dir.
const MergedFileName = "appended_subtitles.ndjson"

// writeMerged re-emits every truncated input record, in input order, with the
// per-language content map inserted at the kind-specific path. Failed
// attempts insert "" so every requested language appears on every record.
func writeMerged(records []record.Record, results []scrape.Result, opts Options) (Artifact, error) {
	if err := fileutil.EnsureDir(opts.OutputDir); err != nil {
		return Artifact{}, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(opts.OutputDir, MergedFileName)
	f, err := os.Create(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if err := WriteMerged(w, records, results, opts.Kind, opts.Languages); err != nil {
		return Artifact{}, err
	}
	if err := w.Flush(); err != nil {
		return Artifact{}, fmt.Errorf("flush %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Artifact{}, fmt.Errorf("close %s: %w", path, err)
	}
	return Artifact{Path: path, FilesWritten: 1}, nil
}

// WriteMerged streams the merged NDJSON to w. Exposed separately so tests and
// future callers can target any writer.
func WriteMerged(w io.Writer, records []record.Record, results []scrape.Result, kind record.Kind, languages []string) error {
	index := contentIndex(results)
	enc := json.NewEncoder(w)
	for _, rec := range records {
		target := jsontree.Ensure(rec.Raw, kind.InsertPath())
		byLanguage := index[rec.Identity]
		for _, language := range languages {
			if content, ok := byLanguage[language]; ok {
				target[language] = content
			}
		}
		if err := enc.Encode(rec.Raw); err != nil {
			return fmt.Errorf("encode record %s: %w", rec.Identity, err)
		}
	}
	return nil
}
