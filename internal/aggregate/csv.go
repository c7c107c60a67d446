package aggregate

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/j-nivekk/miscdataworks/internal/fileutil"
	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

// TabularFileName is the CSV output file inside the output dir.
const TabularFileName = "subtitles.csv"

// writeTabular writes one row per truncated input record, in input order,
// with one column per requested language in request order.
func writeTabular(records []record.Record, results []scrape.Result, opts Options) (Artifact, error) {
	if err := fileutil.EnsureDir(opts.OutputDir); err != nil {
		return Artifact{}, fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(opts.OutputDir, TabularFileName)
	f, err := os.Create(path)
	if err != nil {
		return Artifact{}, fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := WriteTabular(f, records, results, opts.Languages); err != nil {
		return Artifact{}, err
	}
	if err := f.Close(); err != nil {
		return Artifact{}, fmt.Errorf("close %s: %w", path, err)
	}
	return Artifact{Path: path, FilesWritten: 1}, nil
}

// WriteTabular streams the CSV matrix to w. A cell holds content on success
// and "" on failure; a missing (identity, language) pair also renders ""
// rather than erroring, though the scheduler guarantees completeness.
func WriteTabular(w io.Writer, records []record.Record, results []scrape.Result, languages []string) error {
	index := contentIndex(results)
	writer := csv.NewWriter(w)

	header := append([]string{"video_id"}, languages...)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, 0, len(header))
	for _, rec := range records {
		row = row[:0]
		row = append(row, rec.Identity)
		byLanguage := index[rec.Identity]
		for _, language := range languages {
			row = append(row, byLanguage[language])
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write csv row for %s: %w", rec.Identity, err)
		}
	}
	writer.Flush()
	return writer.Error()
}
