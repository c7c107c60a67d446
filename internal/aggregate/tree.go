package aggregate

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/j-nivekk/miscdataworks/internal/fileutil"
	"github.com/j-nivekk/miscdataworks/internal/jsontree"
	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

// groupByLanguage is the literal GroupBy value selecting the requested
// language as the grouping key; anything else is a dot path.
const groupByLanguage = "language"

// writeTree writes one file per successful result under
// <out>/[group/]<identity>_<language>.<ext>. Failures produce nothing here;
// they surface through the report only.
func writeTree(records []record.Record, results []scrape.Result, opts Options) (Artifact, error) {
	if err := fileutil.EnsureDir(opts.OutputDir); err != nil {
		return Artifact{}, fmt.Errorf("create output directory: %w", err)
	}

	byIdentity := recordIndex(records)
	written := 0
	for _, res := range results {
		if !res.Success {
			continue
		}
		dir := opts.OutputDir
		if group := groupKey(res, byIdentity, opts.GroupBy); group != "" {
			dir = filepath.Join(dir, group)
		}
		name := fmt.Sprintf("%s_%s.%s", fileutil.SanitizeSegment(res.Identity), fileutil.SanitizeSegment(res.Language), res.Extension)
		if err := fileutil.WriteFile(filepath.Join(dir, name), []byte(res.Content)); err != nil {
			return Artifact{}, fmt.Errorf("write %s: %w", name, err)
		}
		written++
	}
	return Artifact{Path: opts.OutputDir, FilesWritten: written}, nil
}

func groupKey(res scrape.Result, byIdentity map[string]record.Record, groupBy string) string {
	groupBy = strings.TrimSpace(groupBy)
	if groupBy == "" {
		return ""
	}
	if strings.EqualFold(groupBy, groupByLanguage) {
		return fileutil.SanitizeSegment(res.Language)
	}
	rec, ok := byIdentity[res.Identity]
	if !ok {
		return fileutil.SanitizeSegment("")
	}
	value, _ := jsontree.GetString(rec.Raw, groupBy)
	return fileutil.SanitizeSegment(value)
}
