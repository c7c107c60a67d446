// Package report derives the success/failure accounting from a result
// stream and renders the plain-text summary ledger.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

// FileName is the summary ledger written into the output directory.
const FileName = "summary_report.txt"

// Failure is one failed attempt in the ledger.
type Failure struct {
	Identity string
	Language string
	Reason   string
}

// Report summarizes one run. Failures appear in the order they were observed
// in the result stream; that order is diagnostic, not contractual.
type Report struct {
	Kind      record.Kind
	Languages []string
	Total     int
	Succeeded int
	Failed    int
	Failures  []Failure
}

// Summarize partitions results into successes and failures.
func Summarize(results []scrape.Result, kind record.Kind, languages []string) Report {
	rep := Report{
		Kind:      kind,
		Languages: languages,
		Total:     len(results),
	}
	for _, res := range results {
		if res.Success {
			rep.Succeeded++
			continue
		}
		rep.Failed++
		rep.Failures = append(rep.Failures, Failure{
			Identity: res.Identity,
			Language: res.Language,
			Reason:   res.Reason,
		})
	}
	return rep
}

// Render produces the plain-text summary.
func (r Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Scraping Summary\n", r.Kind.Title())
	b.WriteString(strings.Repeat("=", 30))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "Languages requested: %s\n", strings.Join(r.Languages, ", "))
	fmt.Fprintf(&b, "Total Attempts (video-language pairs): %d\n", r.Total)
	fmt.Fprintf(&b, "Successful Downloads: %d\n", r.Succeeded)
	fmt.Fprintf(&b, "Failed Downloads: %d\n", r.Failed)
	if len(r.Failures) > 0 {
		b.WriteByte('\n')
		b.WriteString("Failed Cases:\n")
		for _, f := range r.Failures {
			fmt.Fprintf(&b, "Video ID: %s - Language: %s - Reason: %s\n", f.Identity, f.Language, f.Reason)
		}
	}
	return b.String()
}

// WriteFile writes the rendered summary into dir and returns the file path.
func (r Report) WriteFile(dir string) (string, error) {
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte(r.Render()), 0o644); err != nil {
		return "", fmt.Errorf("write summary report: %w", err)
	}
	return path, nil
}
