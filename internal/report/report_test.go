package report_test

import (
	"os"
	"strings"
	"testing"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/report"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

func sampleResults() []scrape.Result {
	return []scrape.Result{
		{Identity: "A", Language: "en", Success: true, Content: "hello"},
		{Identity: "A", Language: "fr", Reason: scrape.ReasonLanguageUnavailable},
		{Identity: "B", Language: "en", Reason: scrape.ReasonExpiredURL},
		{Identity: "B", Language: "fr", Success: true, Content: "bonjour"},
	}
}

func TestSummarizeCounts(t *testing.T) {
	rep := report.Summarize(sampleResults(), record.KindSubtitle, []string{"en", "fr"})

	if rep.Total != 4 || rep.Succeeded != 2 || rep.Failed != 2 {
		t.Fatalf("unexpected counts: %+v", rep)
	}
	if len(rep.Failures) != 2 {
		t.Fatalf("expected 2 ledger entries, got %d", len(rep.Failures))
	}
	// Ledger preserves observation order from the result stream.
	if rep.Failures[0].Identity != "A" || rep.Failures[1].Identity != "B" {
		t.Fatalf("ledger order broken: %+v", rep.Failures)
	}
}

func TestRenderWording(t *testing.T) {
	out := report.Summarize(sampleResults(), record.KindSubtitle, []string{"en", "fr"}).Render()

	for _, want := range []string{
		"Subtitle Scraping Summary",
		strings.Repeat("=", 30),
		"Languages requested: en, fr",
		"Total Attempts (video-language pairs): 4",
		"Successful Downloads: 2",
		"Failed Downloads: 2",
		"Failed Cases:",
		"Video ID: A - Language: fr - Reason: Language unavailable",
		"Video ID: B - Language: en - Reason: Expired or invalid URL",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestRenderCaptionHeading(t *testing.T) {
	out := report.Summarize(nil, record.KindCaption, []string{"en"}).Render()
	if !strings.HasPrefix(out, "Caption Scraping Summary") {
		t.Fatalf("unexpected heading: %q", out)
	}
	if strings.Contains(out, "Failed Cases:") {
		t.Fatal("no failures section expected for empty results")
	}
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path, err := report.Summarize(sampleResults(), record.KindSubtitle, []string{"en"}).WriteFile(dir)
	if err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "Subtitle Scraping Summary") {
		t.Fatalf("unexpected file contents: %q", data)
	}
}
