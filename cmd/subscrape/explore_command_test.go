package main

import (
	"testing"
)

func TestExploreSummarizesLanguages(t *testing.T) {
	env := setupCLITestEnv(t)

	dataset := writeDataset(t, env.baseDir,
		subtitleLine("111", "en", "http://example.invalid/a.vtt"),
		subtitleLine("222", "en-US", "http://example.invalid/b.vtt"),
		subtitleLine("333", "fr", "http://example.invalid/c.vtt"),
		`{"data":{"item_id":"444","video":{}}}`,
	)

	out, _, err := runCLI(t, []string{"explore", dataset}, env.configPath)
	if err != nil {
		t.Fatalf("explore: %v", err)
	}
	requireContains(t, out, "Records: 4")
	requireContains(t, out, "Records with subtitle tracks: 3")
	requireContains(t, out, "Distinct languages: 3")
	requireContains(t, out, "en-us")
}

func TestExploreTopTruncatesWithHint(t *testing.T) {
	env := setupCLITestEnv(t)

	dataset := writeDataset(t, env.baseDir,
		subtitleLine("111", "en", "http://example.invalid/a.vtt"),
		subtitleLine("222", "fr", "http://example.invalid/b.vtt"),
		subtitleLine("333", "de", "http://example.invalid/c.vtt"),
	)

	out, _, err := runCLI(t, []string{"explore", dataset, "--top", "1"}, env.configPath)
	if err != nil {
		t.Fatalf("explore: %v", err)
	}
	requireContains(t, out, "…and 2 more")
}
