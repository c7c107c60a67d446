package scrape_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/j-nivekk/miscdataworks/internal/record"
	"github.com/j-nivekk/miscdataworks/internal/scrape"
)

func recordWithSubtitles(t *testing.T, descriptors string) record.Record {
	t.Helper()
	raw := `{"data":{"item_id":"A","video":{"subtitleInfos":` + descriptors + `}}}`
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return record.New(tree)
}

func TestMatchSelectsFirstEligibleInOrder(t *testing.T) {
	rec := recordWithSubtitles(t, `[
		{"LanguageCodeName": "en-US", "Format": "srt", "Url": "https://cdn/srt"},
		{"LanguageCodeName": "en-US", "Format": "webvtt", "Url": "https://cdn/first"},
		{"LanguageCodeName": "en-GB", "Format": "webvtt", "Url": "https://cdn/second"}
	]`)

	desc, ok := scrape.Match(rec, "en", record.KindSubtitle)
	if !ok {
		t.Fatal("expected a match")
	}
	// First eligible descriptor in dataset order wins; the srt entry is
	// filtered, the duplicate en-GB entry never consulted.
	if desc.URL != "https://cdn/first" {
		t.Fatalf("unexpected descriptor: %#v", desc)
	}
}

func TestMatchRequiresWebVTTFormat(t *testing.T) {
	rec := recordWithSubtitles(t, `[{"LanguageCodeName": "en", "Format": "srt", "Url": "https://cdn/x"}]`)
	if _, ok := scrape.Match(rec, "en", record.KindSubtitle); ok {
		t.Fatal("non-webvtt formats must be ignored")
	}
}

func TestMatchMissingLanguage(t *testing.T) {
	rec := recordWithSubtitles(t, `[{"LanguageCodeName": "en", "Format": "webvtt", "Url": "https://cdn/x"}]`)
	if _, ok := scrape.Match(rec, "fr", record.KindSubtitle); ok {
		t.Fatal("expected no match for absent language")
	}
}

func TestMatchSubtitlePrefixVsCaptionExact(t *testing.T) {
	raw := `{"data":{"item_id":"A","video":{
		"subtitleInfos":[{"LanguageCodeName":"en-US","Format":"webvtt","Url":"https://cdn/sub"}],
		"claInfo":{"captionInfos":[{"LanguageCodeName":"en-US","Format":"webvtt","Url":"https://cdn/cap"}]}
	}}}`
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()
	var tree map[string]any
	if err := dec.Decode(&tree); err != nil {
		t.Fatal(err)
	}
	rec := record.New(tree)

	if _, ok := scrape.Match(rec, "en", record.KindSubtitle); !ok {
		t.Fatal("subtitle kind should prefix-match en against en-US")
	}
	if _, ok := scrape.Match(rec, "en", record.KindCaption); ok {
		t.Fatal("caption kind must not prefix-match en against en-US")
	}
	if _, ok := scrape.Match(rec, "en-us", record.KindCaption); !ok {
		t.Fatal("caption kind should exact-match en-us case-insensitively")
	}
}

func TestMatchEmptyRecord(t *testing.T) {
	rec := record.New(map[string]any{})
	if _, ok := scrape.Match(rec, "en", record.KindSubtitle); ok {
		t.Fatal("expected no match on an empty record")
	}
}
