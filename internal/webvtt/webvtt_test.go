package webvtt_test

import (
	"testing"

	"github.com/j-nivekk/miscdataworks/internal/webvtt"
)

func TestNormalizePassThroughWhenNotStripping(t *testing.T) {
	raw := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello"
	if got := webvtt.Normalize(raw, false); got != raw {
		t.Fatalf("expected identity, got %q", got)
	}

	// Even malformed payloads pass through untouched.
	malformed := "not vtt at all \x00"
	if got := webvtt.Normalize(malformed, false); got != malformed {
		t.Fatalf("expected malformed pass-through, got %q", got)
	}
}

func TestNormalizeStripsTimingHeaderAndBlanks(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "single cue",
			raw:  "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello",
			want: "Hello",
		},
		{
			name: "multiple cues",
			raw:  "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nfirst line\n\n00:00:03.500 --> 00:00:05.250\nsecond line",
			want: "first line\nsecond line",
		},
		{
			name: "header with metadata suffix",
			raw:  "WEBVTT - generated\n\n00:00:01.000 --> 00:00:02.000\ntext",
			want: "text",
		},
		{
			name: "crlf payload",
			raw:  "WEBVTT\r\n\r\n00:00:01.000 --> 00:00:02.000\r\nHello\r\n",
			want: "Hello",
		},
		{
			name: "cue identifiers survive",
			raw:  "WEBVTT\n\n1\n00:00:01.000 --> 00:00:02.000\nkept",
			want: "1\nkept",
		},
		{
			name: "timing-like text mid line is kept",
			raw:  "WEBVTT\n\nsaid at 00:00:01.000 --> 00:00:02.000 exactly",
			want: "said at 00:00:01.000 --> 00:00:02.000 exactly",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := webvtt.Normalize(tc.raw, true); got != tc.want {
				t.Fatalf("Normalize(%q) = %q, want %q", tc.raw, got, tc.want)
			}
		})
	}
}

func TestNormalizeIsIdempotent(t *testing.T) {
	raw := "WEBVTT\n\n00:00:01.000 --> 00:00:02.000\nHello\n\n00:00:02.000 --> 00:00:03.000\nWorld"
	once := webvtt.Normalize(raw, true)
	twice := webvtt.Normalize(once, true)
	if once != twice {
		t.Fatalf("normalization not idempotent: %q vs %q", once, twice)
	}
}
