// Package webvtt normalizes WEBVTT subtitle payloads down to spoken text.
//
// Normalization is deliberately narrow: only timing cue lines, the WEBVTT
// header, and blank lines are dropped. Cue identifiers and inline tags pass
// through untouched so the output stays byte-comparable with the dataset's
// own plain-text exports.
package webvtt

import (
	"regexp"
	"strings"
)

// timingLine matches a cue timing range like "00:00:01.000 --> 00:00:02.000".
var timingLine = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}\.\d{3} --> \d{2}:\d{2}:\d{2}\.\d{3}$`)

const headerToken = "WEBVTT"

// Normalize returns raw unchanged when strip is false. When strip is true it
// removes timing lines, header lines, and blank lines, rejoining what
// remains with single newlines. Idempotent: normalizing already-normalized
// text is a no-op.
func Normalize(raw string, strip bool) string {
	if !strip {
		return raw
	}

	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if timingLine.MatchString(line) {
			continue
		}
		if strings.HasPrefix(line, headerToken) || strings.TrimSpace(line) == "" {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
