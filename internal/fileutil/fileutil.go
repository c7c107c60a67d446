// Package fileutil provides filesystem helpers for the output tree: idempotent
// directory creation, file writes, and sanitization of path segments derived
// from dataset values.
package fileutil

import (
	"os"
	"path/filepath"
	"strings"
)

// EnsureDir creates dir and any missing parents. Safe to call concurrently
// for the same directory; an already-existing directory is not an error.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// WriteFile writes content to path with 0o644 permissions, creating the
// parent directory first.
func WriteFile(path string, content []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	return os.WriteFile(path, content, 0o644)
}

// SanitizeSegment converts an arbitrary dataset value into a single safe path
// segment. Letters, digits, hyphens, underscores, and dots survive with case
// intact; everything else becomes an underscore. Returns "unknown" when
// nothing usable remains, matching the fallback used for unresolvable
// grouping keys.
func SanitizeSegment(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return "unknown"
	}
	var b strings.Builder
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '-' || r == '_' || r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_-.")
	if out == "" {
		return "unknown"
	}
	return out
}
