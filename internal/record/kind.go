package record

import (
	"fmt"
	"strings"
)

// Kind selects which media family a run processes. The kind decides both the
// nested path descriptors are read from and the language-matching policy.
type Kind string

const (
	// KindSubtitle processes data.video.subtitleInfos entries. Language
	// matching is prefix-based so a request for "en" accepts regional
	// variants like "en-US".
	KindSubtitle Kind = "subtitle"

	// KindCaption processes data.video.claInfo.captionInfos entries.
	// Language matching is exact (case-insensitive): caption codes are
	// strict.
	KindCaption Kind = "caption"
)

// ParseKind validates a user-supplied kind string.
func ParseKind(value string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(value))) {
	case KindSubtitle:
		return KindSubtitle, nil
	case KindCaption:
		return KindCaption, nil
	default:
		return "", fmt.Errorf("kind: unsupported value %q (want subtitle or caption)", value)
	}
}

// DescriptorPath returns the dot path descriptors are extracted from.
func (k Kind) DescriptorPath() string {
	if k == KindCaption {
		return "data.video.claInfo.captionInfos"
	}
	return "data.video.subtitleInfos"
}

// InsertPath returns the dot path merged output inserts content under.
func (k Kind) InsertPath() string {
	if k == KindCaption {
		return "data.video.claInfo.caption"
	}
	return "data.video.subtitle"
}

// MatchesLanguage reports whether a descriptor's language code satisfies the
// requested language under this kind's policy. The requested code is assumed
// to be lower-cased already; the descriptor code is lowered here.
func (k Kind) MatchesLanguage(descriptorCode, requested string) bool {
	code := strings.ToLower(descriptorCode)
	if k == KindCaption {
		return code == requested
	}
	return strings.HasPrefix(code, requested)
}

// Title returns the kind name with an upper-cased first letter, for report
// headings.
func (k Kind) Title() string {
	s := string(k)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
