package scrape

// Failure reasons shared across the engine. The first two are fixed strings
// the report format depends on; transport failures carry a short prefix
// identifying the failure family.
const (
	ReasonLanguageUnavailable = "Language unavailable"
	ReasonExpiredURL          = "Expired or invalid URL"
)

// Output file extensions for successful fetches.
const (
	ExtStripped  = "txt"
	ExtContainer = "vtt"
)

// Result is the outcome of one WorkUnit. Created exactly once, never mutated.
type Result struct {
	Identity string
	Language string
	Success  bool
	// Reason is empty on success and a short human string on failure.
	Reason string
	// Content is the normalized payload on success, "" on failure.
	Content string
	// Extension is ExtStripped or ExtContainer on success, "" on failure.
	Extension string
}

func failure(identity, language, reason string) Result {
	return Result{Identity: identity, Language: language, Reason: reason}
}
