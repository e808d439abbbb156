package pamphlet

import "strings"

const (
	maxHeadlineWords    = 8
	maxDescriptionChars = 480
)

// Refine cleans generated copy for layout: whitespace is normalized, the
// headline is capped at a word budget and the description at a character
// budget, cut at a word boundary. Deterministic, no model calls.
func Refine(t TextContent) TextContent {
	t.Headline = normalizeSpace(t.Headline)
	t.Tagline = normalizeSpace(t.Tagline)
	t.Description = normalizeSpace(t.Description)
	t.CallToAction = normalizeSpace(t.CallToAction)

	if words := strings.Fields(t.Headline); len(words) > maxHeadlineWords {
		t.Headline = strings.Join(words[:maxHeadlineWords], " ")
	}
	if len(t.Description) > maxDescriptionChars {
		trimmed := t.Description[:maxDescriptionChars]
		if i := strings.LastIndex(trimmed, " "); i > 0 {
			trimmed = trimmed[:i]
		}
		t.Description = trimmed + "…"
	}
	return t
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
