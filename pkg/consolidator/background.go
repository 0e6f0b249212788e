package consolidator

import (
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// summaryMaxChars is the documented summary length: "joining the first
// ~250 characters" of the allegations.
const summaryMaxChars = 250

// buildFactualBackground implements step 6: the attorney-notes
// BACKGROUND: block, one allegation per non-empty line, or — when
// attorney notes are absent or carry no such block — a narrative
// fallback over the remaining documents' text.
func buildFactualBackground(notes attorneyNotes, fallbackText string) models.FactualBackground {
	allegations := notes.Background
	if len(allegations) == 0 {
		allegations = narrativeFallback(fallbackText)
	}
	if allegations == nil {
		allegations = []string{}
	}

	return models.FactualBackground{
		Summary:     joinSummary(allegations),
		Allegations: allegations,
	}
}

// joinSummary joins allegations with a space and truncates to
// summaryMaxChars characters.
func joinSummary(allegations []string) string {
	joined := strings.Join(allegations, " ")
	if len(joined) <= summaryMaxChars {
		return joined
	}
	return strings.TrimSpace(joined[:summaryMaxChars])
}
