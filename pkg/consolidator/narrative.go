package consolidator

import (
	"regexp"
	"strings"
)

var sentenceSplitPattern = regexp.MustCompile(`(?:[.!?])\s+`)

// narrativeKeywordPattern restricts the narrative fallback to sentences
// actually bearing on the case, rather than every sentence in a denial
// letter's boilerplate.
var narrativeKeywordPattern = regexp.MustCompile(`(?i)\b(dispute[d]?|denied|denial|credit report|furnish(ed|er)?|inaccurate|reinvestigat(e|ion)|adverse action)\b`)

// maxNarrativeAllegations caps how many sentences the fallback pulls in,
// mirroring the attorney-notes path's implicit brevity (a handful of
// BACKGROUND: lines, not a full-document dump).
const maxNarrativeAllegations = 5

// narrativeFallback extracts a coarse allegation list from the combined
// text of the usable documents (summonses are already filtered out) when
// no BACKGROUND: block is available. It splits into sentences and keeps the ones bearing
// case-relevant keywords, in document order.
func narrativeFallback(text string) []string {
	sentences := sentenceSplitPattern.Split(text, -1)
	var out []string
	for _, s := range sentences {
		s = strings.TrimSpace(strings.ReplaceAll(s, "\n", " "))
		if s == "" || !narrativeKeywordPattern.MatchString(s) {
			continue
		}
		out = append(out, s)
		if len(out) >= maxNarrativeAllegations {
			break
		}
	}
	return out
}
