package recognizer

import (
	"strconv"
	"strings"
	"time"

	"case-consolidator-fiber/pkg/models"
)

// dateKeywordWindow is how many characters on either side of a raw date
// match are inspected for a date keyword ("on", "dated", "as of",
// "effective") when scoring confidence.
const dateKeywordWindow = 20

// ExtractDates scans text for date occurrences, classifies each by
// surrounding context, and scores a confidence in [0, 1]. sourceDocument
// is recorded on every result for provenance.
func ExtractDates(text, sourceDocument string) []models.ExtractedDate {
	var out []models.ExtractedDate
	lines := strings.Split(text, "\n")

	for lineNo, line := range lines {
		for _, dp := range dateRecognizerCatalog.patterns {
			for _, loc := range dp.re.FindAllStringIndex(line, -1) {
				raw := line[loc[0]:loc[1]]
				parsed, ok := parseFlexibleDate(raw, dp.layout)
				ctx := classifyDateContext(line)
				conf := scoreDateConfidence(line, loc, ctx, parsed, ok)

				ed := models.ExtractedDate{
					RawText:        raw,
					Context:        ctx,
					Confidence:     conf,
					SourceLine:     strings.TrimSpace(line),
					LineNumber:     lineNo + 1,
					SourceDocument: sourceDocument,
				}
				if ok {
					ed.ParsedDate = parsed.Format("2006-01-02")
				}
				out = append(out, ed)
			}
		}
	}
	return out
}

// classifyDateContext returns the first matching context for a line, or
// DateContextUnknown if none match. Lines are checked in the catalog's
// declared key order is not guaranteed (map iteration), so ambiguous
// lines matching multiple contexts resolve to whichever is found first;
// callers needing determinism should pre-filter to one context keyword
// per line, which is how attorney-notes KEY_DATES blocks are written.
func classifyDateContext(line string) models.DateContext {
	for ctx, patterns := range dateRecognizerCatalog.context {
		for _, re := range patterns {
			if re.MatchString(line) {
				return models.ParseDateContext(ctx)
			}
		}
	}
	return models.DateContextUnknown
}

// scoreDateConfidence implements the confidence formula: a base score of
// 0.5, +0.3 if the context is not unknown, +0.1 if a date keyword
// ("on", "dated", "as of", "effective") appears within dateKeywordWindow
// characters of the match, and -0.2 if the parsed year falls outside
// [1970, current_year+1]. The result is clamped to [0, 1]. No bonus for
// agreement between the context and the source document's type is
// applied; the document type is not an input here.
func scoreDateConfidence(line string, loc []int, ctx models.DateContext, parsed time.Time, parsedOK bool) float64 {
	score := 0.5

	if ctx.IsKnown() {
		score += 0.3
	}

	start := loc[0] - dateKeywordWindow
	if start < 0 {
		start = 0
	}
	end := loc[1] + dateKeywordWindow
	if end > len(line) {
		end = len(line)
	}
	if dateRecognizerCatalog.keyword.MatchString(line[start:end]) {
		score += 0.1
	}

	if parsedOK {
		year := parsed.Year()
		now := time.Now().Year()
		if year < 1970 || year > now+1 {
			score -= 0.2
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return score
}

var monthNames = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may": time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September, "sept": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// parseFlexibleDate tries the documented set of date layouts in turn,
// falling back to a hand-rolled month-name parse for the day-before-
// month-name pattern ("2 January 2006") that the layout list does not
// cover.
func parseFlexibleDate(raw, layout string) (time.Time, bool) {
	cleaned := strings.TrimSpace(raw)

	for _, candidate := range []string{
		"January 2, 2006", "January 2 2006",
		"Jan 2, 2006", "Jan. 2, 2006", "Jan 2 2006",
		"1/2/2006", "1-2-2006", "2006-01-02", "1/2/06",
	} {
		if t, err := time.Parse(candidate, cleaned); err == nil {
			return t, true
		}
	}

	if t, ok := parseDayMonthYear(cleaned); ok {
		return t, true
	}
	return time.Time{}, false
}

// parseDayMonthYear handles "2 January 2006" style dates.
func parseDayMonthYear(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month, ok := monthNames[strings.ToLower(fields[1])]
	if !ok {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}
