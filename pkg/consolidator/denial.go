package consolidator

import (
	"regexp"
	"strings"

	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/recognizer"
)

var applicationForPattern = regexp.MustCompile(`(?i)application for (?:an?|your)?\s*([A-Za-z ]+?)(?:\s+(?:was|has been|is)\b|[.\n])`)
var creditScorePattern = regexp.MustCompile(`(?i)credit score(?:\s+(?:of|used))?\s*[:\-]?\s*(\d{3})`)
var reasonsHeaderPattern = regexp.MustCompile(`(?i)reason[s]?\s+for\s+(?:this\s+)?(?:action|denial|decision)[:\-]?`)
var reasonBulletPattern = regexp.MustCompile(`^-\s*(.+)$`)

// knownCreditorNames is checked against a denial letter's text and
// filename to identify the creditor, since denial letters rarely label
// themselves as cleanly as attorney notes do.
var knownCreditorNames = []string{
	"Capital One", "TD Bank", "Chase", "Bank of America", "Wells Fargo",
	"Citibank", "Discover", "American Express", "Synchrony", "US Bank",
}

// extractDenialDetails pulls the supplemental denial-letter fields out
// of one document's extracted text: creditor, product applied for,
// decision date, credit score used, and stated reasons. ok is false
// when the document doesn't look like a denial/adverse-action notice.
func extractDenialDetails(result models.ExtractionResult) (models.DenialDetail, bool) {
	if recognizer.ClassifyDocumentType(result.ExtractedText) != "denial_letter" {
		return models.DenialDetail{}, false
	}

	detail := models.DenialDetail{
		Creditor: findCreditor(result),
	}

	if m := applicationForPattern.FindStringSubmatch(result.ExtractedText); m != nil {
		detail.ApplicationFor = strings.TrimSpace(m[1])
	}
	if m := creditScorePattern.FindStringSubmatch(result.ExtractedText); m != nil {
		detail.CreditScoreUsed = m[1]
	}
	for _, ed := range result.ExtractedDates {
		if ed.Context == models.DateContextDenial || ed.Context == models.DateContextAdverseAction {
			if ed.ParsedDate != "" {
				detail.Date = ed.ParsedDate
			} else {
				detail.Date = ed.RawText
			}
			break
		}
	}
	detail.Reasons = findReasons(result.ExtractedText)

	return detail, true
}

func findCreditor(result models.ExtractionResult) string {
	haystack := result.FileName + " " + result.ExtractedText
	for _, name := range knownCreditorNames {
		if strings.Contains(strings.ToLower(haystack), strings.ToLower(name)) {
			return name
		}
	}
	return "Unknown Creditor"
}

// findReasons collects the bulleted lines following a "Reasons for..."
// header, the common adverse-action-notice layout.
func findReasons(text string) []string {
	lines := strings.Split(text, "\n")
	var reasons []string
	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if reasonsHeaderPattern.MatchString(trimmed) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" {
			break
		}
		if m := reasonBulletPattern.FindStringSubmatch(trimmed); m != nil {
			reasons = append(reasons, strings.TrimSpace(m[1]))
			continue
		}
		break
	}
	return reasons
}
