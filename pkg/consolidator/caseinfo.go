package consolidator

import (
	"fmt"

	"case-consolidator-fiber/pkg/models"
)

// buildCaseInformation implements step 3: attorney-notes labeled fields
// win when present; an absent field falls back to majority vote over
// every document's own per-document extraction (§4.4.2).
func buildCaseInformation(notes attorneyNotes, allResults []models.ExtractionResult) (models.CaseInformation, []string) {
	var warnings []string
	ci := models.CaseInformation{DocumentType: "FCRA"}

	ci.CaseNumber = pickField(notes.CaseNumber, func(r models.ExtractionResult) string { return r.CaseInformation.CaseNumber }, allResults, &warnings, "case_number")
	ci.CourtName = pickField(notes.CourtName, func(r models.ExtractionResult) string { return r.CaseInformation.CourtName }, allResults, &warnings, "court_name")
	ci.CourtDistrict = pickField(notes.CourtDistrict, func(r models.ExtractionResult) string { return r.CaseInformation.CourtDistrict }, allResults, &warnings, "court_district")
	ci.FilingDate = pickField(notes.FilingDate, func(r models.ExtractionResult) string { return r.CaseInformation.FilingDate }, allResults, &warnings, "filing_date")

	return ci, warnings
}

func pickField(notesValue string, getter func(models.ExtractionResult) string, results []models.ExtractionResult, warnings *[]string, label string) string {
	if notesValue != "" {
		return notesValue
	}
	winner, warning := majorityVote(getter, results)
	if warning != "" {
		*warnings = append(*warnings, fmt.Sprintf("%s: %s", label, warning))
	}
	return winner
}

// majorityVote picks the most-frequent non-empty value getter produces
// across results. Ties break by first-seen order (the per-document
// confidence tie-break the spec also documents isn't available here:
// ExtractionResult carries one quality score per document, not a
// per-field confidence, so first-seen is the next-best deterministic
// rule). Returns a warning naming the selected value and listing every
// distinct value seen whenever more than one distinct non-empty value
// was seen.
func majorityVote(getter func(models.ExtractionResult) string, results []models.ExtractionResult) (string, string) {
	counts := make(map[string]int)
	var order []string

	for _, r := range results {
		v := getter(r)
		if v == "" {
			continue
		}
		if _, seen := counts[v]; !seen {
			order = append(order, v)
		}
		counts[v]++
	}
	if len(order) == 0 {
		return "", ""
	}

	best := order[0]
	bestCount := counts[best]
	for _, v := range order[1:] {
		if counts[v] > bestCount {
			best = v
			bestCount = counts[v]
		}
	}

	if len(order) == 1 {
		return best, ""
	}
	return best, fmt.Sprintf("multiple conflicting values found, selected %q by majority vote over %v", best, order)
}
