// Package consolidator implements the case consolidation engine: it
// takes every document processed out of one case folder and reconciles
// them into a single ConsolidatedCase record.
package consolidator

import (
	"strings"
	"time"

	"case-consolidator-fiber/pkg/casename"
	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/settings"
)

// Consolidate implements the eleven-step consolidation pipeline
// (§4.4.1) over one case folder's already-processed documents. It
// never fails: any internal error is captured as a warning on the
// still-returned ConsolidatedCase rather than propagated, since a
// partially-hydrated case is always more useful to a reviewing attorney
// than no case at all (§4.4.7).
func Consolidate(results []models.ExtractionResult, s *settings.Settings, broadcaster *events.Broadcaster) (c *models.ConsolidatedCase) {
	if broadcaster == nil {
		broadcaster = events.New(nil)
	}

	c = models.NewConsolidatedCase("")
	defer func() {
		if r := recover(); r != nil {
			c.Warnings = append(c.Warnings, "consolidation recovered from an internal error; case is partially hydrated")
		}
	}()

	usable, sourceNames := filterUsableResults(results)
	c.SourceDocuments = sourceNames

	if len(usable) == 0 {
		c.Warnings = append(c.Warnings, "no documents processed")
		c.CaseID = caseIDFor("", time.Time{})
		c.ConsolidationTimestamp = time.Now().UTC().Format(time.RFC3339)
		broadcaster = broadcaster.WithCase(c.CaseID)
		broadcaster.CaseStart(c.CaseID)
		broadcaster.CaseComplete("consolidation complete")
		return c
	}

	notes := findAttorneyNotes(usable)
	combinedText := combinedText(usable)

	caseInfo, ciWarnings := buildCaseInformation(notes, usable)
	c.CaseInformation = caseInfo
	c.Warnings = append(c.Warnings, ciWarnings...)

	plaintiff, defendants, counsel, partyWarnings := buildParties(notes, caseInfo.CourtDistrict, combinedText, usable, s)
	c.Plaintiff = plaintiff
	c.Defendants = defendants
	c.PlaintiffCounsel = counsel
	c.Warnings = append(c.Warnings, partyWarnings...)

	c.FactualBackground = buildFactualBackground(notes, combinedText)
	c.Damages = buildDamages(combinedText, usable)
	c.CaseTimeline = buildTimeline(notes, caseInfo.FilingDate, usable)
	c.Warnings = append(c.Warnings, c.CaseTimeline.ChronologicalValidation.Errors...)
	c.CausesOfAction = buildCausesOfAction(combinedText, c.Defendants)

	filingDate, _ := permissiveParseDate(caseInfo.FilingDate)
	c.CaseID = caseIDFor(plaintiff.Name, filingDate)
	c.ConsolidationTimestamp = time.Now().UTC().Format(time.RFC3339)
	c.ExtractionConfidence = scoreCase(c)

	broadcaster = broadcaster.WithCase(c.CaseID)
	broadcaster.CaseStart(c.CaseID)
	broadcaster.CaseComplete("consolidation complete")

	return c
}

// caseIDFor derives a stable identifier from the same plaintiff-name /
// filing-date pair casename.Generate uses for the on-disk case name, so
// the two stay consistent for one case.
func caseIDFor(plaintiffName string, filingDate time.Time) string {
	return casename.Generate(plaintiffName, filingDate)
}

// filterUsableResults drops summonses and failed extractions from
// consolidation inputs (step 1): summonses carry no case-identifying
// content, and failed documents have no text to consolidate from. Every
// source document's name — usable or not — is still recorded.
func filterUsableResults(results []models.ExtractionResult) ([]models.ExtractionResult, []string) {
	var usable []models.ExtractionResult
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.FileName)
		if !r.Success || isSummons(r.FileName) {
			continue
		}
		usable = append(usable, r)
	}
	return usable, names
}

// findAttorneyNotes locates the attorney-notes document among the
// usable results and parses it. Its absence is legal: every field it
// would have supplied falls back to the per-document majority vote or
// heuristic extraction instead.
func findAttorneyNotes(results []models.ExtractionResult) attorneyNotes {
	for _, r := range results {
		if isAttorneyNotes(r.FileName) {
			return parseAttorneyNotes(r.ExtractedText)
		}
	}
	return attorneyNotes{KeyDates: map[string]string{}}
}

func combinedText(results []models.ExtractionResult) string {
	var b strings.Builder
	for _, r := range results {
		b.WriteString(r.ExtractedText)
		b.WriteString("\n")
	}
	return b.String()
}
