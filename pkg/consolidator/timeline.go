package consolidator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"case-consolidator-fiber/pkg/models"
)

// permissiveDateLayouts is the documented set of layouts the
// chronology rules' date parser accepts: ISO, MM/DD/YYYY,
// "Month D, YYYY", "Mon D, YYYY", "D Month YYYY".
var permissiveDateLayouts = []string{
	"2006-01-02",
	"1/2/2006", "01/02/2006",
	"January 2, 2006", "January 2 2006",
	"Jan 2, 2006", "Jan. 2, 2006", "Jan 2 2006",
}

// permissiveParseDate implements the chronology rules' permissive date
// parser (§4.4.6): it tries every documented layout, then falls back to
// a hand-rolled "D Month YYYY" parse, the one documented format
// time.Parse's reference layout can't express directly. This is an
// independent reimplementation from pkg/recognizer's date parsing —
// pkg/validator's Timeline validator reimplements it a third time, by
// design, so that a record which bypasses the consolidator's own check
// is still caught.
func permissiveParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range permissiveDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return parseDayMonthYear(s)
}

func parseDayMonthYear(s string) (time.Time, bool) {
	fields := strings.Fields(s)
	if len(fields) != 3 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(fields[0])
	if err != nil {
		return time.Time{}, false
	}
	month := parseMonthName(fields[1])
	if month == 0 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(fields[2])
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
}

var monthNamesByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March, "apr": time.April,
	"may": time.May, "jun": time.June, "jul": time.July, "aug": time.August,
	"sep": time.September, "oct": time.October, "nov": time.November, "dec": time.December,
}

func parseMonthName(s string) time.Month {
	s = strings.ToLower(s)
	if len(s) < 3 {
		return 0
	}
	return monthNamesByPrefix[s[:3]]
}

// buildTimeline implements §4.4.4: aggregate every document's dates,
// pick the labeled key dates (attorney notes win, else highest-
// confidence contextual match), cross-reference denial/adverse-action
// dates into damage events, validate chronology, and score timeline
// confidence.
func buildTimeline(notes attorneyNotes, caseInfoFilingDate string, allResults []models.ExtractionResult) models.CaseTimeline {
	var allDates []models.ExtractedDate
	for _, r := range allResults {
		allDates = append(allDates, r.ExtractedDates...)
	}
	if allDates == nil {
		allDates = []models.ExtractedDate{}
	}

	discovery := pickKeyDate(notes.DiscoveryDate, allDates, models.DateContextDiscovery)
	dispute := pickKeyDate(notes.DisputeDate, allDates, models.DateContextDispute)

	filing := caseInfoFilingDate
	if filing == "" {
		filing = pickKeyDate(notes.FilingDate, allDates, models.DateContextFiling)
	}

	var damageEvents []models.DamageEvent
	for _, r := range allResults {
		for _, ed := range r.ExtractedDates {
			if ed.Context != models.DateContextDenial && ed.Context != models.DateContextAdverseAction {
				continue
			}
			damageEvents = append(damageEvents, models.DamageEvent{
				Date:         preferParsed(ed),
				Description:  "adverse action / denial",
				Source:       ed.SourceDocument,
				Confidence:   ed.Confidence,
				EvidenceType: ed.Context.String(),
			})
		}
	}
	for event, dateStr := range notes.KeyDates {
		date := dateStr
		if t, ok := permissiveParseDate(dateStr); ok {
			date = t.Format("2006-01-02")
		}
		damageEvents = append(damageEvents, models.DamageEvent{
			Date: date, Description: event, Source: "attorney_notes", Confidence: 0.9,
		})
	}
	if damageEvents == nil {
		damageEvents = []models.DamageEvent{}
	}

	validation := validateChronology(discovery, dispute, filing, damageEvents, allResults)

	confidence := 0.0
	if dispute != "" {
		confidence += 50
	}
	if filing != "" {
		confidence += 40
	}
	if validation.IsValid {
		confidence += 10
	}
	if len(validation.Warnings) > 0 && len(validation.Errors) == 0 {
		confidence += 5
	}
	if confidence > 100 {
		confidence = 100
	}

	return models.CaseTimeline{
		DiscoveryDate:           discovery,
		DisputeDate:             dispute,
		FilingDate:              filing,
		DamageEvents:            damageEvents,
		DocumentDates:           allDates,
		ChronologicalValidation: validation,
		TimelineConfidence:      confidence,
	}
}

func preferParsed(ed models.ExtractedDate) string {
	if ed.ParsedDate != "" {
		return ed.ParsedDate
	}
	return ed.RawText
}

// pickKeyDate implements step 3 of §4.4.4: an attorney-notes label
// wins; otherwise the highest-confidence extracted date whose context
// matches ctx.
func pickKeyDate(label string, allDates []models.ExtractedDate, ctx models.DateContext) string {
	if label != "" {
		if t, ok := permissiveParseDate(label); ok {
			return t.Format("2006-01-02")
		}
		return label
	}

	best := models.ExtractedDate{}
	bestConf := -1.0
	for _, d := range allDates {
		if d.Context == ctx && d.Confidence > bestConf {
			best = d
			bestConf = d.Confidence
		}
	}
	if bestConf < 0 {
		return ""
	}
	return preferParsed(best)
}

// validateChronology implements the seven chronology rules (§4.4.6).
// is_valid is true iff no rule flagged as "error" fired; warnings never
// flip it.
func validateChronology(discovery, dispute, filing string, damageEvents []models.DamageEvent, allResults []models.ExtractionResult) models.ChronologicalValidation {
	var errs, warns []string

	dDiscovery, okDiscovery := permissiveParseDate(discovery)
	dDispute, okDispute := permissiveParseDate(dispute)
	dFiling, okFiling := permissiveParseDate(filing)

	if okDiscovery && okDispute && dDiscovery.After(dDispute) {
		errs = append(errs, "R1: discovery_date is after dispute_date")
	}
	if okDispute && okFiling && dDispute.After(dFiling) {
		errs = append(errs, "R2: dispute_date is after filing_date")
	}
	if okFiling {
		for _, de := range damageEvents {
			if dt, ok := permissiveParseDate(de.Date); ok && dt.After(dFiling) {
				warns = append(warns, fmt.Sprintf("R3: damage event %q date %s is after filing_date", de.Description, de.Date))
			}
		}
	}

	now := time.Now()
	checkFuture := func(label, s string) {
		if dt, ok := permissiveParseDate(s); ok && dt.After(now) {
			warns = append(warns, fmt.Sprintf("R4: %s %s is in the future", label, s))
		}
	}
	checkFuture("discovery_date", discovery)
	checkFuture("dispute_date", dispute)
	checkFuture("filing_date", filing)
	for _, de := range damageEvents {
		checkFuture("damage event date", de.Date)
	}
	for _, r := range allResults {
		for _, ed := range r.ExtractedDates {
			if ed.ParsedDate != "" {
				checkFuture("document date", ed.ParsedDate)
			}
		}
	}

	for _, r := range allResults {
		var appDate, denDate *models.ExtractedDate
		for i := range r.ExtractedDates {
			ed := &r.ExtractedDates[i]
			if ed.Context == models.DateContextApplication && appDate == nil {
				appDate = ed
			}
			if ed.Context == models.DateContextDenial && denDate == nil {
				denDate = ed
			}
		}
		if appDate == nil || denDate == nil {
			continue
		}
		da, oka := permissiveParseDate(preferParsed(*appDate))
		dd, okd := permissiveParseDate(preferParsed(*denDate))
		if oka && okd && da.After(dd) {
			errs = append(errs, fmt.Sprintf("R5: application_date is after denial_date in %s", r.FileName))
		}
	}

	if okDispute {
		var latest time.Time
		found := false
		for _, de := range damageEvents {
			if dt, ok := permissiveParseDate(de.Date); ok && (!found || dt.After(latest)) {
				latest = dt
				found = true
			}
		}
		if found && dDispute.After(latest) {
			warns = append(warns, "R6: dispute_date is after the latest damage event date")
		}
	}

	checkYear := func(label, s string) {
		if dt, ok := permissiveParseDate(s); ok && dt.Year() < 1990 {
			warns = append(warns, fmt.Sprintf("R7: %s year %d is before 1990", label, dt.Year()))
		}
	}
	checkYear("discovery_date", discovery)
	checkYear("dispute_date", dispute)
	checkYear("filing_date", filing)
	for _, de := range damageEvents {
		checkYear("damage event", de.Date)
	}

	if errs == nil {
		errs = []string{}
	}
	if warns == nil {
		warns = []string{}
	}

	return models.ChronologicalValidation{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warns,
	}
}
