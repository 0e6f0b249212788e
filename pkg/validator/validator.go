// Package validator implements the legal validators (C5): a suite of
// independent checks run over a finished ConsolidatedCase, each
// producing human-readable issue strings rather than failing the case.
package validator

import (
	"fmt"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// Result is the outcome of running the full validator suite.
type Result struct {
	IsValid bool     `json:"is_valid"`
	Issues  []string `json:"issues"`
}

// creditBureauIndicators is the fixed set the FCRA validator matches a
// defendant's normalized key against.
var creditBureauIndicators = []string{"TRANSUNION", "EQUIFAX", "EXPERIAN"}

// furnisherIndicators are the substring markers the FCRA validator
// looks for in a defendant's display name to treat it as a furnisher.
var furnisherIndicators = []string{"bank", "credit", "card", "lending", "financial", "capital"}

// Validate runs the FCRA, Completeness, and Timeline validators and
// aggregates their issues. is_valid iff every validator reported none.
func Validate(c *models.ConsolidatedCase) Result {
	var issues []string
	issues = append(issues, ValidateFCRA(c)...)
	issues = append(issues, ValidateCompleteness(c)...)
	issues = append(issues, ValidateTimeline(c)...)

	if issues == nil {
		issues = []string{}
	}
	return Result{IsValid: len(issues) == 0, Issues: issues}
}

// ValidateFCRA checks the FCRA-specific structural requirements: at
// least one credit-bureau defendant, at least one furnisher defendant,
// at least one dispute event, at least one adverse-action event.
func ValidateFCRA(c *models.ConsolidatedCase) []string {
	var issues []string

	hasBureau, hasFurnisher := false, false
	for _, d := range c.Defendants {
		if isCreditBureau(d) {
			hasBureau = true
		}
		if isFurnisher(d) {
			hasFurnisher = true
		}
	}
	if !hasBureau {
		issues = append(issues, "no credit-reporting-agency defendant found")
	}
	if !hasFurnisher {
		issues = append(issues, "no furnisher defendant found")
	}

	if c.CaseTimeline.DisputeDate == "" {
		issues = append(issues, "no dispute event found in timeline")
	}
	if !hasAdverseActionEvent(c) {
		issues = append(issues, "no adverse-action event found")
	}

	return issues
}

func isCreditBureau(d models.Defendant) bool {
	for _, k := range creditBureauIndicators {
		if d.NormalizedKey == k {
			return true
		}
	}
	return false
}

func isFurnisher(d models.Defendant) bool {
	name := strings.ToLower(d.Name)
	for _, ind := range furnisherIndicators {
		if strings.Contains(name, ind) {
			return true
		}
	}
	return false
}

func hasAdverseActionEvent(c *models.ConsolidatedCase) bool {
	if len(c.Damages.DenialDetails) > 0 {
		return true
	}
	for _, e := range c.CaseTimeline.DamageEvents {
		if e.EvidenceType == models.DateContextDenial.String() || e.EvidenceType == models.DateContextAdverseAction.String() {
			return true
		}
	}
	return false
}

// ValidateCompleteness checks the minimum record-completeness bar:
// plaintiff name & city/state, at least one named defendant, case
// jurisdiction and case number, and at least two timeline events.
func ValidateCompleteness(c *models.ConsolidatedCase) []string {
	var issues []string

	if c.Plaintiff.Name == "" {
		issues = append(issues, "plaintiff name is missing")
	}
	if c.Plaintiff.Address.City == "" || c.Plaintiff.Address.State == "" {
		issues = append(issues, "plaintiff city/state is missing")
	}

	namedDefendants := 0
	for _, d := range c.Defendants {
		if d.Name != "" {
			namedDefendants++
		}
	}
	if namedDefendants == 0 {
		issues = append(issues, "no named defendant found")
	}

	if c.CaseInformation.CourtDistrict == "" {
		issues = append(issues, "case jurisdiction (court district) is missing")
	}
	if c.CaseInformation.CaseNumber == "" {
		issues = append(issues, "case number is missing")
	}

	if timelineEventCount(c) < 2 {
		issues = append(issues, "fewer than 2 timeline events found")
	}

	return issues
}

func timelineEventCount(c *models.ConsolidatedCase) int {
	count := 0
	if c.CaseTimeline.DiscoveryDate != "" {
		count++
	}
	if c.CaseTimeline.DisputeDate != "" {
		count++
	}
	if c.CaseTimeline.FilingDate != "" {
		count++
	}
	count += len(c.CaseTimeline.DamageEvents)
	return count
}

// ValidateTimeline independently re-checks chronology rules R1, R2, R3
// and R7 (the last for damage events) directly over the persisted
// record's CaseTimeline, so a record that reaches the validator by some
// path other than pkg/consolidator (e.g. loaded back from disk) is still
// checked rather than trusted on faith. R4, R5 and R6 are not
// re-checked; when the stored ChronologicalValidation is invalid, its
// stored errors are appended to the issues.
func ValidateTimeline(c *models.ConsolidatedCase) []string {
	var issues []string
	t := c.CaseTimeline

	discovery, okDiscovery := parseTimelineDate(t.DiscoveryDate)
	dispute, okDispute := parseTimelineDate(t.DisputeDate)
	filing, okFiling := parseTimelineDate(t.FilingDate)

	if okDiscovery && okDispute && discovery.After(dispute) {
		issues = append(issues, "R1: discovery_date is after dispute_date")
	}
	if okDispute && okFiling && dispute.After(filing) {
		issues = append(issues, "R2: dispute_date is after filing_date")
	}
	if okFiling {
		for _, e := range t.DamageEvents {
			if dt, ok := parseTimelineDate(e.Date); ok && dt.After(filing) {
				issues = append(issues, fmt.Sprintf("R3: damage event %q is after filing_date", e.Description))
			}
		}
	}
	for _, e := range t.DamageEvents {
		if dt, ok := parseTimelineDate(e.Date); ok && dt.Year() < 1990 {
			issues = append(issues, fmt.Sprintf("R7: damage event %q year %d is before 1990", e.Description, dt.Year()))
		}
	}

	if !t.ChronologicalValidation.IsValid {
		issues = append(issues, t.ChronologicalValidation.Errors...)
	}

	return issues
}
