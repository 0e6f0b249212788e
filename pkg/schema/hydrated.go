package schema

import "case-consolidator-fiber/pkg/models"

// hydratedRecord is the documented top-level JSON shape (spec §6.1) —
// deliberately a distinct type from models.ConsolidatedCase, which is
// flatter and organized for the Go pipeline's internal passing-around
// rather than for the wire contract external tooling (and the
// JSON-Schema validation below) expects.
type hydratedRecord struct {
	CaseInformation     hydratedCaseInfo        `json:"case_information"`
	Parties             hydratedParties         `json:"parties"`
	PlaintiffCounsel    models.PlaintiffCounsel `json:"plaintiff_counsel"`
	JurisdictionVenue   jurisdictionVenue       `json:"jurisdiction_and_venue"`
	PreliminaryStatement string                 `json:"preliminary_statement"`
	FactualBackground   models.FactualBackground `json:"factual_background"`
	CausesOfAction      []models.CauseOfAction  `json:"causes_of_action"`
	Damages             models.Damages          `json:"damages"`
	CaseTimeline        models.CaseTimeline     `json:"case_timeline"`
	PrayerForRelief     prayerForRelief         `json:"prayer_for_relief"`
	JuryDemand          bool                    `json:"jury_demand"`
	FilingDetails       filingDetails           `json:"filing_details"`
	Metadata            hydratedMetadata        `json:"metadata"`
}

type hydratedCaseInfo struct {
	CourtName     string `json:"court_name"`
	CourtDistrict string `json:"court_district"`
	CaseNumber    string `json:"case_number"`
	DocumentTitle string `json:"document_title"`
	DocumentType  string `json:"document_type"`
}

type hydratedParties struct {
	Plaintiff  models.Plaintiff   `json:"plaintiff"`
	Defendants []models.Defendant `json:"defendants"`
}

// jurisdictionVenue and prayerForRelief have no upstream source in
// models.ConsolidatedCase: the consolidator doesn't populate narrative
// jurisdiction/venue or prayer-for-relief text, so these render as
// documented-but-empty sections rather than invented content.
// filingDetails carries the case's filing date; its signature date is
// never set.
type jurisdictionVenue struct {
	FederalJurisdiction       string `json:"federal_jurisdiction,omitempty"`
	SupplementalJurisdiction  string `json:"supplemental_jurisdiction,omitempty"`
	Venue                     string `json:"venue,omitempty"`
}

type prayerForRelief struct {
	Damages          []string `json:"damages"`
	InjunctiveRelief []string `json:"injunctive_relief"`
	CostsAndFees     []string `json:"costs_and_fees"`
}

type filingDetails struct {
	Date          string `json:"date,omitempty"`
	SignatureDate string `json:"signature_date,omitempty"`
}

type hydratedMetadata struct {
	TigerCaseID   string `json:"tiger_case_id"`
	FormatVersion string `json:"format_version"`
}

// formatVersion is the documented hydrated-schema version stamp.
const formatVersion = "3.0"

// render maps a ConsolidatedCase onto the documented hydrated shape.
func render(c *models.ConsolidatedCase) hydratedRecord {
	return hydratedRecord{
		CaseInformation: hydratedCaseInfo{
			CourtName:     c.CaseInformation.CourtName,
			CourtDistrict: c.CaseInformation.CourtDistrict,
			CaseNumber:    c.CaseInformation.CaseNumber,
			DocumentTitle: "COMPLAINT",
			DocumentType:  c.CaseInformation.DocumentType,
		},
		Parties: hydratedParties{
			Plaintiff:  c.Plaintiff,
			Defendants: c.Defendants,
		},
		PlaintiffCounsel:  c.PlaintiffCounsel,
		FactualBackground: c.FactualBackground,
		CausesOfAction:    c.CausesOfAction,
		Damages:           c.Damages,
		CaseTimeline:      c.CaseTimeline,
		PrayerForRelief: prayerForRelief{
			Damages:          []string{},
			InjunctiveRelief: []string{},
			CostsAndFees:     []string{},
		},
		JuryDemand: c.CaseInformation.JuryDemand,
		FilingDetails: filingDetails{
			Date: c.CaseInformation.FilingDate,
		},
		Metadata: hydratedMetadata{
			TigerCaseID:   c.CaseID,
			FormatVersion: formatVersion,
		},
	}
}
