package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/models"
)

func attyNotesResult(text string) models.ExtractionResult {
	return models.ExtractionResult{
		Success:       true,
		FileName:      "Atty_Notes.txt",
		ExtractedText: text,
	}
}

func denialLetterResult(fileName, text string) models.ExtractionResult {
	return models.ExtractionResult{
		Success:       true,
		FileName:      fileName,
		ExtractedText: text,
	}
}

// TestConsolidateScenario1BaselineFCRACase covers end-to-end scenario 1:
// attorney notes naming one furnisher defendant plus a clean chronology
// should yield the three standard CRAs added via the FCRA heuristic, a
// valid timeline, and high timeline confidence.
func TestConsolidateScenario1BaselineFCRACase(t *testing.T) {
	notes := attyNotesResult(`CASE_NUMBER: 1:25-cv-01987
COURT_NAME: United States District Court
COURT_DISTRICT: Southern District of New York
FILING_DATE: 2025-04-05
NAME: Eman Youssef
PHONE: 555-123-4567
ADDRESS:
123 Main St
Brooklyn, NY 11201
DEFENDANTS:
- TD Bank
DISCOVERY_DATE: 2024-06-01
DISPUTE_DATE: 2024-07-01
BACKGROUND:
Plaintiff disputed inaccurate information furnished under the FCRA to the credit bureaus.
`)
	denial := denialLetterResult("Equifax_Denial.pdf", "NOTICE OF DENIAL\nYour application for credit has been denied based on your Equifax credit report under the FCRA.\n")

	c := Consolidate([]models.ExtractionResult{notes, denial}, nil, events.New(nil))

	var keys []string
	for _, d := range c.Defendants {
		keys = append(keys, d.NormalizedKey)
	}
	assert.Contains(t, keys, "TRANSUNION")
	assert.Contains(t, keys, "EQUIFAX")
	assert.Contains(t, keys, "EXPERIAN")
	assert.Len(t, c.Defendants, 4)
	assert.True(t, c.CaseTimeline.ChronologicalValidation.IsValid)
	assert.GreaterOrEqual(t, c.CaseTimeline.TimelineConfidence, 90.0)
}

// TestConsolidateScenario2ChronologyViolation covers scenario 2: a
// dispute date after the filing date must flip is_valid to false with
// an R2 error, and the consistency bonus should no longer be counted
// toward extraction_confidence's underlying timeline validity.
func TestConsolidateScenario2ChronologyViolation(t *testing.T) {
	notes := attyNotesResult(`CASE_NUMBER: 1:25-cv-01987
NAME: Eman Youssef
FILING_DATE: 2025-04-05
DISPUTE_DATE: 2025-05-01
DEFENDANTS:
- TD Bank
`)

	c := Consolidate([]models.ExtractionResult{notes}, nil, events.New(nil))

	assert.False(t, c.CaseTimeline.ChronologicalValidation.IsValid)
	require.NotEmpty(t, c.CaseTimeline.ChronologicalValidation.Errors)
	assert.Contains(t, c.CaseTimeline.ChronologicalValidation.Errors[0], "R2")
}

// TestConsolidateScenario3AttorneyNotesAbsent covers scenario 3: with no
// attorney notes, the plaintiff name still comes from the highest-confidence
// per-document plaintiff entity, and causes of action fall back to the unselected
// default template.
func TestConsolidateScenario3AttorneyNotesAbsent(t *testing.T) {
	results := []models.ExtractionResult{
		{
			Success:  true,
			FileName: "Equifax_Denial.pdf",
			Entities: []models.LegalEntity{
				{Role: models.PartyRolePlaintiff, Name: "Eman Youssef", Confidence: 0.8},
			},
			ExtractedText: "NOTICE OF DENIAL\nadverse action taken under the FCRA regarding your credit report.\n",
		},
		{
			Success:  true,
			FileName: "Experian_Denial.pdf",
			Entities: []models.LegalEntity{
				{Role: models.PartyRolePlaintiff, Name: "Eman Youssef", Confidence: 0.7},
			},
			ExtractedText: "NOTICE OF DENIAL\nadverse action taken under the FCRA regarding your credit report.\n",
		},
	}

	c := Consolidate(results, nil, events.New(nil))

	assert.Equal(t, "Eman Youssef", c.Plaintiff.Name)
	require.NotEmpty(t, c.CausesOfAction)
	for _, cause := range c.CausesOfAction {
		for _, claim := range cause.LegalClaims {
			assert.False(t, claim.Selected)
		}
	}
}

// TestConsolidateScenario4DefendantDeduplication covers scenario 4: two
// summonses naming the same entity with different punctuation collapse
// to one defendant. Summonses themselves are excluded from consolidation
// inputs, so the candidate defendant names are supplied via attorney
// notes here to exercise the same normalization path.
func TestConsolidateScenario4DefendantDeduplication(t *testing.T) {
	notes := attyNotesResult(`NAME: Eman Youssef
DEFENDANTS:
- TRANS UNION LLC
- TRANS UNION, LLC
`)

	c := Consolidate([]models.ExtractionResult{notes}, nil, events.New(nil))

	require.Len(t, c.Defendants, 1)
	assert.Equal(t, "TransUnion", c.Defendants[0].ShortName)
}

// TestConsolidateScenario5FutureDatedDocument covers scenario 5: a
// future-dated document's date is retained in document_dates, and a
// chronology warning fires without invalidating the timeline.
func TestConsolidateScenario5FutureDatedDocument(t *testing.T) {
	results := []models.ExtractionResult{{
		Success:  true,
		FileName: "Equifax_Denial.pdf",
		ExtractedDates: []models.ExtractedDate{
			{RawText: "2099-01-01", ParsedDate: "2099-01-01", Context: models.DateContextDenial},
		},
		ExtractedText: "NOTICE OF DENIAL\nadverse action taken under the FCRA.\n",
	}}

	c := Consolidate(results, nil, events.New(nil))

	require.Len(t, c.CaseTimeline.DocumentDates, 1)
	assert.Equal(t, "2099-01-01", c.CaseTimeline.DocumentDates[0].ParsedDate)
	assert.True(t, c.CaseTimeline.ChronologicalValidation.IsValid)
	assert.NotEmpty(t, c.CaseTimeline.ChronologicalValidation.Warnings)
}

// TestConsolidateScenario6EmptyFolder covers scenario 6: with no
// processable files, the case still gets a case_id, empty fields
// elsewhere, and extraction_confidence of zero.
func TestConsolidateScenario6EmptyFolder(t *testing.T) {
	c := Consolidate(nil, nil, events.New(nil))

	assert.NotEmpty(t, c.CaseID)
	assert.Empty(t, c.Defendants)
	assert.Equal(t, 0.0, c.ExtractionConfidence)
}

// TestConsolidateLegalClaimsBlockIsAuthoritative covers P7: an explicit
// LEGAL_CLAIMS block wholly determines causes_of_action, with no corpus
// claims merged in.
func TestConsolidateLegalClaimsBlockIsAuthoritative(t *testing.T) {
	notes := attyNotesResult(`NAME: Eman Youssef
LEGAL_CLAIMS:
Count 1 - FCRA Negligent Violation:
- 15 U.S.C. § 1681e(b): Failure to follow reasonable procedures (TransUnion, Equifax)
`)

	c := Consolidate([]models.ExtractionResult{notes}, nil, events.New(nil))

	require.Len(t, c.CausesOfAction, 1)
	require.Len(t, c.CausesOfAction[0].LegalClaims, 1)
	assert.True(t, c.CausesOfAction[0].LegalClaims[0].Selected)
	assert.Equal(t, "15 U.S.C. § 1681e(b)", c.CausesOfAction[0].LegalClaims[0].Citation)
}

// TestConsolidateNeverFailsOnPanic covers §4.4.7: given malformed input
// (a plaintiff entity with no name, attorney notes with no text) and a
// nil broadcaster, Consolidate returns a case instead of panicking.
func TestConsolidateNeverFailsOnPanic(t *testing.T) {
	// A nil broadcaster is handled internally; exercise a case with
	// deliberately malformed data instead to confirm recovery.
	results := []models.ExtractionResult{{
		Success:  true,
		FileName: "Atty_Notes.txt",
		Entities: []models.LegalEntity{
			{Role: models.PartyRolePlaintiff, Confidence: 0.9},
		},
	}}

	assert.NotPanics(t, func() {
		c := Consolidate(results, nil, nil)
		assert.NotNil(t, c)
	})
}

func TestConsolidateAcceptsNilBroadcaster(t *testing.T) {
	c := Consolidate(nil, nil, nil)
	assert.NotNil(t, c)
}
