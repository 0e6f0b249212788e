package consolidator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/models"
)

func TestPermissiveParseDateAcceptsDocumentedLayouts(t *testing.T) {
	cases := []string{
		"2025-04-05", "4/5/2025", "04/05/2025",
		"April 5, 2025", "April 5 2025", "Apr 5, 2025", "Apr. 5, 2025",
		"5 April 2025",
	}
	for _, s := range cases {
		_, ok := permissiveParseDate(s)
		assert.True(t, ok, "expected %q to parse", s)
	}
}

func TestPermissiveParseDateRejectsGarbage(t *testing.T) {
	_, ok := permissiveParseDate("not a date")
	assert.False(t, ok)
	_, ok = permissiveParseDate("")
	assert.False(t, ok)
}

// TestValidateChronologyR1DiscoveryAfterDispute covers R1.
func TestValidateChronologyR1DiscoveryAfterDispute(t *testing.T) {
	v := validateChronology("2025-03-01", "2025-02-01", "2025-04-01", nil, nil)
	require.False(t, v.IsValid)
	assert.Contains(t, v.Errors[0], "R1")
}

// TestValidateChronologyR2DisputeAfterFiling covers R2 and scenario 2
// from the end-to-end scenario set (a dispute date after the filing
// date must flip is_valid to false and reference R2).
func TestValidateChronologyR2DisputeAfterFiling(t *testing.T) {
	v := validateChronology("", "2025-05-01", "2025-04-05", nil, nil)
	require.False(t, v.IsValid)
	assert.Contains(t, v.Errors[0], "R2")
}

// TestValidateChronologyR3DamageEventAfterFilingIsWarningOnly covers R3:
// a damage event after the filing date warns but never invalidates.
func TestValidateChronologyR3DamageEventAfterFilingIsWarningOnly(t *testing.T) {
	events := []models.DamageEvent{{Date: "2025-06-01", Description: "late damage event"}}
	v := validateChronology("", "2025-01-01", "2025-04-05", events, nil)

	assert.True(t, v.IsValid)
	require.NotEmpty(t, v.Warnings)
	assert.Contains(t, v.Warnings[0], "R3")
}

// TestValidateChronologyR4FutureDateIsWarningOnly covers scenario 5:
// a future-dated document is retained and only warns (R4), is_valid
// stays true.
func TestValidateChronologyR4FutureDateIsWarningOnly(t *testing.T) {
	results := []models.ExtractionResult{{
		ExtractedDates: []models.ExtractedDate{{ParsedDate: "2099-01-01"}},
	}}
	v := validateChronology("", "", "", nil, results)

	assert.True(t, v.IsValid)
	assert.Contains(t, strings.Join(v.Warnings, "\n"), "R4")
}

// TestValidateChronologyR5ApplicationAfterDenialInSameDocument covers
// R5, and P3: a record flagged invalid by R5 should have an is_valid of
// false.
func TestValidateChronologyR5ApplicationAfterDenialInSameDocument(t *testing.T) {
	results := []models.ExtractionResult{{
		FileName: "Capital_One_Denial.pdf",
		ExtractedDates: []models.ExtractedDate{
			{Context: models.DateContextApplication, ParsedDate: "2025-03-01"},
			{Context: models.DateContextDenial, ParsedDate: "2025-02-01"},
		},
	}}
	v := validateChronology("", "", "", nil, results)

	require.False(t, v.IsValid)
	assert.Contains(t, v.Errors[0], "R5")
}

// TestValidateChronologyR6DisputeAfterLatestDamageEventIsWarningOnly
// covers R6.
func TestValidateChronologyR6DisputeAfterLatestDamageEventIsWarningOnly(t *testing.T) {
	events := []models.DamageEvent{{Date: "2025-01-01"}}
	v := validateChronology("", "2025-02-01", "", events, nil)

	assert.True(t, v.IsValid)
	assert.Contains(t, strings.Join(v.Warnings, "\n"), "R6")
}

// TestValidateChronologyR7YearBefore1990IsWarningOnly covers R7.
func TestValidateChronologyR7YearBefore1990IsWarningOnly(t *testing.T) {
	v := validateChronology("1985-01-01", "", "", nil, nil)

	assert.True(t, v.IsValid)
	assert.Contains(t, strings.Join(v.Warnings, "\n"), "R7")
}

func TestValidateChronologyCleanTimelineIsValidWithNoWarnings(t *testing.T) {
	v := validateChronology("2025-01-01", "2025-02-01", "2025-04-05", nil, nil)

	assert.True(t, v.IsValid)
	assert.Empty(t, v.Errors)
	assert.Empty(t, v.Warnings)
}

func TestBuildTimelineAttorneyNotesLabelWinsOverExtractedDates(t *testing.T) {
	notes := attorneyNotes{DisputeDate: "2025-02-01", KeyDates: map[string]string{}}
	results := []models.ExtractionResult{{
		ExtractedDates: []models.ExtractedDate{
			{Context: models.DateContextDispute, ParsedDate: "2025-09-09", Confidence: 0.99},
		},
	}}

	timeline := buildTimeline(notes, "2025-04-05", results)

	assert.Equal(t, "2025-02-01", timeline.DisputeDate)
}

func TestBuildTimelineConfidenceScoring(t *testing.T) {
	notes := attorneyNotes{DisputeDate: "2025-02-01", KeyDates: map[string]string{}}
	timeline := buildTimeline(notes, "2025-04-05", nil)

	// dispute present (+50), filing present (+40), valid (+10), no
	// warnings/errors so no +5 bonus => 100.
	assert.Equal(t, 100.0, timeline.TimelineConfidence)
}

func TestBuildTimelineNeverReturnsNilSlices(t *testing.T) {
	timeline := buildTimeline(attorneyNotes{KeyDates: map[string]string{}}, "", nil)
	assert.NotNil(t, timeline.DamageEvents)
	assert.NotNil(t, timeline.DocumentDates)
}
