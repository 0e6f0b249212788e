package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"case-consolidator-fiber/pkg/models"
)

func TestBuildCaseInformationNotesWinOverMajorityVote(t *testing.T) {
	notes := attorneyNotes{CaseNumber: "1:25-cv-01987", KeyDates: map[string]string{}}
	results := []models.ExtractionResult{
		{CaseInformation: models.CaseInformationFields{CaseNumber: "1:25-cv-00001"}},
	}

	ci, _ := buildCaseInformation(notes, results)

	assert.Equal(t, "1:25-cv-01987", ci.CaseNumber)
}

func TestBuildCaseInformationFallsBackToMajorityVote(t *testing.T) {
	notes := attorneyNotes{KeyDates: map[string]string{}}
	results := []models.ExtractionResult{
		{CaseInformation: models.CaseInformationFields{CourtName: "SDNY"}},
		{CaseInformation: models.CaseInformationFields{CourtName: "SDNY"}},
		{CaseInformation: models.CaseInformationFields{CourtName: "EDNY"}},
	}

	ci, warnings := buildCaseInformation(notes, results)

	assert.Equal(t, "SDNY", ci.CourtName)
	assert.Len(t, warnings, 1)
}

func TestBuildCaseInformationWarnsOnConflictingMajorityVote(t *testing.T) {
	notes := attorneyNotes{KeyDates: map[string]string{}}
	results := []models.ExtractionResult{
		{CaseInformation: models.CaseInformationFields{CourtName: "SDNY"}},
		{CaseInformation: models.CaseInformationFields{CourtName: "EDNY"}},
	}

	ci, warnings := buildCaseInformation(notes, results)

	assert.Equal(t, "SDNY", ci.CourtName) // first-seen tie-break
	assert.NotEmpty(t, warnings)
}

func TestMajorityVoteNoValues(t *testing.T) {
	winner, warning := majorityVote(func(r models.ExtractionResult) string { return "" }, nil)
	assert.Empty(t, winner)
	assert.Empty(t, warning)
}

func TestBuildCaseInformationAlwaysFCRADocumentType(t *testing.T) {
	ci, _ := buildCaseInformation(attorneyNotes{KeyDates: map[string]string{}}, nil)
	assert.Equal(t, "FCRA", ci.DocumentType)
}
