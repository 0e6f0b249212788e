package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/models"
)

func TestParseNorthStarDamagesStructuredBlock(t *testing.T) {
	text := `DAMAGES:
FINANCIAL: denied a mortgage refinance
EMOTIONAL: severe anxiety and sleeplessness
PERSONAL_COSTS: time spent disputing the report
`
	items, found := parseNorthStarDamages(text)

	require.True(t, found)
	require.Len(t, items, 3)
	assert.Equal(t, models.DamageCategoryOther, items[0].Category)
	assert.Equal(t, models.DamageCategoryEmotional, items[1].Category)
	assert.Equal(t, models.DamageCategoryTimeResources, items[2].Category)
	for _, item := range items {
		assert.True(t, item.Selected)
	}
}

func TestParseNorthStarDamagesFallsBackOnFlatLayout(t *testing.T) {
	text := `DAMAGES:
- denied a mortgage
- emotional distress
`
	_, found := parseNorthStarDamages(text)
	assert.False(t, found)
}

func TestBuildDamagesUsesNorthStarWhenPresent(t *testing.T) {
	text := "DAMAGES:\nEMOTIONAL: severe anxiety\n"
	damages := buildDamages(text, nil)

	require.Len(t, damages.StructuredDamages, 1)
	assert.Equal(t, "emotional", damages.StructuredDamages[0].Type)
}

func TestBuildDamagesAttachesDenialDetailsFromAllResults(t *testing.T) {
	result := models.ExtractionResult{
		Success:       true,
		FileName:      "Capital_One_Denial.pdf",
		ExtractedText: "NOTICE OF DENIAL\nYour application for a Capital One credit card has been denied.\nReasons for this action:\n- Insufficient credit history\n",
	}

	damages := buildDamages("", []models.ExtractionResult{result})

	require.Len(t, damages.DenialDetails, 1)
	assert.Equal(t, "Capital One", damages.DenialDetails[0].Creditor)
	assert.Equal(t, []string{"Insufficient credit history"}, damages.DenialDetails[0].Reasons)
}

func TestBuildDamagesNeverReturnsNilSlices(t *testing.T) {
	damages := buildDamages("", nil)
	assert.NotNil(t, damages.StructuredDamages)
	assert.NotNil(t, damages.CategorizedDamages)
}
