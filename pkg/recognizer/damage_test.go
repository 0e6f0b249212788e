package recognizer

import (
	"testing"

	"case-consolidator-fiber/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDamagesBlock = `DAMAGES:
- Denied Auto Loan: Application rejected due to inaccurate trade line (see attached denial letter)
- Emotional: Plaintiff suffered significant stress and anxiety over the dispute
- Spent considerable time on phone calls with the bureau

LEGAL_CLAIMS:
`

func TestExtractDamagesClassifiesFromTable(t *testing.T) {
	items := ExtractDamages(sampleDamagesBlock)
	require.Len(t, items, 3)

	assert.Equal(t, models.DamageCategoryCreditDenial, items[0].Category)
	assert.Equal(t, "auto_loan_denial", items[0].Type)
	assert.True(t, items[0].EvidenceAvailable)

	assert.Equal(t, models.DamageCategoryEmotional, items[1].Category)
}

func TestExtractDamagesKeywordFallback(t *testing.T) {
	items := ExtractDamages(sampleDamagesBlock)
	require.Len(t, items, 3)
	assert.Equal(t, models.DamageCategoryTimeResources, items[2].Category)
	assert.Equal(t, "unclassified", items[2].Type)
}

func TestGroupDamagesByCategorySeedsAllCategories(t *testing.T) {
	grouped := GroupDamagesByCategory(nil)
	for _, c := range models.AllDamageCategories() {
		assert.Contains(t, grouped, c)
		assert.Empty(t, grouped[c])
	}
}
