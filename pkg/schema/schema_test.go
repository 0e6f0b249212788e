package schema

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/models"
)

func sampleCase() *models.ConsolidatedCase {
	c := models.NewConsolidatedCase("youssef-transunion-20250405")
	c.CaseInformation.CourtName = "United States District Court"
	c.CaseInformation.CourtDistrict = "Southern District of New York"
	c.CaseInformation.CaseNumber = "1:25-cv-01987"
	c.CaseInformation.FilingDate = "2025-04-05"
	c.Plaintiff.Name = "Eman Youssef"
	c.Defendants = []models.Defendant{{Name: "TransUnion LLC", NormalizedKey: "TRANSUNION"}}
	return c
}

func TestRenderProducesValidJSON(t *testing.T) {
	out, err := Render(sampleCase())
	require.NoError(t, err)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &v))
	assert.Contains(t, v, "case_information")
	assert.Contains(t, v, "metadata")
}

// TestRenderEmitsPresentButEmptyUnsourcedSections documents that
// prayer_for_relief renders as present-but-empty rather than omitted,
// since the consolidator has no upstream source for relief text, and
// that filing_details is present and carries the case's filing date.
func TestRenderEmitsPresentButEmptyUnsourcedSections(t *testing.T) {
	out, err := Render(sampleCase())
	require.NoError(t, err)

	var v map[string]interface{}
	require.NoError(t, json.Unmarshal(out, &v))

	prayer, ok := v["prayer_for_relief"].(map[string]interface{})
	require.True(t, ok)
	assert.Empty(t, prayer["damages"])

	filing, ok := v["filing_details"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "2025-04-05", filing["date"])
}

func TestValidatePassesOnWellFormedCase(t *testing.T) {
	warnings := Validate(sampleCase())
	assert.Empty(t, warnings)
}

func TestValidatePassesOnEmptyCase(t *testing.T) {
	c := models.NewConsolidatedCase("")
	warnings := Validate(c)
	assert.Empty(t, warnings)
}

// TestRenderRoundTripIsByteIdenticalForSameInput covers P5: rendering
// the same ConsolidatedCase twice produces byte-identical JSON.
func TestRenderRoundTripIsByteIdenticalForSameInput(t *testing.T) {
	c := sampleCase()
	first, err := Render(c)
	require.NoError(t, err)
	second, err := Render(c)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestWriteHydratedWritesExpectedFileName(t *testing.T) {
	dir := t.TempDir()
	warnings, err := WriteHydrated(sampleCase(), dir, "youssef_transunion_20250405")
	require.NoError(t, err)
	assert.Empty(t, warnings)

	path := filepath.Join(dir, "hydrated_FCRA_youssef_transunion_20250405.json")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
