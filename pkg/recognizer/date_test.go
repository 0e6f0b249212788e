package recognizer

import (
	"testing"

	"case-consolidator-fiber/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractDatesParsesAndClassifies(t *testing.T) {
	text := "Plaintiff disputed the entry on January 15, 2024 with the bureau."
	dates := ExtractDates(text, "notes.txt")
	require.Len(t, dates, 1)
	assert.Equal(t, "2024-01-15", dates[0].ParsedDate)
	assert.Equal(t, models.DateContextDispute, dates[0].Context)
	assert.Greater(t, dates[0].Confidence, 0.5)
}

func TestExtractDatesUnknownContextStillRecorded(t *testing.T) {
	text := "Account was opened 03/04/2019."
	dates := ExtractDates(text, "notes.txt")
	require.Len(t, dates, 1)
	assert.Equal(t, models.DateContextUnknown, dates[0].Context)
}

func TestExtractDatesPenalizesImplausibleYear(t *testing.T) {
	text := "Filed on 01/01/1800."
	dates := ExtractDates(text, "notes.txt")
	require.Len(t, dates, 1)
	assert.Less(t, dates[0].Confidence, 0.8)
}

func TestParseFlexibleDateVariants(t *testing.T) {
	cases := []string{"January 2, 2006", "Jan 2, 2006", "1/2/2006", "2006-01-02", "2 January 2006"}
	for _, c := range cases {
		_, ok := parseFlexibleDate(c, "")
		assert.Truef(t, ok, "expected %q to parse", c)
	}
}
