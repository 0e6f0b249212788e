package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDefendantKeyCommaInsensitive(t *testing.T) {
	withComma := normalizeDefendantKey("Equifax Information Services, LLC")
	withoutComma := normalizeDefendantKey("Equifax Information Services LLC")

	assert.Equal(t, "EQUIFAX", withComma)
	assert.Equal(t, "EQUIFAX", withoutComma)
}

func TestNormalizeDefendantKeyTransUnionVariants(t *testing.T) {
	assert.Equal(t, "TRANSUNION", normalizeDefendantKey("TRANS UNION LLC"))
	assert.Equal(t, "TRANSUNION", normalizeDefendantKey("Trans Union, LLC"))
	assert.Equal(t, "TRANSUNION", normalizeDefendantKey("TransUnion LLC"))
}

func TestNormalizeDefendantKeyStripsParentheticalsAndPunctuation(t *testing.T) {
	key := normalizeDefendantKey("TD Bank, N.A. (formerly TD Banknorth).")
	assert.Equal(t, "TD BANK NA", key)
}

func TestBuildDefendantCanonicalVsGeneric(t *testing.T) {
	equifax := buildDefendant("Equifax Information Services, LLC")
	assert.Equal(t, "Equifax Information Services LLC", equifax.Name)
	assert.Equal(t, "EQUIFAX", equifax.NormalizedKey)
	assert.Equal(t, "credit_reporting_agency", equifax.Type)

	generic := buildDefendant("TD Bank")
	assert.Equal(t, "TD Bank", generic.Name)
	assert.Equal(t, "unknown", generic.Type)
	assert.NotEmpty(t, generic.NormalizedKey)
}
