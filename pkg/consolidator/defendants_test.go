package consolidator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuildDefendantsDeduplicatesCaseVariants covers P6: adding a
// duplicate-named defendant (spelled two different ways) never changes
// the defendant count, and P1: the surviving defendants are pairwise
// distinct under the normalization function.
func TestBuildDefendantsDeduplicatesCaseVariants(t *testing.T) {
	notesDefendants := []string{"TRANS UNION LLC", "TRANS UNION, LLC"}

	defendants, _ := buildDefendants(notesDefendants, "", "")

	require.Len(t, defendants, 1)
	assert.Equal(t, "TRANSUNION", defendants[0].NormalizedKey)

	seen := make(map[string]bool)
	for _, d := range defendants {
		assert.False(t, seen[d.NormalizedKey], "duplicate normalized key %s", d.NormalizedKey)
		seen[d.NormalizedKey] = true
	}
}

// TestBuildDefendantsExcludesPlaintiffName covers P2: the plaintiff name
// never appears among defendants, even if a source document lists it as
// one.
func TestBuildDefendantsExcludesPlaintiffName(t *testing.T) {
	notesDefendants := []string{"Eman Youssef", "TD Bank"}

	defendants, warnings := buildDefendants(notesDefendants, "", "Eman Youssef")

	require.Len(t, defendants, 1)
	assert.Equal(t, "TD Bank", defendants[0].Name)
	assert.NotEmpty(t, warnings)
}

func TestFCRAHeuristicAddsStandardCRAsWhenIndicatorsPresent(t *testing.T) {
	text := "Plaintiff disputed a fraudulent entry furnished to Chase Bank on her credit report under the FCRA."

	defendants, _ := buildDefendants(nil, text, "")

	var keys []string
	for _, d := range defendants {
		keys = append(keys, d.NormalizedKey)
	}
	assert.Contains(t, keys, "TRANSUNION")
	assert.Contains(t, keys, "EQUIFAX")
	assert.Contains(t, keys, "EXPERIAN")
}

func TestFCRAHeuristicSkippedWithoutIndicators(t *testing.T) {
	defendants, _ := buildDefendants(nil, "This document mentions nothing relevant.", "")
	assert.Empty(t, defendants)
}

func TestBuildDefendantsNeverReturnsNilSlice(t *testing.T) {
	defendants, _ := buildDefendants(nil, "", "")
	assert.NotNil(t, defendants)
	assert.Empty(t, defendants)
}
