package processor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/extractor"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestProcessDecodesAndRecognizes(t *testing.T) {
	path := writeTemp(t, "Atty_Notes.txt", "CASE_NUMBER: 1:25-cv-01987\nFiled on January 2, 2024.\n")
	reg := extractor.NewRegistry(extractor.NewTextDecoder())
	p := New(reg, events.New(nil))

	result := p.Process(path)

	assert.True(t, result.Success)
	assert.Equal(t, "1:25-cv-01987", result.CaseInformation.CaseNumber)
	assert.NotEmpty(t, result.ExtractedDates)
	assert.Equal(t, "text", result.EngineName)
	assert.Greater(t, result.QualityMetrics.Score, 0)
}

func TestProcessSurfacesDecodeErrorsAsResult(t *testing.T) {
	path := writeTemp(t, "case.xyz", "whatever")
	reg := extractor.NewRegistry(extractor.NewTextDecoder())
	p := New(reg, events.New(nil))

	result := p.Process(path)

	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestProcessAllPreservesOrder(t *testing.T) {
	a := writeTemp(t, "a.txt", "first document about a dispute")
	b := writeTemp(t, "b.txt", "second document about a denial")
	reg := extractor.NewRegistry(extractor.NewTextDecoder())
	p := New(reg, events.New(nil))

	results := p.ProcessAll([]string{a, b})

	require.Len(t, results, 2)
	assert.Equal(t, "a.txt", results[0].FileName)
	assert.Equal(t, "b.txt", results[1].FileName)
}
