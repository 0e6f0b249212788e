package output

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"case-consolidator-fiber/pkg/models"
)

type failingBackend struct{ calls int }

func (b *failingBackend) WriteFile(relPath string, data []byte) error {
	b.calls++
	return assert.AnError
}

type recordingBackend struct{ writes []string }

func (b *recordingBackend) WriteFile(relPath string, data []byte) error {
	b.writes = append(b.writes, relPath)
	return nil
}

func TestLocalBackendWritesUnderRoot(t *testing.T) {
	root := t.TempDir()
	b := NewLocalBackend(root)

	require.NoError(t, b.WriteFile("cases/foo/bar.txt", []byte("hello")))

	data, err := os.ReadFile(filepath.Join(root, "cases/foo/bar.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

// TestMirroredBackendSwallowsSecondaryFailure covers the documented
// best-effort mirror semantics: the primary write's result is
// authoritative even when the secondary fails.
func TestMirroredBackendSwallowsSecondaryFailure(t *testing.T) {
	primary := &recordingBackend{}
	secondary := &failingBackend{}
	mb := &MirroredBackend{Primary: primary, Secondary: secondary}

	err := mb.WriteFile("case_info.json", []byte("{}"))

	require.NoError(t, err)
	assert.Equal(t, 1, secondary.calls)
	assert.Equal(t, []string{"case_info.json"}, primary.writes)
}

func TestMirroredBackendPropagatesPrimaryFailure(t *testing.T) {
	primary := &failingBackend{}
	secondary := &recordingBackend{}
	mb := &MirroredBackend{Primary: primary, Secondary: secondary}

	err := mb.WriteFile("case_info.json", []byte("{}"))

	assert.Error(t, err)
	assert.Empty(t, secondary.writes)
}

func TestNewManagerCreatesDirectoryLayout(t *testing.T) {
	root := t.TempDir()
	backend := NewLocalBackend(root)

	_, err := NewManager(backend, root, "youssef_transunion_20250405")
	require.NoError(t, err)

	for _, sub := range []string{"processed", "raw_text", "metadata"} {
		info, err := os.Stat(filepath.Join(root, "cases", "youssef_transunion_20250405", sub))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestWriteDocumentWritesAllRenditions(t *testing.T) {
	root := t.TempDir()
	backend := NewLocalBackend(root)
	mgr, err := NewManager(backend, root, "case-1")
	require.NoError(t, err)

	result := models.ExtractionResult{
		FileName:      "Equifax_Denial.pdf",
		ExtractedText: "NOTICE OF DENIAL",
		Success:       true,
		EngineName:    "pdfium",
	}
	require.NoError(t, mgr.WriteDocument(result, WriteOptions{}))

	caseDir := filepath.Join(root, "cases", "case-1")
	for _, rel := range []string{
		filepath.Join("processed", "Equifax_Denial.txt"),
		filepath.Join("processed", "Equifax_Denial.json"),
		filepath.Join("processed", "Equifax_Denial.md"),
		filepath.Join("raw_text", "Equifax_Denial_raw.txt"),
		filepath.Join("metadata", "Equifax_Denial_metadata.json"),
	} {
		_, err := os.Stat(filepath.Join(caseDir, rel))
		assert.NoError(t, err, "expected %s to exist", rel)
	}
}

func TestWriteCaseRootWritesSummaryFiles(t *testing.T) {
	root := t.TempDir()
	backend := NewLocalBackend(root)
	mgr, err := NewManager(backend, root, "case-1")
	require.NoError(t, err)

	c := models.NewConsolidatedCase("case-1")
	c.Plaintiff.Name = "Eman Youssef"
	require.NoError(t, mgr.WriteCaseRoot(c, WriteOptions{}))

	caseDir := filepath.Join(root, "cases", "case-1")
	data, err := os.ReadFile(filepath.Join(caseDir, "case_info.json"))
	require.NoError(t, err)
	var info models.CaseInformation
	require.NoError(t, json.Unmarshal(data, &info))
	assert.Equal(t, "FCRA", info.DocumentType)

	_, err = os.Stat(filepath.Join(caseDir, "complaint.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(caseDir, "case_summary.md"))
	assert.NoError(t, err)
}

// TestWriteCaseRootVersionsOnConflict covers the "version" conflict
// policy: a second write to the same path is saved as "_v2" rather than
// overwriting the first.
func TestWriteCaseRootVersionsOnConflict(t *testing.T) {
	root := t.TempDir()
	backend := NewLocalBackend(root)
	mgr, err := NewManager(backend, root, "case-1")
	require.NoError(t, err)

	c := models.NewConsolidatedCase("case-1")
	require.NoError(t, mgr.WriteCaseRoot(c, WriteOptions{Policy: PolicyVersion}))
	require.NoError(t, mgr.WriteCaseRoot(c, WriteOptions{Policy: PolicyVersion}))

	caseDir := filepath.Join(root, "cases", "case-1")
	_, err = os.Stat(filepath.Join(caseDir, "case_info.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(caseDir, "case_info_v2.json"))
	assert.NoError(t, err)
}

func TestWriteCaseRootErrorPolicyRefusesConflict(t *testing.T) {
	root := t.TempDir()
	backend := NewLocalBackend(root)
	mgr, err := NewManager(backend, root, "case-1")
	require.NoError(t, err)

	c := models.NewConsolidatedCase("case-1")
	require.NoError(t, mgr.WriteCaseRoot(c, WriteOptions{Policy: PolicyError}))

	err = mgr.WriteCaseRoot(c, WriteOptions{Policy: PolicyError})
	assert.Error(t, err)
}

func TestCaseDirAbsolute(t *testing.T) {
	assert.Equal(t, filepath.Join("/out", "cases", "case-1"), CaseDirAbsolute("/out", "case-1"))
}
