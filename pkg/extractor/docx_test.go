package extractor

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const minimalDocumentXML = `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
<w:body>
<w:p><w:r><w:t>Hello there</w:t></w:r></w:p>
<w:p><w:r><w:t>World of FCRA claims</w:t></w:r></w:p>
</w:body>
</w:document>`

// buildMinimalDocx writes a .docx (a zip containing word/document.xml)
// with enough structure for DOCXDecoder to extract two paragraphs.
func buildMinimalDocx(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "notes.docx")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()

	zw := zip.NewWriter(f)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(minimalDocumentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return path
}
