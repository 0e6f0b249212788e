//go:build !ocr

package extractor

import (
	"fmt"

	"case-consolidator-fiber/pkg/models"
)

// OCRDecoder is the no-op stand-in used in builds without the "ocr"
// build tag (no MuPDF/Tesseract system libraries available). It reports
// itself as supporting no extensions, so it never displaces the regular
// PDFDecoder in a Registry.
type OCRDecoder struct {
	Language string
}

// NewOCRDecoder returns a disabled OCRDecoder.
func NewOCRDecoder() *OCRDecoder { return &OCRDecoder{Language: "eng"} }

func (d *OCRDecoder) Name() string { return "pdf-ocr-disabled" }

func (d *OCRDecoder) SupportedExtensions() []string { return nil }

func (d *OCRDecoder) Decode(path string) (string, models.DocumentMetadata, error) {
	return "", nil, fmt.Errorf("ocr decoder not built: rebuild with -tags ocr")
}
