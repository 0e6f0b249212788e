//go:build ocr

package extractor

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"strings"

	"case-consolidator-fiber/pkg/models"
	"github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// OCRDecoder handles scanned PDFs that have no extractable text layer:
// it rasterizes each page with go-fitz (a MuPDF binding) and runs
// Tesseract OCR over the rendered image via gosseract. Built only with
// the "ocr" build tag, since it links against MuPDF and Tesseract
// system libraries that are not present in every build environment.
type OCRDecoder struct {
	Language string
}

// NewOCRDecoder returns a Decoder for scanned PDFs, defaulting to
// English OCR.
func NewOCRDecoder() *OCRDecoder { return &OCRDecoder{Language: "eng"} }

func (d *OCRDecoder) Name() string { return "pdf-ocr" }

func (d *OCRDecoder) SupportedExtensions() []string { return []string{".pdf"} }

func (d *OCRDecoder) Decode(path string) (string, models.DocumentMetadata, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", nil, fmt.Errorf("open pdf for ocr %s: %w", path, err)
	}
	defer doc.Close()

	client := gosseract.NewClient()
	defer client.Close()
	if err := client.SetLanguage(d.Language); err != nil {
		return "", nil, fmt.Errorf("set ocr language: %w", err)
	}

	var pages []string
	numPages := doc.NumPage()
	for i := 0; i < numPages; i++ {
		img, err := doc.Image(i)
		if err != nil {
			return "", nil, fmt.Errorf("render page %d of %s: %w", i, path, err)
		}
		if err := client.SetImageFromBytes(imageToPNGBytes(img)); err != nil {
			return "", nil, fmt.Errorf("load page %d for ocr: %w", i, err)
		}
		pageText, err := client.Text()
		if err != nil {
			return "", nil, fmt.Errorf("ocr page %d of %s: %w", i, path, err)
		}
		pages = append(pages, pageText)
	}

	meta := models.DocumentMetadata{
		"page_count": numPages,
		"engine":     "go-fitz+gosseract",
		"language":   d.Language,
	}
	return strings.Join(pages, "\n\n"), meta, nil
}

func imageToPNGBytes(img image.Image) []byte {
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
