package extractor

import (
	"fmt"
	"strings"

	"case-consolidator-fiber/pkg/models"
	dslipakpdf "github.com/dslipak/pdf"
	"github.com/ledongthuc/pdf"
)

// PDFDecoder extracts plain text from PDF files. Text extraction uses
// ledongthuc/pdf's row-aware reader so that multi-column table rows can
// be flattened into " | "-joined cells rather than losing their
// structure; dslipak/pdf is used only for the page-count/outline pass
// that feeds document metadata, since its reader exposes that more
// directly than ledongthuc/pdf's.
type PDFDecoder struct{}

// NewPDFDecoder returns a Decoder for .pdf files.
func NewPDFDecoder() *PDFDecoder { return &PDFDecoder{} }

func (d *PDFDecoder) Name() string { return "pdf" }

func (d *PDFDecoder) SupportedExtensions() []string { return []string{".pdf"} }

func (d *PDFDecoder) Decode(path string) (string, models.DocumentMetadata, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	numPages := r.NumPage()
	for i := 1; i <= numPages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		pages = append(pages, extractPageText(page))
	}
	text := strings.Join(pages, "\n\n")

	meta := models.DocumentMetadata{
		"page_count": numPages,
		"engine":     "ledongthuc/pdf",
	}
	if analysis, err := analyzePDF(path); err == nil {
		meta["pdf_version"] = analysis.version
	}

	return text, meta, nil
}

// extractPageText flattens one page's rows into lines, joining cells
// within a row with " | " when the row-aware reader reports more than
// one distinct text run on that row (a table-like layout).
func extractPageText(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil || len(rows) == 0 {
		plain, _ := page.GetPlainText(nil)
		return plain
	}

	var lines []string
	for _, row := range rows {
		cells := make([]string, 0, len(row.Content))
		for _, text := range row.Content {
			s := strings.TrimSpace(text.S)
			if s != "" {
				cells = append(cells, s)
			}
		}
		if len(cells) == 0 {
			continue
		}
		lines = append(lines, strings.Join(cells, " | "))
	}
	return strings.Join(lines, "\n")
}

type pdfAnalysis struct {
	version string
}

// analyzePDF opens the file with the second PDF library to read the
// document's page count (recorded as "N pages"), used only as a metadata
// enrichment — text extraction never depends on this succeeding.
func analyzePDF(path string) (pdfAnalysis, error) {
	r, err := dslipakpdf.Open(path)
	if err != nil {
		return pdfAnalysis{}, fmt.Errorf("analyze pdf %s: %w", path, err)
	}
	return pdfAnalysis{version: fmt.Sprintf("%d pages", r.NumPage())}, nil
}
