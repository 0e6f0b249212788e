package extractor

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// DOCXDecoder handles DOCX files by reading them as a zip archive and
// walking word/document.xml's text runs. No third-party DOCX library is
// wired: OOXML is a zip+XML container, and the standard library's
// archive/zip and encoding/xml already parse it without a dedicated
// parser.
type DOCXDecoder struct{}

// NewDOCXDecoder returns a Decoder for .docx files.
func NewDOCXDecoder() *DOCXDecoder { return &DOCXDecoder{} }

func (d *DOCXDecoder) Name() string { return "docx" }

func (d *DOCXDecoder) SupportedExtensions() []string { return []string{".docx"} }

func (d *DOCXDecoder) Decode(path string) (string, models.DocumentMetadata, error) {
	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", nil, fmt.Errorf("open docx %s: %w", path, err)
	}
	defer zr.Close()

	text, err := extractDocumentXML(&zr.Reader)
	if err != nil {
		return "", nil, fmt.Errorf("extract docx %s: %w", path, err)
	}

	meta := models.DocumentMetadata{"engine": "archive/zip+encoding/xml"}
	for k, v := range extractCoreProperties(&zr.Reader) {
		meta[k] = v
	}

	return text, meta, nil
}

// extractDocumentXML walks word/document.xml's tokens, capturing the
// contents of <w:t> runs and emitting a newline at each <w:p> paragraph
// boundary so paragraph breaks survive into the plain-text output.
func extractDocumentXML(zr *zip.Reader) (string, error) {
	var documentFile *zip.File
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			documentFile = f
			break
		}
	}
	if documentFile == nil {
		return "", fmt.Errorf("word/document.xml not found")
	}

	rc, err := documentFile.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()

	content, err := io.ReadAll(rc)
	if err != nil {
		return "", err
	}

	decoder := xml.NewDecoder(bytes.NewReader(content))
	var out strings.Builder
	var inText, inTableCell bool

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch elem := tok.(type) {
		case xml.StartElement:
			switch elem.Name.Local {
			case "t":
				inText = true
			case "tc":
				inTableCell = true
			}
		case xml.EndElement:
			switch elem.Name.Local {
			case "t":
				inText = false
			case "tc":
				if inTableCell {
					out.WriteString(" | ")
				}
				inTableCell = false
			case "p", "tr":
				out.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				out.Write(elem)
			}
		}
	}

	return strings.TrimRight(out.String(), " |\n"), nil
}

// extractCoreProperties reads docProps/core.xml for the handful of
// standard OOXML metadata fields.
func extractCoreProperties(zr *zip.Reader) map[string]interface{} {
	props := map[string]interface{}{}

	var coreFile *zip.File
	for _, f := range zr.File {
		if f.Name == "docProps/core.xml" {
			coreFile = f
			break
		}
	}
	if coreFile == nil {
		return props
	}

	rc, err := coreFile.Open()
	if err != nil {
		return props
	}
	defer rc.Close()
	content, err := io.ReadAll(rc)
	if err != nil {
		return props
	}

	decoder := xml.NewDecoder(bytes.NewReader(content))
	var current string
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return props
		}
		switch elem := tok.(type) {
		case xml.StartElement:
			current = elem.Name.Local
		case xml.CharData:
			if current == "" {
				continue
			}
			if v := strings.TrimSpace(string(elem)); v != "" {
				switch current {
				case "title", "creator", "subject", "description", "created", "modified":
					props[current] = v
				}
			}
		case xml.EndElement:
			current = ""
		}
	}
	return props
}
