package extractor

import (
	"fmt"
	"os"

	"case-consolidator-fiber/pkg/models"
)

// TextDecoder handles plain-text and markdown case files: attorney
// notes are ordinary .txt files following the documented grammar.
type TextDecoder struct{}

// NewTextDecoder returns a Decoder for .txt/.md files.
func NewTextDecoder() *TextDecoder { return &TextDecoder{} }

func (d *TextDecoder) Name() string { return "text" }

func (d *TextDecoder) SupportedExtensions() []string { return []string{".txt", ".md"} }

func (d *TextDecoder) Decode(path string) (string, models.DocumentMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, fmt.Errorf("read %s: %w", path, err)
	}
	meta := models.DocumentMetadata{"byte_size": len(data)}
	return string(data), meta, nil
}
