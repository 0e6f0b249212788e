// Package extractor implements the text decoders: one stateless decoder
// per source format, each turning a file on disk into plain text plus
// decoder-specific metadata.
package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"case-consolidator-fiber/pkg/models"
	"github.com/gabriel-vasile/mimetype"
)

// Decoder turns one file into extracted text plus decoder metadata.
// Implementations are stateless and safe for concurrent use, though the
// consolidator's pipeline never actually calls them concurrently.
type Decoder interface {
	Decode(path string) (text string, metadata models.DocumentMetadata, err error)
	SupportedExtensions() []string
	Name() string
}

// Registry dispatches a file path to the Decoder registered for its
// extension.
type Registry struct {
	byExtension map[string]Decoder
}

// NewRegistry builds a Registry from a set of decoders, indexing each by
// every extension it reports supporting. A later decoder registered for
// the same extension as an earlier one replaces it.
func NewRegistry(decoders ...Decoder) *Registry {
	r := &Registry{byExtension: make(map[string]Decoder)}
	for _, d := range decoders {
		for _, ext := range d.SupportedExtensions() {
			r.byExtension[strings.ToLower(ext)] = d
		}
	}
	return r
}

// Decode validates the file against the size/extension/emptiness
// contract shared by every decoder, then dispatches to the registered
// decoder for path's extension.
func (r *Registry) Decode(path string) (string, models.DocumentMetadata, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.Size() > maxFileSize {
		return "", nil, fmt.Errorf("%s: %w", path, ErrFileTooLarge)
	}

	ext := strings.ToLower(filepath.Ext(path))
	decoder, ok := r.byExtension[ext]
	if !ok {
		if sniffed, sniffErr := detectMimeFallback(path); sniffErr == nil {
			decoder, ok = r.byExtension[sniffed]
		}
	}
	if !ok {
		return "", nil, fmt.Errorf("%s: %w", ext, ErrUnsupportedFormat)
	}

	text, meta, err := decoder.Decode(path)
	if err != nil {
		return "", nil, err
	}
	if countNonWhitespace(text) < minNonWhitespaceChars {
		return "", nil, fmt.Errorf("%s: %w", path, ErrEmptyExtraction)
	}
	return text, meta, nil
}

// DecoderNameFor reports the name of the decoder registered for path's
// extension, or "" if none is registered. Used for provenance only; it
// does not perform the mime-sniffing fallback Decode does.
func (r *Registry) DecoderNameFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if d, ok := r.byExtension[ext]; ok {
		return d.Name()
	}
	return ""
}

func countNonWhitespace(s string) int {
	n := 0
	for _, r := range s {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// detectMimeFallback uses content sniffing to guess a format when the
// extension alone is ambiguous or missing, used by callers that accept
// arbitrary uploads rather than a known case folder layout.
func detectMimeFallback(path string) (string, error) {
	mtype, err := mimetype.DetectFile(path)
	if err != nil {
		return "", fmt.Errorf("detect mimetype %s: %w", path, err)
	}
	return mtype.Extension(), nil
}
