package extractor

import "errors"

// Sentinel errors a Decoder returns for the three documented rejection
// cases. Callers use errors.Is to branch on these without caring which
// concrete decoder produced them.
var (
	ErrFileTooLarge     = errors.New("file too large")
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrEmptyExtraction  = errors.New("empty extraction")
)

// maxFileSize is the documented per-file size ceiling.
const maxFileSize = 100 * 1024 * 1024

// minNonWhitespaceChars is the documented floor below which extracted
// text counts as empty.
const minNonWhitespaceChars = 10
