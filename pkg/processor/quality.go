package processor

import (
	"bytes"
	"regexp"

	"github.com/klauspost/compress/flate"

	"case-consolidator-fiber/pkg/models"
)

// legalIndicatorPatterns is the set of markers computeQualityMetrics
// counts occurrences of, reusing the same canonical-document vocabulary
// the entity recognizer's structure score draws from.
var legalIndicatorPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bplaintiff\b`),
	regexp.MustCompile(`(?i)\bdefendant\b`),
	regexp.MustCompile(`(?i)\bcourt\b`),
	regexp.MustCompile(`(?i)\bcase no\.?\b`),
	regexp.MustCompile(`(?i)\bcount\s+(one|two|three|i|ii|iii|\d+)\b`),
	regexp.MustCompile(`(?i)\bcomplaint\b`),
	regexp.MustCompile(`(?i)\bfcra\b`),
}

// computeQualityMetrics scores one document's extracted text: a
// compression ratio (flate-compressed size over raw size — lower means
// denser, more repetitive text, which in practice correlates with
// boilerplate-heavy legal documents), a legal-indicator count, and a
// composite 0-100 score blending text length, indicator density, and
// compressibility.
func computeQualityMetrics(text string) models.QualityMetrics {
	textLen := len(text)
	ratio := compressionRatio(text)
	indicatorCount := countLegalIndicators(text)

	score := 0
	switch {
	case textLen >= 2000:
		score += 40
	case textLen >= 500:
		score += 25
	case textLen >= 100:
		score += 10
	}

	if indicatorCount >= 5 {
		score += 40
	} else {
		score += indicatorCount * 8
	}

	// Highly compressible text (ratio near 0) is usually boilerplate or
	// repeated whitespace from a bad OCR pass; moderate ratios score best.
	switch {
	case ratio >= 0.4 && ratio <= 0.9:
		score += 20
	case ratio > 0:
		score += 10
	}

	if score > 100 {
		score = 100
	}

	return models.QualityMetrics{
		Score:               score,
		TextLength:          textLen,
		CompressionRatio:    ratio,
		LegalIndicatorCount: indicatorCount,
	}
}

// compressionRatio returns compressed-size / raw-size using flate at
// default compression, 0 for empty input.
func compressionRatio(text string) float64 {
	if len(text) == 0 {
		return 0
	}

	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return 0
	}
	if _, err := w.Write([]byte(text)); err != nil {
		return 0
	}
	if err := w.Close(); err != nil {
		return 0
	}

	return float64(buf.Len()) / float64(len(text))
}

func countLegalIndicators(text string) int {
	count := 0
	for _, re := range legalIndicatorPatterns {
		count += len(re.FindAllStringIndex(text, -1))
	}
	return count
}
