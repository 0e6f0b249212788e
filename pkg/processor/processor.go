// Package processor implements the document processor: the stage
// between raw file decoding and case consolidation. It dispatches each
// file to the decoder registry, runs the date recognizer over the
// decoded text, scores extraction quality, and emits progress events.
package processor

import (
	"fmt"
	"path/filepath"
	"time"

	"case-consolidator-fiber/pkg/events"
	"case-consolidator-fiber/pkg/extractor"
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/recognizer"
)

// Processor turns one file on disk into an ExtractionResult.
type Processor struct {
	registry *extractor.Registry
	events   *events.Broadcaster
}

// New returns a Processor dispatching through reg. broadcaster may be
// nil, in which case event emission is silently skipped (events.New(nil)
// already makes Publish a no-op, so the common case is to always pass a
// broadcaster, even one bound to a nil sink).
func New(reg *extractor.Registry, broadcaster *events.Broadcaster) *Processor {
	if broadcaster == nil {
		broadcaster = events.New(nil)
	}
	return &Processor{registry: reg, events: broadcaster}
}

// Process decodes path, recognizes dates and entities over the decoded
// text, and computes quality metrics. It never returns an error: a
// failure to decode becomes a ExtractionResult with Success=false and
// Error set, per the documented "input errors surface on the per-result"
// contract (errors belong to the consolidator's warnings, not to a
// caller's control flow).
func (p *Processor) Process(path string) models.ExtractionResult {
	start := time.Now()
	fileName := filepath.Base(path)
	p.events.DocumentStart(fileName)

	result := models.ExtractionResult{
		FilePath: path,
		FileName: fileName,
	}

	text, meta, err := p.registry.Decode(path)
	if err != nil {
		result.Error = err.Error()
		result.ProcessingTimeMs = time.Since(start).Milliseconds()
		p.events.DocumentError(fileName, err)
		return result
	}

	result.Success = true
	result.ExtractedText = text
	result.Metadata = meta
	result.ExtractedDates = recognizer.ExtractDates(text, fileName)
	result.Entities = recognizer.ExtractLegalEntities(text)
	result.CaseInformation = recognizer.ExtractCaseInformation(text)
	result.QualityMetrics = computeQualityMetrics(text)
	result.EngineName = engineName(path, p.registry)
	result.ProcessingTimeMs = time.Since(start).Milliseconds()

	p.events.DocumentComplete(fileName)
	return result
}

// ProcessAll runs Process over every path in order, returning one
// ExtractionResult per input. The surrounding pipeline may parallelize
// this call by the time it hands a finished slice to the consolidator;
// Processor itself makes no concurrency guarantees.
func (p *Processor) ProcessAll(paths []string) []models.ExtractionResult {
	results := make([]models.ExtractionResult, 0, len(paths))
	for _, path := range paths {
		results = append(results, p.Process(path))
	}
	return results
}

// engineName reports which decoder handled path's extension, for the
// ExtractionResult.EngineName provenance field. Falls back to the
// extension itself if dispatch information isn't otherwise available.
func engineName(path string, reg *extractor.Registry) string {
	if name := reg.DecoderNameFor(path); name != "" {
		return name
	}
	return fmt.Sprintf("ext:%s", filepath.Ext(path))
}
