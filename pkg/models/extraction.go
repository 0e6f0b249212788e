package models

// DocumentMetadata carries decoder-specific facts about one source file
// (page count, author, producer, etc.). Kept as an open map because it is
// genuinely decoder-shaped data with no fixed schema across PDF/DOCX/TXT.
type DocumentMetadata map[string]interface{}

// QualityMetrics scores one document's extracted text.
type QualityMetrics struct {
	Score               int     `json:"score"` // 0-100
	TextLength          int     `json:"text_length"`
	CompressionRatio    float64 `json:"compression_ratio"`
	LegalIndicatorCount int     `json:"legal_indicator_count"`
}

// ExtractedDate is one date occurrence with provenance.
type ExtractedDate struct {
	RawText         string      `json:"raw_text"`
	ParsedDate      string      `json:"parsed_date,omitempty"` // ISO-8601, empty if unparseable
	Context         DateContext `json:"context"`
	Confidence      float64     `json:"confidence"`
	SourceLine      string      `json:"source_line"`
	LineNumber      int         `json:"line_number"`
	DocumentSection string      `json:"document_section,omitempty"`
	SourceDocument  string      `json:"source_document,omitempty"`
}

// LegalEntity is a party/attorney/court reference found in text.
type LegalEntity struct {
	EntityType EntityType `json:"entity_type"`
	Name       string     `json:"name"`
	Role       PartyRole  `json:"role"`
	Address    string     `json:"address,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Email      string     `json:"email,omitempty"`
	Confidence float64    `json:"confidence"`
	SourceText string     `json:"source_text,omitempty"`
}

// DamageItem is one damage allegation extracted from attorney notes.
type DamageItem struct {
	Category          DamageCategory `json:"category"`
	Type              string         `json:"type"`
	Entity            string         `json:"entity,omitempty"`
	Date              string         `json:"date,omitempty"`
	EvidenceAvailable bool           `json:"evidence_available"`
	Description       string         `json:"description"`
	Selected          bool           `json:"selected"`
	Amount            *float64       `json:"amount,omitempty"`
}

// CaseInformationFields holds the labeled case-identification fields a
// legal-entity recognizer pulls out of one document.
type CaseInformationFields struct {
	CaseNumber    string `json:"case_number,omitempty"`
	CourtName     string `json:"court_name,omitempty"`
	CourtDistrict string `json:"court_district,omitempty"`
	FilingDate    string `json:"filing_date,omitempty"`
}

// ExtractionResult is one input file's processing output: produced once
// per file by the document processor, immutable thereafter, and
// consumed by the case consolidator.
type ExtractionResult struct {
	FilePath         string                `json:"file_path"`
	FileName         string                `json:"file_name"`
	ExtractedText    string                `json:"extracted_text"`
	Success          bool                  `json:"success"`
	Error            string                `json:"error,omitempty"`
	Metadata         DocumentMetadata      `json:"metadata,omitempty"`
	QualityMetrics   QualityMetrics        `json:"quality_metrics"`
	ExtractedDates   []ExtractedDate       `json:"extracted_dates,omitempty"`
	Entities         []LegalEntity         `json:"entities,omitempty"`
	CaseInformation  CaseInformationFields `json:"case_information,omitempty"`
	ProcessingTimeMs int64                 `json:"processing_time_ms"`
	EngineName       string                `json:"engine_name"`
}
