package models

// Address is a structured postal address, used wherever the hydrated
// schema calls for {street, city, state, zip_code}.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// CaseInformation is the case-identification section of ConsolidatedCase.
type CaseInformation struct {
	CourtName     string `json:"court_name,omitempty"`
	CourtDistrict string `json:"court_district,omitempty"`
	CaseNumber    string `json:"case_number,omitempty"`
	FilingDate    string `json:"filing_date,omitempty"`
	JuryDemand    bool   `json:"jury_demand"`
	DocumentType  string `json:"document_type"`
}

// Plaintiff is the consumer bringing the case.
type Plaintiff struct {
	Name           string  `json:"name,omitempty"`
	Address        Address `json:"address"`
	Phone          string  `json:"phone,omitempty"`
	Email          string  `json:"email,omitempty"`
	Residency      string  `json:"residency,omitempty"`
	ConsumerStatus string  `json:"consumer_status,omitempty"`
}

// PlaintiffCounsel is plaintiff's legal representation.
type PlaintiffCounsel struct {
	Name         string  `json:"name,omitempty"`
	Firm         string  `json:"firm,omitempty"`
	Address      Address `json:"address"`
	Phone        string  `json:"phone,omitempty"`
	Email        string  `json:"email,omitempty"`
	BarAdmission string  `json:"bar_admission,omitempty"`
}

// Defendant is one named defendant entity.
type Defendant struct {
	Name                 string  `json:"name"`
	ShortName            string  `json:"short_name,omitempty"`
	Type                 string  `json:"type,omitempty"`
	StateOfIncorporation string  `json:"state_of_incorporation,omitempty"`
	BusinessStatus       string  `json:"business_status,omitempty"`
	Address              Address `json:"address"`

	// NormalizedKey is the deduplication key produced by the defendant
	// normalization function. Not part of the hydrated JSON output;
	// carried on the in-memory struct for traceability.
	NormalizedKey string `json:"-"`
}

// FactualBackground holds the narrative allegations consolidated from
// attorney notes or, failing that, a narrative-extraction fallback.
type FactualBackground struct {
	Summary     string   `json:"summary"`
	Allegations []string `json:"allegations"`
}

// LegalClaim is one citation-backed claim under a cause of action.
type LegalClaim struct {
	Citation    string         `json:"citation"`
	Description string         `json:"description"`
	Selected    bool           `json:"selected"`
	Confidence  float64        `json:"confidence"`
	Category    DamageCategory `json:"category,omitempty"`
	Defendants  []string       `json:"defendants,omitempty"`
}

// CauseOfAction groups legal claims under one numbered count.
type CauseOfAction struct {
	CountNumber       int          `json:"count_number"`
	Title             string       `json:"title"`
	AgainstDefendants []string     `json:"against_defendants"`
	LegalClaims       []LegalClaim `json:"legal_claims"`
}

// DenialDetail is the supplemental denial-letter extraction: creditor,
// product applied for, decision date, credit score used, and stated
// reasons, pulled from an adverse-action notice rather than attorney
// notes.
type DenialDetail struct {
	Creditor        string   `json:"creditor,omitempty"`
	ApplicationFor  string   `json:"application_for,omitempty"`
	Date            string   `json:"date,omitempty"`
	CreditScoreUsed string   `json:"credit_score_used,omitempty"`
	Reasons         []string `json:"reasons,omitempty"`
}

// Damages is the full damages section of the hydrated record.
type Damages struct {
	StructuredDamages  []DamageItem                     `json:"structured_damages"`
	CategorizedDamages map[DamageCategory][]DamageItem  `json:"categorized_damages"`
	ActualDamages      map[string]interface{}           `json:"actual_damages,omitempty"`
	StatutoryDamages   map[string]interface{}           `json:"statutory_damages,omitempty"`
	PunitiveDamages    map[string]interface{}           `json:"punitive_damages,omitempty"`
	AttorneyFees       map[string]interface{}           `json:"attorney_fees,omitempty"`
	DenialDetails      []DenialDetail                   `json:"denial_details,omitempty"`
}

// DamageEvent is a dated event relevant to damages, shaped like an
// ExtractedDate but lighter-weight for timeline purposes.
type DamageEvent struct {
	Date         string  `json:"date"`
	Description  string  `json:"description"`
	Source       string  `json:"source,omitempty"`
	Confidence   float64 `json:"confidence"`
	EvidenceType string  `json:"evidence_type,omitempty"`
}

// ChronologicalValidation is the result of running the chronology rules
// against a CaseTimeline.
type ChronologicalValidation struct {
	IsValid  bool     `json:"is_valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// CaseTimeline is the reconciled chronology.
type CaseTimeline struct {
	DiscoveryDate           string                  `json:"discovery_date,omitempty"`
	DisputeDate             string                  `json:"dispute_date,omitempty"`
	FilingDate              string                  `json:"filing_date,omitempty"`
	DamageEvents            []DamageEvent           `json:"damage_events"`
	DocumentDates           []ExtractedDate         `json:"document_dates"`
	ChronologicalValidation ChronologicalValidation `json:"chronological_validation"`
	TimelineConfidence      float64                 `json:"timeline_confidence"`
}

// ConsolidatedCase is the case consolidator's in-memory output; pkg/schema
// renders it into the hydrated record's wire shape for write-out.
type ConsolidatedCase struct {
	CaseID                 string            `json:"case_id"`
	CaseInformation        CaseInformation   `json:"case_information"`
	Plaintiff              Plaintiff         `json:"plaintiff"`
	PlaintiffCounsel       PlaintiffCounsel  `json:"plaintiff_counsel"`
	Defendants             []Defendant       `json:"defendants"`
	FactualBackground      FactualBackground `json:"factual_background"`
	Damages                Damages           `json:"damages"`
	CausesOfAction         []CauseOfAction   `json:"causes_of_action"`
	CaseTimeline           CaseTimeline      `json:"case_timeline"`
	SourceDocuments        []string          `json:"source_documents"`
	ExtractionConfidence   float64           `json:"extraction_confidence"`
	ConsolidationTimestamp string            `json:"consolidation_timestamp"`
	Warnings               []string          `json:"warnings"`
}

// NewConsolidatedCase returns a ConsolidatedCase with every slice/map
// field initialized to empty (never nil), so JSON serialization always
// produces `[]`/`{}` rather than `null` for collection fields.
func NewConsolidatedCase(caseID string) *ConsolidatedCase {
	return &ConsolidatedCase{
		CaseID:          caseID,
		CaseInformation: CaseInformation{DocumentType: "FCRA"},
		Defendants:      []Defendant{},
		FactualBackground: FactualBackground{
			Allegations: []string{},
		},
		Damages: Damages{
			StructuredDamages:  []DamageItem{},
			CategorizedDamages: map[DamageCategory][]DamageItem{},
		},
		CausesOfAction: []CauseOfAction{},
		CaseTimeline: CaseTimeline{
			DamageEvents:  []DamageEvent{},
			DocumentDates: []ExtractedDate{},
			ChronologicalValidation: ChronologicalValidation{
				IsValid:  true,
				Errors:   []string{},
				Warnings: []string{},
			},
		},
		SourceDocuments: []string{},
		Warnings:        []string{},
	}
}
