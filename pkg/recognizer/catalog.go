// Package recognizer implements the entity recognizers: pure functions
// of text that extract legal entities, dates, damages, and legal claims
// via rule-based pattern matching. Every recognizer pattern is pure
// data, compiled once into a package-level registry keyed by category
// rather than compiled per call.
package recognizer

import "regexp"

// legalEntityCatalog groups the compiled-once regex patterns the legal
// entity recognizer uses (case numbers, courts, districts, roles,
// addresses, phones, emails, document-type markers).
type legalEntityCatalog struct {
	caseNumber   []*regexp.Regexp
	court        []*regexp.Regexp
	district     []*regexp.Regexp
	role         map[string]*regexp.Regexp
	address      *regexp.Regexp
	phone        *regexp.Regexp
	email        *regexp.Regexp
	documentType map[string]*regexp.Regexp
}

var entityCatalog = legalEntityCatalog{
	caseNumber: []*regexp.Regexp{
		regexp.MustCompile(`\b\d{1,2}:\d{2}-cv-\d{4,6}\b`), // federal: N:NN-cv-NNNNN
		regexp.MustCompile(`\b\d{1,2}:\d{2}-CV-\d{4,6}\b`),
		regexp.MustCompile(`\bCase No\.?\s*([A-Z0-9:\-]+)`),
		regexp.MustCompile(`\bDocket No\.?\s*([A-Z0-9:\-]+)`),
		regexp.MustCompile(`\b\d{2}-[A-Z]{2}-\d{4,6}\b`), // state variant
	},
	court: []*regexp.Regexp{
		regexp.MustCompile(`UNITED STATES DISTRICT COURT`),
		regexp.MustCompile(`(?i)United States District Court`),
		regexp.MustCompile(`(?i)Superior Court of [A-Za-z ]+`),
		regexp.MustCompile(`(?i)Supreme Court of [A-Za-z ]+`),
	},
	district: []*regexp.Regexp{
		regexp.MustCompile(`(?i)(Southern|Eastern|Northern|Western|Central)\s+District\s+of\s+[A-Za-z]+`),
		regexp.MustCompile(`(?i)District\s+of\s+[A-Za-z]+`),
	},
	role: map[string]*regexp.Regexp{
		"plaintiff": regexp.MustCompile(`(?i)\bplaintiff[s]?\b`),
		"defendant": regexp.MustCompile(`(?i)\bdefendant[s]?\b`),
		"counsel": regexp.MustCompile(`(?i)\b(attorney[s]?\s+for|counsel\s+for|esq\.?)\b`),
		"judge": regexp.MustCompile(`(?i)\b(hon\.?|judge)\b`),
		"clerk": regexp.MustCompile(`(?i)\bclerk\s+of\s+court\b`),
	},
	address: regexp.MustCompile(`\d{1,6}\s+[A-Za-z0-9.\s]+,\s*[A-Za-z\s]+,\s*[A-Z]{2}\s*\d{5}(-\d{4})?`),
	phone: regexp.MustCompile(`\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`),
	email: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	documentType: map[string]*regexp.Regexp{
		"complaint": regexp.MustCompile(`(?i)\bCOMPLAINT\b`),
		"summons": regexp.MustCompile(`(?i)\bSUMMONS\b`),
		"denial_letter": regexp.MustCompile(`(?i)\b(adverse action|denial)\b`),
		"attorney_notes": regexp.MustCompile(`(?i)\battorney\s+notes\b`),
	},
}

// structureMarkerWeights assigns points toward the 0-100 document
// structure score based on presence of canonical legal document markers
//. Weights mirror the original's _calculate_structure_score
// table (capped at 100).
var structureMarkerWeights = []struct {
	pattern *regexp.Regexp
	points int
}{
	{regexp.MustCompile(`(?i)UNITED STATES DISTRICT COURT`), 20},
	{regexp.MustCompile(`(?i)\bCase No\.?`), 15},
	{regexp.MustCompile(`(?i)\bv\.\s+[A-Z]`), 10},
	{regexp.MustCompile(`(?i)\bCOMPLAINT\b`), 15},
	{regexp.MustCompile(`(?i)\bJURY DEMAND\b`), 10},
	{regexp.MustCompile(`(?i)\bPlaintiff\b`), 10},
	{regexp.MustCompile(`(?i)\bDefendant\b`), 5},
	{regexp.MustCompile(`(?i)\bCOUNT\s+(ONE|TWO|THREE|I|II|III|\d+)\b`), 5},
	{regexp.MustCompile(`(?i)\bPRAYER FOR RELIEF\b`), 5},
	{regexp.MustCompile(`(?i)\bATTORNEY[S]?\s+FOR\b`), 5},
}

// dateCatalog groups the compiled-once date recognizer patterns.
type dateCatalog struct {
	patterns []datePattern
	context map[string][]*regexp.Regexp
	keyword *regexp.Regexp
}

type datePattern struct {
	re *regexp.Regexp
	layout string
}

var dateRecognizerCatalog = dateCatalog{
	patterns: []datePattern{
		{regexp.MustCompile(`\b(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}\b`), "January 2, 2006"},
		{regexp.MustCompile(`\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Sept|Oct|Nov|Dec)\.?\s+\d{1,2},?\s+\d{4}\b`), "Jan 2, 2006"},
		{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{4}\b`), "1/2/2006"},
		{regexp.MustCompile(`\b\d{1,2}-\d{1,2}-\d{4}\b`), "1-2-2006"},
		{regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`), "2006-01-02"},
		{regexp.MustCompile(`\b\d{1,2}/\d{1,2}/\d{2}\b`), "1/2/06"},
		{regexp.MustCompile(`\b\d{1,2}\s+(January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{4}\b`), "2 January 2006"},
	},
	context: map[string][]*regexp.Regexp{
		"discovery_date": {regexp.MustCompile(`(?i)\b(discover(ed|y)|became aware|learned of|found out)\b`)},
		"dispute_date": {regexp.MustCompile(`(?i)\b(dispute[d]?|challenge[d]?|contested)\b`)},
		"application_date": {regexp.MustCompile(`(?i)\b(applied|application|apply)\b`)},
		"denial_date": {regexp.MustCompile(`(?i)\b(denied|denial|declined|rejected)\b`)},
		"adverse_action_date": {regexp.MustCompile(`(?i)\badverse action\b`)},
		"notice_date": {regexp.MustCompile(`(?i)\bnotice\b`)},
		"response_date": {regexp.MustCompile(`(?i)\bresponse|responded\b`)},
		"transaction_date": {regexp.MustCompile(`(?i)\btransaction|purchase[d]?|account opened\b`)},
		"filing_date": {regexp.MustCompile(`(?i)\b(filed|filing)\b`)},
		"damage_event_date": {regexp.MustCompile(`(?i)\b(damage[ds]?|harm(ed)?|injury)\b`)},
	},
	keyword: regexp.MustCompile(`(?i)\b(on|dated|as of|effective)\b`),
}

// damagePattern is one entry in the fixed damage-pattern table (the
// §4.2): a header string the bulleted DAMAGES: line must start with,
// mapped to (category, type).
type damagePattern struct {
	header string
	category string
	typ string
}

var damagePatternTable = []damagePattern{
	{"Denied Auto Loan", "credit_denial", "auto_loan_denial"},
	{"Denied Mortgage", "credit_denial", "mortgage_denial"},
	{"Denied Credit Card", "credit_denial", "credit_card_denial"},
	{"Denied Personal Loan", "credit_denial", "personal_loan_denial"},
	{"Credit Limit Reduction", "existing_credit", "credit_limit_reduction"},
	{"Interest Rate Increase", "existing_credit", "rate_increase"},
	{"Account Closure", "existing_credit", "account_closure"},
	{"Denied Employment", "employment", "employment_denial"},
	{"Job Offer Rescinded", "employment", "job_rescinded"},
	{"Denied Apartment", "housing", "housing_denial"},
	{"Denied Rental", "housing", "housing_denial"},
	{"Increased Security Deposit", "housing", "increased_deposit"},
}

var specialDamagePatterns = map[string]damagePattern{
	"emotional": {"emotional", "emotional", "emotional_distress"},
	"time_resources": {"time_resources", "time_resources", "time_and_resources"},
}

var evidenceIndicators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(attached|exhibit|documentation|proof|evidence)\b`),
	regexp.MustCompile(`(?i)\(see .*?\)`),
}

// damageKeywordBuckets is the fallback keyword-bucket categorization used
// when a bulleted line matches no entry in damagePatternTable (the
// §4.2: "Unmatched lines fall through to a keyword-based heuristic").
var damageKeywordBuckets = []struct {
	keyword *regexp.Regexp
	category string
}{
	{regexp.MustCompile(`(?i)\b(loan|credit|mortgage|card)\b`), "credit_denial"},
	{regexp.MustCompile(`(?i)\b(interest rate|limit|closed account)\b`), "existing_credit"},
	{regexp.MustCompile(`(?i)\b(job|employ|hire[d]?|fired)\b`), "employment"},
	{regexp.MustCompile(`(?i)\b(apartment|rental|lease|housing)\b`), "housing"},
	{regexp.MustCompile(`(?i)\b(stress|anxiety|emotional|humiliat)\b`), "emotional"},
	{regexp.MustCompile(`(?i)\b(hours|time spent|phone calls)\b`), "time_resources"},
}

// legalClaimsHeaderPattern matches "Count N - ClaimType:" headers in the
// LEGAL_CLAIMS attorney-notes block.
var legalClaimsHeaderPattern = regexp.MustCompile(`(?i)^Count\s+(\d+)\s*-\s*(.+?):\s*$`)

// legalClaimsBulletPattern matches "- Citation: Description (Defendants)"
// bullets under a Count header.
var legalClaimsBulletPattern = regexp.MustCompile(`^-\s*([^:]+):\s*(.+?)\s*\(([^)]*)\)\s*$`)
