package consolidator

import (
	"regexp"
	"strings"
)

// labelLinePattern matches an attorney-notes labeled-field line: an
// all-caps (with underscores) label followed by a colon, per the
// grammar documented for attorney-notes parsing: no STRUCTURED_DATA:
// wrapper, the parser looks for the label header directly.
var labelLinePattern = regexp.MustCompile(`^([A-Z][A-Z_]+):\s*(.*)$`)

var keyDateBulletPattern = regexp.MustCompile(`^-\s*([^:]+):\s*(.+)$`)

// attorneyNotes is the structured result of parsing one attorney-notes
// document's labeled fields and free-text blocks. The DAMAGES and
// LEGAL_CLAIMS blocks are deliberately not duplicated here: the
// recognizer package's ExtractDamages and ExtractCausesOfAction already
// scan the raw document text directly for those blocks.
type attorneyNotes struct {
	CaseNumber      string
	CourtName       string
	CourtDistrict   string
	FilingDate      string
	PlaintiffName   string
	PlaintiffPhone  string
	PlaintiffAddr   string
	Defendants      []string
	CounselName     string
	DiscoveryDate   string
	DisputeDate     string
	ApplicationDate string
	DenialDate      string
	Background      []string
	KeyDates        map[string]string
}

// parseAttorneyNotes walks text line by line, dispatching on each
// uppercase label it finds. ADDRESS and BACKGROUND are multi-line
// blocks that consume subsequent lines until the next label or EOF;
// DEFENDANTS and KEY_DATES consume the bullet lines that follow and stop
// at the first non-blank line that is not such a bullet; every other
// recognized label is a single same-line value.
func parseAttorneyNotes(text string) attorneyNotes {
	notes := attorneyNotes{KeyDates: map[string]string{}}
	lines := strings.Split(text, "\n")

	i := 0
	for i < len(lines) {
		trimmed := strings.TrimSpace(lines[i])
		m := labelLinePattern.FindStringSubmatch(trimmed)
		if m == nil {
			i++
			continue
		}
		label, value := m[1], strings.TrimSpace(m[2])
		i++

		switch label {
		case "CASE_NUMBER":
			notes.CaseNumber = valueOrEmpty(value)
		case "COURT_NAME":
			notes.CourtName = valueOrEmpty(value)
		case "COURT_DISTRICT":
			notes.CourtDistrict = valueOrEmpty(value)
		case "FILING_DATE":
			notes.FilingDate = valueOrEmpty(value)
		case "NAME":
			notes.PlaintiffName = valueOrEmpty(value)
		case "PHONE":
			notes.PlaintiffPhone = valueOrEmpty(value)
		case "PLAINTIFF_COUNSEL_NAME":
			notes.CounselName = valueOrEmpty(value)
		case "DISCOVERY_DATE":
			notes.DiscoveryDate = valueOrEmpty(value)
		case "DISPUTE_DATE":
			notes.DisputeDate = valueOrEmpty(value)
		case "APPLICATION_DATE":
			notes.ApplicationDate = valueOrEmpty(value)
		case "DENIAL_DATE":
			notes.DenialDate = valueOrEmpty(value)
		case "ADDRESS":
			var addrLines []string
			if value != "" {
				addrLines = append(addrLines, value)
			}
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if next == "" {
					i++
					continue
				}
				if labelLinePattern.MatchString(next) {
					break
				}
				addrLines = append(addrLines, next)
				i++
			}
			notes.PlaintiffAddr = strings.Join(addrLines, ", ")
		case "DEFENDANTS":
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if next == "" {
					i++
					continue
				}
				if !strings.HasPrefix(next, "-") {
					break
				}
				notes.Defendants = append(notes.Defendants, strings.TrimSpace(strings.TrimPrefix(next, "-")))
				i++
			}
		case "BACKGROUND":
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if labelLinePattern.MatchString(next) {
					break
				}
				if next != "" {
					notes.Background = append(notes.Background, next)
				}
				i++
			}
		case "KEY_DATES":
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if next == "" {
					i++
					continue
				}
				if bm := keyDateBulletPattern.FindStringSubmatch(next); bm != nil {
					notes.KeyDates[strings.TrimSpace(bm[1])] = strings.TrimSpace(bm[2])
					i++
					continue
				}
				break
			}
		case "DAMAGES", "LEGAL_CLAIMS", "RELIEF_SOUGHT":
			// Parsed directly from raw text by pkg/recognizer; skip the
			// block here so its bulleted lines aren't misread as labels.
			for i < len(lines) {
				next := strings.TrimSpace(lines[i])
				if labelLinePattern.MatchString(next) {
					break
				}
				i++
			}
		}
	}

	return notes
}

// valueOrEmpty treats the documented "TBD" sentinel as an absent value.
func valueOrEmpty(v string) string {
	if strings.EqualFold(strings.TrimSpace(v), "TBD") {
		return ""
	}
	return v
}

// isAttorneyNotes reports whether fileName identifies the attorney-notes
// document: filename contains "atty_notes", case-insensitive.
func isAttorneyNotes(fileName string) bool {
	return strings.Contains(strings.ToLower(fileName), "atty_notes")
}

// isSummons reports whether fileName identifies a summons, which is
// never a source of consolidated fields.
func isSummons(fileName string) bool {
	return strings.Contains(strings.ToLower(fileName), "summons")
}
