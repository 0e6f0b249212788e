package recognizer

import (
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// proximityWindow is how many lines below a role keyword (e.g.
// "Plaintiff,") the recognizer looks for the associated party name.
const proximityWindow = 3

// ExtractLegalEntities scans text for courts, case numbers, parties by
// role proximity, attorney blocks, addresses, phones, and emails.
func ExtractLegalEntities(text string) []models.LegalEntity {
	var out []models.LegalEntity
	lines := strings.Split(text, "\n")

	for _, re := range entityCatalog.court {
		if loc := re.FindString(text); loc != "" {
			out = append(out, models.LegalEntity{
				EntityType: models.EntityTypeCourt,
				Name:       strings.TrimSpace(loc),
				Confidence: 0.95,
				SourceText: loc,
			})
			break
		}
	}

	for _, re := range entityCatalog.caseNumber {
		for _, m := range re.FindAllString(text, -1) {
			out = append(out, models.LegalEntity{
				EntityType: models.EntityTypeCaseNumber,
				Name:       strings.TrimSpace(m),
				Confidence: 0.9,
				SourceText: m,
			})
		}
	}

	for role, re := range entityCatalog.role {
		partyRole := models.PartyRole(role)
		for i, line := range lines {
			if !re.MatchString(line) {
				continue
			}
			name := findNearbyPartyName(lines, i, proximityWindow)
			if name == "" {
				continue
			}
			out = append(out, models.LegalEntity{
				EntityType: models.EntityTypeParty,
				Name:       name,
				Role:       partyRole,
				Confidence: 0.6,
				SourceText: strings.TrimSpace(line),
			})
		}
	}

	for _, m := range entityCatalog.address.FindAllString(text, -1) {
		out = append(out, models.LegalEntity{
			EntityType: models.EntityTypeParty,
			Address:    strings.TrimSpace(m),
			Confidence: 0.7,
			SourceText: m,
		})
	}
	for _, m := range entityCatalog.phone.FindAllString(text, -1) {
		out = append(out, models.LegalEntity{
			EntityType: models.EntityTypeAttorney,
			Phone:      m,
			Confidence: 0.5,
			SourceText: m,
		})
	}
	for _, m := range entityCatalog.email.FindAllString(text, -1) {
		out = append(out, models.LegalEntity{
			EntityType: models.EntityTypeAttorney,
			Email:      m,
			Confidence: 0.6,
			SourceText: m,
		})
	}

	return out
}

// findNearbyPartyName looks within window lines below a role-keyword
// line for the first line that looks like a capitalized proper name
// rather than boilerplate, returning "" if none is found.
func findNearbyPartyName(lines []string, roleLine, window int) string {
	for j := roleLine; j < len(lines) && j <= roleLine+window; j++ {
		candidate := strings.TrimSpace(lines[j])
		candidate = strings.TrimSuffix(candidate, ",")
		if looksLikeProperName(candidate) {
			return candidate
		}
	}
	return ""
}

// looksLikeProperName is a coarse heuristic: short, mostly-alphabetic,
// every word capitalized, not a boilerplate keyword.
func looksLikeProperName(s string) bool {
	if s == "" || len(s) > 60 {
		return false
	}
	fields := strings.Fields(s)
	if len(fields) == 0 || len(fields) > 5 {
		return false
	}
	lower := strings.ToLower(s)
	for _, kw := range []string{"plaintiff", "defendant", "vs", "v.", "case no", "court", "attorney"} {
		if strings.Contains(lower, kw) {
			return false
		}
	}
	for _, f := range fields {
		r := []rune(f)
		if len(r) == 0 || !isUpper(r[0]) {
			return false
		}
	}
	return true
}

func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// ClassifyDocumentType returns the first matching document-type marker
// found in text, or "" if none match.
func ClassifyDocumentType(text string) string {
	for docType, re := range entityCatalog.documentType {
		if re.MatchString(text) {
			return docType
		}
	}
	return ""
}

// DocumentStructureScore sums structureMarkerWeights for every marker
// present in text, capped at 100.
func DocumentStructureScore(text string) int {
	score := 0
	for _, w := range structureMarkerWeights {
		if w.pattern.MatchString(text) {
			score += w.points
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

// ExtractCaseInformation pulls the labeled case-identification fields
// (case number, court name, court district, filing date) out of text.
func ExtractCaseInformation(text string) models.CaseInformationFields {
	var fields models.CaseInformationFields

	for _, re := range entityCatalog.caseNumber {
		if m := re.FindString(text); m != "" {
			fields.CaseNumber = strings.TrimSpace(m)
			break
		}
	}
	for _, re := range entityCatalog.court {
		if m := re.FindString(text); m != "" {
			fields.CourtName = strings.TrimSpace(m)
			break
		}
	}
	for _, re := range entityCatalog.district {
		if m := re.FindString(text); m != "" {
			fields.CourtDistrict = strings.TrimSpace(m)
			break
		}
	}
	for _, ed := range ExtractDates(text, "") {
		if ed.Context == models.DateContextFiling && ed.ParsedDate != "" {
			fields.FilingDate = ed.ParsedDate
			break
		}
	}

	return fields
}
