package recognizer

import (
	"regexp"
	"strconv"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

var legalClaimsBlockHeader = regexp.MustCompile(`(?i)^LEGAL_CLAIMS:\s*$`)

// notesLabelPattern matches an uppercase attorney-notes label such as
// "DAMAGES:", which ends the LEGAL_CLAIMS block.
var notesLabelPattern = regexp.MustCompile(`^[A-Z][A-Z_ ]*:`)

// ExtractCausesOfAction parses the LEGAL_CLAIMS: block out of attorney
// notes text. Each "Count N - ClaimType:" header starts a new cause of
// action; subsequent "- Citation: Description (Defendants)" lines
// become its legal claims until the next Count header or a blank line.
// Blank lines may separate counts; the block runs until the next
// uppercase label or EOF.
func ExtractCausesOfAction(text string) []models.CauseOfAction {
	lines := strings.Split(text, "\n")
	var causes []models.CauseOfAction

	inBlock := false
	var current *models.CauseOfAction

	flush := func() {
		if current != nil {
			causes = append(causes, *current)
			current = nil
		}
	}

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		if legalClaimsBlockHeader.MatchString(trimmed) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}

		if m := legalClaimsHeaderPattern.FindStringSubmatch(trimmed); m != nil {
			flush()
			count, _ := strconv.Atoi(m[1])
			current = &models.CauseOfAction{
				CountNumber: count,
				Title:       strings.TrimSpace(m[2]),
				LegalClaims: []models.LegalClaim{},
			}
			continue
		}
		if notesLabelPattern.MatchString(trimmed) {
			flush()
			inBlock = false
			continue
		}

		if current == nil {
			continue
		}
		if m := legalClaimsBulletPattern.FindStringSubmatch(trimmed); m != nil {
			defendants := splitDefendantList(m[3])
			current.LegalClaims = append(current.LegalClaims, models.LegalClaim{
				Citation:    strings.TrimSpace(m[1]),
				Description: strings.TrimSpace(m[2]),
				Selected:    true,
				Confidence:  0.8,
				Defendants:  defendants,
			})
			current.AgainstDefendants = mergeUnique(current.AgainstDefendants, defendants)
		}
	}
	flush()

	return causes
}

func splitDefendantList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func mergeUnique(existing, additions []string) []string {
	seen := make(map[string]bool, len(existing))
	for _, e := range existing {
		seen[e] = true
	}
	for _, a := range additions {
		if !seen[a] {
			seen[a] = true
			existing = append(existing, a)
		}
	}
	return existing
}
