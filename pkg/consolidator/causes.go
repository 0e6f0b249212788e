package consolidator

import (
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/recognizer"
)

// buildCausesOfAction implements step 9: if attorney notes contain a
// LEGAL_CLAIMS block, it is used verbatim (and is authoritative — see
// recognizer.ExtractCausesOfAction and P7). Otherwise two default
// causes are emitted from the embedded claims corpus with
// selected=false: federal FCRA against every defendant, and NY FCRA
// against the credit-reporting-agency defendants only.
func buildCausesOfAction(attorneyNotesText string, defendants []models.Defendant) []models.CauseOfAction {
	if causes := recognizer.ExtractCausesOfAction(attorneyNotesText); len(causes) > 0 {
		return causes
	}
	return defaultCausesOfAction(defendants)
}

func defaultCausesOfAction(defendants []models.Defendant) []models.CauseOfAction {
	allNames := defendantNames(defendants, nil)
	craNames := defendantNames(defendants, standardCRAKeys)

	return []models.CauseOfAction{
		{
			CountNumber:       1,
			Title:             "Violation of the Fair Credit Reporting Act",
			AgainstDefendants: allNames,
			LegalClaims:       corpusToClaims(claimsForJurisdiction("federal"), allNames),
		},
		{
			CountNumber:       2,
			Title:             "Violation of the New York Fair Credit Reporting Act",
			AgainstDefendants: craNames,
			LegalClaims:       corpusToClaims(claimsForJurisdiction("ny"), craNames),
		},
	}
}

// defendantNames returns the display names of defendants, optionally
// filtered to those whose normalized key is in filter (nil means no
// filter).
func defendantNames(defendants []models.Defendant, filter map[string]bool) []string {
	names := []string{}
	for _, d := range defendants {
		if filter != nil && !filter[d.NormalizedKey] {
			continue
		}
		names = append(names, d.Name)
	}
	return names
}

func corpusToClaims(claims []corpusClaim, against []string) []models.LegalClaim {
	out := make([]models.LegalClaim, 0, len(claims))
	for _, c := range claims {
		out = append(out, models.LegalClaim{
			Citation:    c.Citation,
			Description: c.Description,
			Selected:    false,
			Confidence:  0.5,
			Defendants:  against,
		})
	}
	return out
}
