package consolidator

import "case-consolidator-fiber/pkg/models"

// perDefendantPoints and maxDefendantPoints implement "5 per defendant,
// capped at 20" from the case-confidence formula (§4.4.5).
const perDefendantPoints = 5
const maxDefendantPoints = 20

// perAllegationPoints and maxBackgroundPoints implement "2 per
// allegation, capped at 10".
const perAllegationPoints = 2
const maxBackgroundPoints = 10

// scoreCase computes the weighted 100-point case confidence score. It
// is a pure function of the already-assembled case (P4: re-running
// consolidation over the same inputs reproduces the same score).
func scoreCase(c *models.ConsolidatedCase) float64 {
	score := 0.0

	if c.CaseInformation.CaseNumber != "" {
		score += 10
	}
	if c.CaseInformation.CourtName != "" {
		score += 10
	}
	if c.CaseInformation.CourtDistrict != "" {
		score += 10
	}
	if c.Plaintiff.Name != "" {
		score += 10
	}
	if c.Plaintiff.Address.Street != "" || c.Plaintiff.Address.City != "" {
		score += 5
	}
	if c.Plaintiff.Phone != "" || c.Plaintiff.Email != "" {
		score += 5
	}

	defendantPoints := len(c.Defendants) * perDefendantPoints
	if defendantPoints > maxDefendantPoints {
		defendantPoints = maxDefendantPoints
	}
	score += float64(defendantPoints)

	if c.PlaintiffCounsel.Name != "" {
		score += 5
	}
	if c.PlaintiffCounsel.Firm != "" {
		score += 5
	}
	if c.PlaintiffCounsel.Phone != "" || c.PlaintiffCounsel.Email != "" {
		score += 5
	}

	backgroundPoints := len(c.FactualBackground.Allegations) * perAllegationPoints
	if backgroundPoints > maxBackgroundPoints {
		backgroundPoints = maxBackgroundPoints
	}
	score += float64(backgroundPoints)

	if len(c.Warnings) == 0 {
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
