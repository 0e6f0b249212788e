package consolidator

import (
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/settings"
)

// buildPlaintiff implements the plaintiff half of step 4: NAME/ADDRESS/
// PHONE come from attorney notes first; when attorney notes omit a
// field, the highest-confidence "plaintiff"-role LegalEntity found
// across every processed document fills the gap.
func buildPlaintiff(notes attorneyNotes, allResults []models.ExtractionResult, courtDistrict string) models.Plaintiff {
	name := notes.PlaintiffName
	phone := notes.PlaintiffPhone
	addrRaw := notes.PlaintiffAddr

	if name == "" || phone == "" || addrRaw == "" {
		if entity, ok := bestPlaintiffEntity(allResults); ok {
			if name == "" {
				name = entity.Name
			}
			if phone == "" {
				phone = entity.Phone
			}
			if addrRaw == "" {
				addrRaw = entity.Address
			}
		}
	}

	address := parsePlaintiffAddress(addrRaw)

	return models.Plaintiff{
		Name:           name,
		Address:        address,
		Phone:          phone,
		Residency:      deriveResidency(address, courtDistrict),
		ConsumerStatus: consumerStatus,
	}
}

// bestPlaintiffEntity returns the highest-confidence plaintiff-role
// LegalEntity across all documents.
func bestPlaintiffEntity(allResults []models.ExtractionResult) (models.LegalEntity, bool) {
	var best models.LegalEntity
	bestConf := -1.0
	for _, r := range allResults {
		for _, e := range r.Entities {
			if e.Role == models.PartyRolePlaintiff && e.Confidence > bestConf {
				best = e
				bestConf = e.Confidence
			}
		}
	}
	return best, bestConf >= 0
}

// buildParties assembles the plaintiff, defendants, and counsel
// sections together, since defendant exclusion needs the resolved
// plaintiff name and residency needs the resolved court district.
func buildParties(notes attorneyNotes, courtDistrict, combinedText string, allResults []models.ExtractionResult, s *settings.Settings) (models.Plaintiff, []models.Defendant, models.PlaintiffCounsel, []string) {
	plaintiff := buildPlaintiff(notes, allResults, courtDistrict)
	defendants, warnings := buildDefendants(notes.Defendants, combinedText, plaintiff.Name)
	counsel := buildPlaintiffCounsel(s, notes)
	return plaintiff, defendants, counsel, warnings
}
