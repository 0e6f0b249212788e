package consolidator

import (
	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/settings"
)

// buildPlaintiffCounsel implements step 5: firm-level fields come from
// the externally-supplied settings object; the case-specific attorney
// name comes from attorney-notes PLAINTIFF_COUNSEL_NAME.
func buildPlaintiffCounsel(s *settings.Settings, notes attorneyNotes) models.PlaintiffCounsel {
	if s == nil {
		s = settings.Default()
	}
	return models.PlaintiffCounsel{
		Name:    notes.CounselName,
		Firm:    s.FirmName,
		Address: models.Address{Street: s.AddressBlock()},
		Phone:   s.FirmPhone,
		Email:   s.FirmEmail,
	}
}
