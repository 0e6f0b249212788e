package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, PlaceholderFirmName, s.FirmName)
	assert.Equal(t, PlaceholderCourtName, s.DefaultCourt)
}

func TestLoadAppliesPlaceholdersForBlankFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
firm_phone: "555-1212"
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, PlaceholderFirmName, s.FirmName)
	assert.Equal(t, "555-1212", s.FirmPhone)
	assert.Equal(t, PlaceholderCourtDistrict, s.DefaultDistrict)
}

func TestLoadFullSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
firm_name: "Smith & Associates"
firm_address:
  - "123 Main St"
  - "Suite 400"
  - "New York, NY 10001"
firm_phone: "212-555-0100"
firm_email: "intake@smithlaw.example"
default_court: "UNITED STATES DISTRICT COURT"
default_district: "EASTERN DISTRICT OF NEW YORK"
`), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Smith & Associates", s.FirmName)
	assert.Equal(t, "123 Main St, Suite 400, New York, NY 10001", s.AddressBlock())
	assert.Equal(t, "EASTERN DISTRICT OF NEW YORK", s.DefaultDistrict)
}
