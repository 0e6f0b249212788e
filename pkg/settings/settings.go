// Package settings loads the firm/filing settings that customize a
// consolidation run. Unlike internal/config (ambient, per-deployment,
// env-var driven), Settings is per-firm data naturally shaped as a
// checked-in or ops-managed file, loaded from YAML.
package settings

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Documented placeholders used when a field is missing.
const (
	PlaceholderFirmName      = "Law Office"
	PlaceholderCourtName     = "UNITED STATES DISTRICT COURT"
	PlaceholderCourtDistrict = "SOUTHERN DISTRICT OF NEW YORK"
)

// Settings is the firm-identity and default-filing-venue structure
// that customizes a consolidation run.
type Settings struct {
	FirmName        string   `yaml:"firm_name" validate:"omitempty"`
	FirmAddress     []string `yaml:"firm_address"`
	FirmPhone       string   `yaml:"firm_phone"`
	FirmEmail       string   `yaml:"firm_email" validate:"omitempty,email"`
	DefaultCourt    string   `yaml:"default_court"`
	DefaultDistrict string   `yaml:"default_district"`
}

var validate = validator.New()

// Default returns a Settings populated entirely with documented
// placeholders, used when no settings file is supplied.
func Default() *Settings {
	return &Settings{
		FirmName:        PlaceholderFirmName,
		DefaultCourt:    PlaceholderCourtName,
		DefaultDistrict: PlaceholderCourtDistrict,
	}
}

// Load reads a YAML settings file from path, applying documented
// placeholders for any field left empty, and validates the result.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	s := &Settings{}
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	s.applyPlaceholders()

	if err := validate.Struct(s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) applyPlaceholders() {
	if s.FirmName == "" {
		s.FirmName = PlaceholderFirmName
	}
	if s.DefaultCourt == "" {
		s.DefaultCourt = PlaceholderCourtName
	}
	if s.DefaultDistrict == "" {
		s.DefaultDistrict = PlaceholderCourtDistrict
	}
}

// AddressBlock joins the firm's multi-line address into one string using
// ", " as the separator, for contexts (like the hydrated JSON) that want
// a single address string rather than a line list.
func (s *Settings) AddressBlock() string {
	out := ""
	for i, line := range s.FirmAddress {
		if i > 0 {
			out += ", "
		}
		out += line
	}
	return out
}
