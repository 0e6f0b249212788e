package consolidator

import (
	"fmt"
	"regexp"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

var structuredAddressPattern = regexp.MustCompile(`(?i)^(.*?),\s*([A-Za-z\s]+?),\s*([A-Z]{2})\s*(\d{5}(?:-\d{4})?)$`)

var districtStatePattern = regexp.MustCompile(`(?i)District\s+of\s+([A-Za-z\s]+)$`)

// parsePlaintiffAddress splits a free-text "street, city, ST zip"
// address line into its structured components. Falls back to putting
// the whole string in Street when it doesn't match the expected shape.
func parsePlaintiffAddress(raw string) models.Address {
	raw = strings.TrimSpace(raw)
	if m := structuredAddressPattern.FindStringSubmatch(raw); m != nil {
		return models.Address{
			Street:  strings.TrimSpace(m[1]),
			City:    strings.TrimSpace(m[2]),
			State:   strings.TrimSpace(m[3]),
			ZipCode: strings.TrimSpace(m[4]),
		}
	}
	return models.Address{Street: raw}
}

// stateFromDistrict derives a state name from a federal district string
// like "Southern District of New York", used to fill in residency when
// the plaintiff's own address doesn't carry a state.
func stateFromDistrict(district string) string {
	m := districtStatePattern.FindStringSubmatch(district)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// deriveResidency builds the residency narrative field from whatever
// state information is available, preferring the plaintiff's own
// address over the filing district.
func deriveResidency(address models.Address, courtDistrict string) string {
	state := address.State
	if state == "" {
		state = stateFromDistrict(courtDistrict)
	}
	if state == "" {
		return ""
	}
	return fmt.Sprintf("resides in the State of %s", state)
}

// consumerStatus is the documented FCRA consumer-status boilerplate:
// every plaintiff in this system is alleged to be a "consumer" as that
// term is defined by the statute.
const consumerStatus = "a \"consumer\" as that term is defined by the Fair Credit Reporting Act, 15 U.S.C. § 1681a(c)"
