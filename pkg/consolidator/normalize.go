package consolidator

import (
	"regexp"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

var parentheticalPattern = regexp.MustCompile(`\([^)]*\)`)
var trailingPunctuation = regexp.MustCompile(`[.,;:]+$`)
var collapseWhitespace = regexp.MustCompile(`\s+`)
var commaOrPeriod = regexp.MustCompile(`[,.]`)

// defendantSubstitutions maps a cleaned (uppercased, comma-free,
// whitespace-collapsed) defendant string to its canonical
// deduplication key. Comma-insensitive by construction: commas are
// stripped before lookup, resolving the upstream inconsistency between
// comma and comma-free spellings of the same entity in favor of a
// single normalization table (see DESIGN.md OQ2).
var defendantSubstitutions = map[string]string{
	"TRANS UNION":              "TRANSUNION",
	"TRANS UNION LLC":          "TRANSUNION",
	"TRANSUNION LLC":           "TRANSUNION",
	"TRANSUNION":               "TRANSUNION",
	"EQUIFAX INFORMATION SERVICES LLC": "EQUIFAX",
	"EQUIFAX INFORMATION SERVICES":     "EQUIFAX",
	"EQUIFAX INC":                      "EQUIFAX",
	"EQUIFAX":                          "EQUIFAX",
	"EXPERIAN INFORMATION SOLUTIONS INC": "EXPERIAN",
	"EXPERIAN INFORMATION SOLUTIONS":     "EXPERIAN",
	"EXPERIAN":                           "EXPERIAN",
}

// canonicalDefendants holds the display-name lookup table: normalized
// key -> the full legal name, state of incorporation, and business
// status to present in the hydrated record, for the defendants whose
// identity is well known in FCRA cases (the three major CRAs).
var canonicalDefendants = map[string]models.Defendant{
	"TRANSUNION": {
		Name: "Trans Union LLC", ShortName: "TransUnion",
		Type: "credit_reporting_agency", StateOfIncorporation: "Delaware",
		BusinessStatus: "a Delaware limited liability company authorized to do business in New York",
	},
	"EQUIFAX": {
		Name: "Equifax Information Services LLC", ShortName: "Equifax",
		Type: "credit_reporting_agency", StateOfIncorporation: "Georgia",
		BusinessStatus: "a Georgia limited liability company authorized to do business in New York",
	},
	"EXPERIAN": {
		Name: "Experian Information Solutions, Inc.", ShortName: "Experian",
		Type: "credit_reporting_agency", StateOfIncorporation: "Ohio",
		BusinessStatus: "an Ohio corporation authorized to do business in New York",
	},
}

// standardCRAKeys is the set of normalized keys treated as "the three
// major credit reporting agencies" for the FCRA heuristic and for the
// NY FCRA cause of action's defendant scoping.
var standardCRAKeys = map[string]bool{
	"TRANSUNION": true,
	"EQUIFAX":    true,
	"EXPERIAN":   true,
}

// normalizeDefendantKey maps a raw defendant string to the canonical
// key used for deduplication only (display names come from
// canonicalDefendant / genericDefendant).
func normalizeDefendantKey(raw string) string {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = parentheticalPattern.ReplaceAllString(cleaned, "")
	cleaned = commaOrPeriod.ReplaceAllString(cleaned, "")
	cleaned = collapseWhitespace.ReplaceAllString(cleaned, " ")
	cleaned = trailingPunctuation.ReplaceAllString(cleaned, "")
	cleaned = strings.TrimSpace(cleaned)

	if canonical, ok := defendantSubstitutions[cleaned]; ok {
		return canonical
	}
	return cleaned
}

// buildDefendant resolves a raw defendant string to a Defendant record:
// the canonical display name if the normalized key is well known,
// otherwise a generic record built from the cleaned raw string.
func buildDefendant(raw string) models.Defendant {
	key := normalizeDefendantKey(raw)
	if canonical, ok := canonicalDefendants[key]; ok {
		d := canonical
		d.NormalizedKey = key
		return d
	}
	return genericDefendant(raw, key)
}

// genericDefendant builds a Defendant for an entity with no canonical
// lookup entry: title-cased name, an "unknown" type, and no
// incorporation/business-status detail, since none is known.
func genericDefendant(raw, key string) models.Defendant {
	name := strings.TrimSpace(raw)
	name = parentheticalPattern.ReplaceAllString(name, "")
	name = collapseWhitespace.ReplaceAllString(name, " ")
	name = strings.TrimSpace(trailingPunctuation.ReplaceAllString(name, ""))

	return models.Defendant{
		Name:          name,
		ShortName:     name,
		Type:          "unknown",
		NormalizedKey: key,
	}
}
