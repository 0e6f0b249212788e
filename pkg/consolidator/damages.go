package consolidator

import (
	"regexp"
	"strings"

	"case-consolidator-fiber/pkg/models"
	"case-consolidator-fiber/pkg/recognizer"
)

var damagesBlockHeader = regexp.MustCompile(`(?i)^DAMAGES:\s*$`)

// northStarSubcategoryPattern matches the four-subcategory hydrated
// damages layout: "FINANCIAL:", "REPUTATIONAL:", "EMOTIONAL:",
// "PERSONAL_COSTS:" lines inside the DAMAGES: block.
var northStarSubcategoryPattern = regexp.MustCompile(`(?i)^(FINANCIAL|REPUTATIONAL|EMOTIONAL|PERSONAL_COSTS):\s*(.*)$`)

// northStarCategoryMap maps a North-Star subcategory label to the
// closest DamageCategory enum value. "financial" and "reputational"
// have no direct analogue in the category enum (which is organized by
// harm-source — credit_denial, employment, housing — rather than
// harm-type), so both fall to DamageCategoryOther; "personal_costs"
// maps to time_resources, the closest existing category.
var northStarCategoryMap = map[string]models.DamageCategory{
	"FINANCIAL":      models.DamageCategoryOther,
	"REPUTATIONAL":   models.DamageCategoryOther,
	"EMOTIONAL":      models.DamageCategoryEmotional,
	"PERSONAL_COSTS": models.DamageCategoryTimeResources,
}

// buildDamages implements step 7: the North-Star DAMAGES: block takes
// priority over the pattern-table damage recognizer; denial-letter
// details from every processed document are attached regardless of
// which damages source was used.
func buildDamages(attorneyNotesText string, allResults []models.ExtractionResult) models.Damages {
	items, found := parseNorthStarDamages(attorneyNotesText)
	if !found {
		items = recognizer.ExtractDamages(attorneyNotesText)
	}
	if items == nil {
		items = []models.DamageItem{}
	}

	var denialDetails []models.DenialDetail
	for _, r := range allResults {
		if !r.Success {
			continue
		}
		if detail, ok := extractDenialDetails(r); ok {
			denialDetails = append(denialDetails, detail)
		}
	}

	return models.Damages{
		StructuredDamages:  items,
		CategorizedDamages: recognizer.GroupDamagesByCategory(items),
		DenialDetails:      denialDetails,
	}
}

// parseNorthStarDamages looks for the four-subcategory structured
// layout inside the DAMAGES: block. found is false when the block is
// absent or uses the flat bulleted pattern-table layout instead.
func parseNorthStarDamages(text string) ([]models.DamageItem, bool) {
	lines := strings.Split(text, "\n")
	var items []models.DamageItem
	inBlock := false

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if damagesBlockHeader.MatchString(trimmed) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" {
			break
		}
		m := northStarSubcategoryPattern.FindStringSubmatch(trimmed)
		if m == nil {
			// Not a North-Star subcategory line: this DAMAGES: block
			// uses the flat bulleted layout instead.
			return nil, false
		}
		value := strings.TrimSpace(m[2])
		if value == "" {
			continue
		}
		items = append(items, models.DamageItem{
			Category:    northStarCategoryMap[strings.ToUpper(m[1])],
			Type:        strings.ToLower(m[1]),
			Description: value,
			Selected:    true,
		})
	}

	return items, len(items) > 0
}
