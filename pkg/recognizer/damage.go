package recognizer

import (
	"regexp"
	"strings"

	"case-consolidator-fiber/pkg/models"
)

// damageBlockHeader marks the start of the DAMAGES: block in attorney
// notes; damageBulletLine is one bulleted entry within it.
var (
	damageBlockHeader = regexp.MustCompile(`(?i)^DAMAGES:\s*$`)
	damageBulletLine  = regexp.MustCompile(`^-\s*(.+?)(?::\s*(.*))?$`)
)

// ExtractDamages parses the DAMAGES: block out of attorney notes text
// and classifies each bulleted line against damagePatternTable, falling
// back to damageKeywordBuckets for anything the table doesn't cover.
func ExtractDamages(text string) []models.DamageItem {
	lines := strings.Split(text, "\n")
	var items []models.DamageItem

	inBlock := false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if damageBlockHeader.MatchString(trimmed) {
			inBlock = true
			continue
		}
		if !inBlock {
			continue
		}
		if trimmed == "" {
			inBlock = false
			continue
		}
		m := damageBulletLine.FindStringSubmatch(trimmed)
		if m == nil {
			inBlock = false
			continue
		}
		items = append(items, classifyDamageLine(trimmed, m[1], m[2]))
	}

	return items
}

// classifyDamageLine turns one bulleted DAMAGES: line into a DamageItem,
// first checking damagePatternTable for a header-string match, then
// falling back to damageKeywordBuckets, then to DamageCategoryOther.
func classifyDamageLine(fullLine, header, detail string) models.DamageItem {
	item := models.DamageItem{
		Description:       strings.TrimSpace(fullLine),
		EvidenceAvailable: lineHasEvidence(fullLine),
	}

	for _, dp := range damagePatternTable {
		if strings.HasPrefix(header, dp.header) {
			item.Category = models.DamageCategory(dp.category)
			item.Type = dp.typ
			return item
		}
	}
	for key, dp := range specialDamagePatterns {
		if strings.Contains(strings.ToLower(header), key) {
			item.Category = models.DamageCategory(dp.category)
			item.Type = dp.typ
			return item
		}
	}

	lower := strings.ToLower(fullLine)
	for _, bucket := range damageKeywordBuckets {
		if bucket.keyword.MatchString(lower) {
			item.Category = models.DamageCategory(bucket.category)
			item.Type = "unclassified"
			return item
		}
	}

	item.Category = models.DamageCategoryOther
	item.Type = "unclassified"
	return item
}

func lineHasEvidence(line string) bool {
	for _, re := range evidenceIndicators {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// GroupDamagesByCategory buckets a flat damage-item slice into the
// category->items map the hydrated schema's categorized_damages section
// expects, seeding every known category with an empty slice so the
// output is stable across runs regardless of which categories a
// particular case happens to produce.
func GroupDamagesByCategory(items []models.DamageItem) map[models.DamageCategory][]models.DamageItem {
	grouped := make(map[models.DamageCategory][]models.DamageItem, len(models.AllDamageCategories()))
	for _, c := range models.AllDamageCategories() {
		grouped[c] = []models.DamageItem{}
	}
	for _, it := range items {
		grouped[it.Category] = append(grouped[it.Category], it)
	}
	return grouped
}
