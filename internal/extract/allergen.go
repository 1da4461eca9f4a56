package extract

import "strings"

type allergenRule struct {
	allergen string
	variants []string
}

// allergenRules are matched as lower-case substrings, in this order. Singular
// and generic spellings map onto the canonical allergen.
var allergenRules = []allergenRule{
	{"milk", []string{"milk"}},
	{"eggs", []string{"eggs"}},
	{"fish", []string{"fish"}},
	{"shellfish", []string{"shellfish"}},
	{"tree nuts", []string{"tree nuts", "nuts"}},
	{"peanuts", []string{"peanuts", "peanut"}},
	{"wheat", []string{"wheat"}},
	{"soy", []string{"soy"}},
	{"gluten", []string{"gluten"}},
	{"dairy", []string{"dairy"}},
	{"almond", []string{"almond"}},
	{"walnut", []string{"walnut"}},
	{"cashew", []string{"cashew"}},
	{"pecan", []string{"pecan"}},
	{"hazelnut", []string{"hazelnut"}},
	{"pistachio", []string{"pistachio"}},
	{"macadamia", []string{"macadamia"}},
	{"brazil nut", []string{"brazil nut"}},
	{"chestnut", []string{"chestnut"}},
	{"pine nut", []string{"pine nut"}},
	{"sesame", []string{"sesame"}},
	{"mustard", []string{"mustard"}},
	{"celery", []string{"celery"}},
	{"lupin", []string{"lupin"}},
	{"sulfites", []string{"sulfites"}},
	{"molluscs", []string{"molluscs"}},
}

// AllergenVocabulary returns the canonical allergen names.
func AllergenVocabulary() []string {
	out := make([]string, len(allergenRules))
	for i, rule := range allergenRules {
		out[i] = rule.allergen
	}
	return out
}

// Allergens returns each canonical allergen whose variants appear in text. An
// allergen is emitted once no matter how many of its variants match.
func Allergens(text string) []string {
	found := []string{}
	if text == "" {
		return found
	}

	lower := strings.ToLower(text)
	for _, rule := range allergenRules {
		for _, variant := range rule.variants {
			if strings.Contains(lower, variant) {
				found = append(found, rule.allergen)
				break
			}
		}
	}
	return found
}
