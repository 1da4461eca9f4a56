package extract

import (
	"strings"

	"dining-planner/internal/model"
)

type categoryRule struct {
	category model.Category
	hint     []string // matched against the vendor category column
	text     []string // matched against the free text
}

var categoryRules = []categoryRule{
	{model.CategoryEntree, []string{"entree", "entrée", "main"}, []string{"main course", "entree", "entrée"}},
	{model.CategorySide, []string{"side"}, []string{"side dish"}},
	{model.CategoryDessert, []string{"dessert", "sweet", "bakery"}, []string{"dessert"}},
	{model.CategoryBeverage, []string{"beverage", "drink"}, []string{"drink", "beverage"}},
	{model.CategorySnack, []string{"snack"}, []string{"snack"}},
}

// Category classifies an item. The vendor-supplied hint always wins over the
// free text; unclassifiable items are entrees.
func Category(hint, text string) model.Category {
	if c, ok := matchCategory(strings.ToLower(hint), func(r categoryRule) []string { return r.hint }); ok {
		return c
	}
	if c, ok := matchCategory(strings.ToLower(text), func(r categoryRule) []string { return r.text }); ok {
		return c
	}
	return model.CategoryEntree
}

func matchCategory(lower string, keywords func(categoryRule) []string) (model.Category, bool) {
	if lower == "" {
		return "", false
	}
	for _, rule := range categoryRules {
		for _, keyword := range keywords(rule) {
			if strings.Contains(lower, keyword) {
				return rule.category, true
			}
		}
	}
	return "", false
}
