package planner

import (
	"slices"
	"strings"

	"dining-planner/internal/model"
)

// requiredTags maps a restriction keyword to the dietary tag an item must carry
// to satisfy it.
var requiredTags = []struct {
	keyword string
	tag     string
}{
	{"vegetarian", "vegetarian"},
	{"vegan", "vegan"},
	{"gluten", "gluten-free"},
}

// FilterByRestrictions keeps items that satisfy every restriction: lifestyle
// restrictions (vegetarian, vegan, gluten) require the matching tag, and no
// allergen may conflict. Input order is preserved.
func FilterByRestrictions(items []model.FoodItem, restrictions []string) []model.FoodItem {
	if len(restrictions) == 0 {
		return items
	}

	out := make([]model.FoodItem, 0, len(items))
	for _, item := range items {
		if satisfies(item, restrictions) {
			out = append(out, item)
		}
	}
	return out
}

func satisfies(item model.FoodItem, restrictions []string) bool {
	for _, restriction := range restrictions {
		r := strings.ToLower(restriction)
		for _, req := range requiredTags {
			if strings.Contains(r, req.keyword) && !slices.Contains(item.Tags, req.tag) {
				return false
			}
		}
	}
	return !Conflicts(item, restrictions)
}

// NutritionCriteria bounds a catalog search. Zero fields are ignored.
type NutritionCriteria struct {
	MaxCalories float64 `json:"maxCalories,omitempty"`
	MinProtein  float64 `json:"minProtein,omitempty"`
	MaxCarbs    float64 `json:"maxCarbs,omitempty"`
	MaxFat      float64 `json:"maxFat,omitempty"`
}

// SearchByNutrition keeps items within every set bound.
func SearchByNutrition(items []model.FoodItem, c NutritionCriteria) []model.FoodItem {
	out := make([]model.FoodItem, 0, len(items))
	for _, item := range items {
		switch {
		case c.MaxCalories > 0 && float64(item.Calories) > c.MaxCalories:
		case c.MinProtein > 0 && item.Protein < c.MinProtein:
		case c.MaxCarbs > 0 && item.Carbs > c.MaxCarbs:
		case c.MaxFat > 0 && item.Fat > c.MaxFat:
		default:
			out = append(out, item)
		}
	}
	return out
}
