package planner

import (
	"sort"

	"dining-planner/internal/model"
)

const maxSuggestions = 3

// Suggest returns up to three replacements for current from catalog, all in the
// same category. An unknown reason or an empty pool yields an empty slice.
func Suggest(current model.FoodItem, catalog []model.FoodItem, goals model.GoalProfile, reason model.SubstitutionReason) []model.FoodItem {
	pool := make([]model.FoodItem, 0, len(catalog))
	for _, item := range catalog {
		if item.ID == current.ID || item.Category != current.Category {
			continue
		}

		switch reason {
		case model.ReasonBudget:
			if item.Price >= current.Price {
				continue
			}
		case model.ReasonNutrition:
			if item.Calories >= current.Calories {
				continue
			}
		case model.ReasonDietary:
			if Conflicts(item, goals.DietaryRestrictions) {
				continue
			}
		default:
			return []model.FoodItem{}
		}

		pool = append(pool, item)
	}

	switch reason {
	case model.ReasonBudget:
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].Price < pool[j].Price })
	case model.ReasonNutrition:
		sort.SliceStable(pool, func(i, j int) bool { return pool[i].Protein > pool[j].Protein })
	}

	if len(pool) > maxSuggestions {
		pool = pool[:maxSuggestions]
	}
	return pool
}
