package planner

import (
	"math"
	"sort"

	"dining-planner/internal/model"
)

// planCategories are filled in this order, one item each.
var planCategories = []model.Category{
	model.CategoryEntree,
	model.CategorySide,
	model.CategoryBeverage,
	model.CategorySnack,
}

// Generate picks the best protein-per-dollar item of each plan category among
// the items that do not conflict with the goal restrictions, then scores the
// result. Categories without a safe candidate are skipped.
func Generate(catalog []model.FoodItem, goals model.GoalProfile) ([]model.FoodItem, model.MealPlanScore) {
	selected := make([]model.FoodItem, 0, len(planCategories))

	for _, category := range planCategories {
		candidates := make([]model.FoodItem, 0)
		for _, item := range catalog {
			if item.Category == category && !Conflicts(item, goals.DietaryRestrictions) {
				candidates = append(candidates, item)
			}
		}
		if len(candidates) == 0 {
			continue
		}

		sort.SliceStable(candidates, func(i, j int) bool {
			return proteinPerDollar(candidates[i]) > proteinPerDollar(candidates[j])
		})
		selected = append(selected, candidates[0])
	}

	return selected, Score(selected, goals)
}

// proteinPerDollar ranks free items with protein above everything else. Free
// items without protein rank as zero.
func proteinPerDollar(item model.FoodItem) float64 {
	if item.Price > 0 {
		return item.Protein / item.Price
	}
	if item.Protein > 0 {
		return math.Inf(1)
	}
	return 0
}
