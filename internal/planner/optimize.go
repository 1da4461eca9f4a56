package planner

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"dining-planner/internal/model"
)

const (
	budgetFixThreshold  = 70
	budgetFixCount      = 2
	proteinShortfall    = 0.8
	lowProteinThreshold = 20
)

// Optimize makes one bounded pass over items: a budget fix for the two most
// expensive items when the budget score is below 70, then a protein fix for
// the lowest-protein item when total protein is under 80% of target.
//
// Replacements keep their slot, so item order is preserved. The returned log
// is empty when nothing was replaced. items is never modified.
func Optimize(items []model.FoodItem, catalog []model.FoodItem, goals model.GoalProfile) ([]model.FoodItem, []string) {
	optimized := make([]model.FoodItem, len(items))
	copy(optimized, items)
	improvements := []string{}

	if Score(items, goals).Budget < budgetFixThreshold {
		for _, idx := range mostExpensive(optimized, budgetFixCount) {
			original := optimized[idx]
			alternatives := Suggest(original, catalog, goals, model.ReasonBudget)
			if len(alternatives) == 0 {
				continue
			}
			optimized[idx] = alternatives[0]
			improvements = append(improvements, fmt.Sprintf("Replaced %s with %s to save $%.2f",
				original.Name, alternatives[0].Name, original.Price-alternatives[0].Price))
		}
	}

	totals := Aggregate(optimized)
	if totals.Protein < goals.TargetProtein*proteinShortfall {
		if idx, ok := lowestProtein(optimized); ok {
			original := optimized[idx]
			alternatives := Suggest(original, catalog, goals, model.ReasonNutrition)
			if len(alternatives) > 0 {
				optimized[idx] = alternatives[0]
				gain := math.Round((alternatives[0].Protein-original.Protein)*10) / 10
				improvements = append(improvements, fmt.Sprintf("Upgraded to %s for +%sg protein",
					alternatives[0].Name, strconv.FormatFloat(gain, 'f', -1, 64)))
			}
		}
	}

	return optimized, improvements
}

// mostExpensive returns the indices of the n highest-priced items. Ties keep
// slice order.
func mostExpensive(items []model.FoodItem, n int) []int {
	idx := make([]int, len(items))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return items[idx[a]].Price > items[idx[b]].Price })
	if len(idx) > n {
		idx = idx[:n]
	}
	return idx
}

// lowestProtein returns the index of the lowest-protein item under the
// low-protein threshold, preferring the earliest on ties.
func lowestProtein(items []model.FoodItem) (int, bool) {
	found := -1
	for i, item := range items {
		if item.Protein >= lowProteinThreshold {
			continue
		}
		if found < 0 || item.Protein < items[found].Protein {
			found = i
		}
	}
	return found, found >= 0
}
