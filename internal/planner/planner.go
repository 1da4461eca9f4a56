// Package planner scores, repairs and generates daily meal plans from a catalog
// snapshot and a goal profile.
//
// Every function is pure: inputs are never mutated, nothing blocks, and
// nothing returns an error. Missing candidates degrade to empty results.
package planner

import (
	"strings"

	"dining-planner/internal/model"
)

// Aggregate sums nutrition and price over items. Empty input yields zero totals.
func Aggregate(items []model.FoodItem) model.Totals {
	var totals model.Totals
	for _, item := range items {
		totals.Calories += float64(item.Calories)
		totals.Protein += item.Protein
		totals.Carbs += item.Carbs
		totals.Fat += item.Fat
		totals.Cost += item.Price
	}
	return totals
}

// Conflicts reports whether any allergen of item clashes with a dietary
// restriction. Matching is case-insensitive and a restriction clashes when it
// contains the allergen, so both "dairy" and "dairy-free" exclude dairy.
func Conflicts(item model.FoodItem, restrictions []string) bool {
	for _, restriction := range restrictions {
		r := strings.ToLower(strings.TrimSpace(restriction))
		if r == "" {
			continue
		}
		for _, allergen := range item.Allergens {
			a := strings.ToLower(strings.TrimSpace(allergen))
			if a != "" && strings.Contains(r, a) {
				return true
			}
		}
	}
	return false
}
