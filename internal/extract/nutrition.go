// Package extract pulls nutrition facts, allergens, dietary labels and a coarse
// category out of the free text that vendor exports attach to menu items.
//
// Every function is a best-effort heuristic: nothing here returns an error, and
// a missing match is represented by nil, an empty slice or the default category.
package extract

import (
	"regexp"
	"strconv"

	"dining-planner/internal/model"
)

// nutrientPattern pairs a compiled pattern with the field it populates.
type nutrientPattern struct {
	name    string
	pattern *regexp.Regexp
	set     func(facts *model.NutritionFacts, value float64)
}

// value captures a number followed by an optional unit token.
const value = `(\d+(?:\.\d+)?)\s*(?:mg|g|%)?\s*`

// nutrientPatterns is evaluated in order; each entry takes the first match only.
var nutrientPatterns = []nutrientPattern{
	{"calories", regexp.MustCompile(`(?i)(\d+)\s*(?:kcal|calories?)`), func(f *model.NutritionFacts, v float64) {
		n := int(v)
		f.Calories = &n
	}},
	{"protein", regexp.MustCompile(`(?i)` + value + `protein`), func(f *model.NutritionFacts, v float64) { f.Protein = &v }},
	{"carbs", regexp.MustCompile(`(?i)` + value + `(?:total\s+)?carb(?:ohydrate)?s?`), func(f *model.NutritionFacts, v float64) { f.Carbs = &v }},
	{"fat", regexp.MustCompile(`(?i)` + value + `(?:total\s+)?fat`), func(f *model.NutritionFacts, v float64) { f.Fat = &v }},
	{"fiber", regexp.MustCompile(`(?i)` + value + `(?:dietary\s+)?fib(?:er|re)`), func(f *model.NutritionFacts, v float64) { f.Fiber = &v }},
	{"sugar", regexp.MustCompile(`(?i)` + value + `sugars?`), func(f *model.NutritionFacts, v float64) { f.Sugar = &v }},
	{"sodium", regexp.MustCompile(`(?i)` + value + `sodium`), func(f *model.NutritionFacts, v float64) { f.Sodium = &v }},
	{"saturatedFat", regexp.MustCompile(`(?i)` + value + `saturated\s*fat`), func(f *model.NutritionFacts, v float64) { f.SaturatedFat = &v }},
	{"transFat", regexp.MustCompile(`(?i)` + value + `trans\s*fat`), func(f *model.NutritionFacts, v float64) { f.TransFat = &v }},
	{"cholesterol", regexp.MustCompile(`(?i)` + value + `cholesterol`), func(f *model.NutritionFacts, v float64) { f.Cholesterol = &v }},
	{"vitaminA", regexp.MustCompile(`(?i)` + value + `vitamin\s*a\b`), func(f *model.NutritionFacts, v float64) { f.VitaminA = &v }},
	{"vitaminC", regexp.MustCompile(`(?i)` + value + `vitamin\s*c\b`), func(f *model.NutritionFacts, v float64) { f.VitaminC = &v }},
	{"calcium", regexp.MustCompile(`(?i)` + value + `calcium`), func(f *model.NutritionFacts, v float64) { f.Calcium = &v }},
	{"iron", regexp.MustCompile(`(?i)` + value + `iron\b`), func(f *model.NutritionFacts, v float64) { f.Iron = &v }},
}

// Nutrition scans text for nutrient phrases such as "380 calories" or
// "35g protein". It returns nil when no nutrient matched.
func Nutrition(text string) *model.NutritionFacts {
	if text == "" {
		return nil
	}

	var facts model.NutritionFacts
	found := 0
	for _, p := range nutrientPatterns {
		match := p.pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		v, err := strconv.ParseFloat(match[1], 64)
		if err != nil {
			continue
		}
		p.set(&facts, v)
		found++
	}

	if found == 0 {
		return nil
	}
	return &facts
}
