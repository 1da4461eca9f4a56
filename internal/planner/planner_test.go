package planner

import (
	"testing"

	"dining-planner/internal/model"

	"github.com/stretchr/testify/assert"
)

func food(id string, category model.Category, price float64, calories int, protein float64, allergens ...string) model.FoodItem {
	if allergens == nil {
		allergens = []string{}
	}
	return model.FoodItem{
		ID:        id,
		Name:      id,
		Category:  category,
		Price:     price,
		Calories:  calories,
		Protein:   protein,
		Allergens: allergens,
		Tags:      []string{},
		Available: true,
	}
}

func TestAggregate(t *testing.T) {
	items := []model.FoodItem{
		{Calories: 380, Protein: 35, Carbs: 12, Fat: 20, Price: 8.5},
		{Calories: 120, Protein: 2.5, Carbs: 30, Fat: 0.5, Price: 2.25},
	}

	totals := Aggregate(items)

	assert.Equal(t, model.Totals{Calories: 500, Protein: 37.5, Carbs: 42, Fat: 20.5, Cost: 10.75}, totals)
}

func TestAggregate_Empty(t *testing.T) {
	assert.Equal(t, model.Totals{}, Aggregate(nil))
}

func TestConflicts(t *testing.T) {
	tests := []struct {
		name         string
		allergens    []string
		restrictions []string
		want         bool
	}{
		{"exact match", []string{"dairy"}, []string{"dairy"}, true},
		{"case insensitive", []string{"Peanuts"}, []string{"peanuts"}, true},
		{"restriction phrase contains allergen", []string{"dairy"}, []string{"Dairy-Free"}, true},
		{"unrelated restriction", []string{"dairy"}, []string{"vegetarian"}, false},
		{"no restrictions", []string{"dairy"}, nil, false},
		{"no allergens", nil, []string{"dairy"}, false},
		{"blank restriction", []string{"soy"}, []string{"  "}, false},
		{"allergen longer than restriction", []string{"tree nuts"}, []string{"nuts"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.FoodItem{Allergens: tt.allergens}
			assert.Equal(t, tt.want, Conflicts(item, tt.restrictions))
		})
	}
}
