package planner

import (
	"fmt"
	"math"

	"dining-planner/internal/model"
)

const (
	nutritionWeight = 0.5
	budgetWeight    = 0.3
	dietaryWeight   = 0.2

	violationPenalty = 25
)

const (
	feedbackExcellent = "Excellent meal plan! Well balanced and budget-friendly."
	feedbackGood      = "Good meal plan with room for minor improvements."
	feedbackAdjust    = "Consider adjusting this meal plan for better nutrition or budget alignment."
)

// Score evaluates items against goals. Sub-scores and the overall score are
// rounded to whole points; thresholds are applied before rounding.
func Score(items []model.FoodItem, goals model.GoalProfile) model.MealPlanScore {
	totals := Aggregate(items)
	feedback := []string{}

	nutrition := nutritionScore(totals, goals)
	if nutrition < 70 {
		feedback = append(feedback, fmt.Sprintf("Nutrition could be improved - %d%% off target", int(math.Round(100-nutrition))))
	}

	utilization := budgetUtilization(totals.Cost, goals.MaxBudget)
	budget := budgetScore(utilization)
	if utilization > 1 {
		feedback = append(feedback, fmt.Sprintf("Over budget by $%.2f", totals.Cost-goals.MaxBudget))
	}

	violations := 0
	for _, item := range items {
		if Conflicts(item, goals.DietaryRestrictions) {
			violations++
		}
	}
	dietary := math.Max(0, 100-violationPenalty*float64(violations))
	if violations > 0 {
		feedback = append(feedback, fmt.Sprintf("%d item(s) may conflict with dietary restrictions", violations))
	}

	overall := nutritionWeight*nutrition + budgetWeight*budget + dietaryWeight*dietary
	switch {
	case overall > 85:
		feedback = append(feedback, feedbackExcellent)
	case overall > 70:
		feedback = append(feedback, feedbackGood)
	default:
		feedback = append(feedback, feedbackAdjust)
	}

	return model.MealPlanScore{
		Nutrition:     int(math.Round(nutrition)),
		Budget:        int(math.Round(budget)),
		DietarySafety: int(math.Round(dietary)),
		Overall:       int(math.Round(overall)),
		Violations:    violations,
		Feedback:      feedback,
	}
}

// nutritionScore blends calorie and protein accuracy. A non-positive target
// counts as met. Calorie accuracy is not clamped; only the blend is floored at 0.
func nutritionScore(totals model.Totals, goals model.GoalProfile) float64 {
	calorieAccuracy := 1.0
	if goals.TargetCalories > 0 {
		calorieAccuracy = 1 - math.Abs(totals.Calories-goals.TargetCalories)/goals.TargetCalories
	}

	proteinAccuracy := 1.0
	if goals.TargetProtein > 0 {
		proteinAccuracy = math.Min(totals.Protein/goals.TargetProtein, 1)
	}

	return math.Max(0, (0.6*calorieAccuracy+0.4*proteinAccuracy)*100)
}

// budgetUtilization is cost over budget. Without a positive budget any spend is
// infinitely over it.
func budgetUtilization(cost, maxBudget float64) float64 {
	if maxBudget > 0 {
		return cost / maxBudget
	}
	if cost > 0 {
		return math.Inf(1)
	}
	return 0
}

func budgetScore(utilization float64) float64 {
	if utilization <= 1 {
		return 100 - 20*utilization
	}
	return math.Max(0, 100-100*(utilization-1))
}
