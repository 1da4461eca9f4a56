package model

import (
	"time"

	"github.com/google/uuid"
)

// GoalProfile is the target set a meal plan is scored against. Dietary
// restrictions are free-text keywords such as "vegetarian" or "peanuts".
type GoalProfile struct {
	TargetCalories      float64  `json:"targetCalories"`
	TargetProtein       float64  `json:"targetProtein"`
	TargetCarbs         float64  `json:"targetCarbs"`
	TargetFat           float64  `json:"targetFat"`
	MaxBudget           float64  `json:"maxBudget"`
	DietaryRestrictions []string `json:"dietaryRestrictions"`
}

// FitnessGoal selects the multipliers used to derive daily targets.
type FitnessGoal string

const (
	GoalLoseWeight  FitnessGoal = "lose_weight"
	GoalMaintain    FitnessGoal = "maintain"
	GoalGainWeight  FitnessGoal = "gain_weight"
	GoalBuildMuscle FitnessGoal = "build_muscle"
)

// Valid reports whether g is a known goal.
func (g FitnessGoal) Valid() bool {
	switch g {
	case GoalLoseWeight, GoalMaintain, GoalGainWeight, GoalBuildMuscle:
		return true
	}
	return false
}

// Profile is a stored user profile.
type Profile struct {
	UserID      string      `json:"userId" db:"user_id"`
	Name        string      `json:"name" db:"name"`
	WeightKg    float64     `json:"weightKg" db:"weight_kg"`
	FitnessGoal FitnessGoal `json:"fitnessGoal" db:"fitness_goal"`
	Goals       GoalProfile `json:"goals" db:"goals"`
	UpdatedAt   time.Time   `json:"updatedAt" db:"updated_at"`
}

// Totals is the sum of the nutrition and cost of a set of items.
type Totals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Cost     float64 `json:"cost"`
}

// MealPlanScore is the weighted evaluation of a candidate plan.
type MealPlanScore struct {
	Nutrition     int      `json:"nutrition"`
	Budget        int      `json:"budget"`
	DietarySafety int      `json:"dietarySafety"`
	Overall       int      `json:"overall"`
	Violations    int      `json:"violations"`
	Feedback      []string `json:"feedback"`
}

// SubstitutionReason names the dimension a substitution should improve.
type SubstitutionReason string

const (
	ReasonBudget    SubstitutionReason = "budget"
	ReasonNutrition SubstitutionReason = "nutrition"
	ReasonDietary   SubstitutionReason = "dietary"
)

// Valid reports whether r is a known reason.
func (r SubstitutionReason) Valid() bool {
	switch r {
	case ReasonBudget, ReasonNutrition, ReasonDietary:
		return true
	}
	return false
}

// MealPlan is a saved plan for one user and day.
type MealPlan struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    string     `json:"userId" db:"user_id"`
	PlanDate  time.Time  `json:"planDate" db:"plan_date"`
	Items     []FoodItem `json:"items"`
	Totals    Totals     `json:"totals"`
	CreatedAt time.Time  `json:"createdAt" db:"created_at"`
}

// MealPlanItem links a plan to a catalog item at a position.
type MealPlanItem struct {
	ID         uuid.UUID `json:"-" db:"id"`
	PlanID     uuid.UUID `json:"-" db:"plan_id"`
	FoodItemID string    `json:"foodItemId" db:"food_item_id"`
	Position   int       `json:"position" db:"position"`
}
