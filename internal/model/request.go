package model

// PlanRequest carries a candidate plan as catalog item IDs.
type PlanRequest struct {
	Items    []string    `json:"items"`
	Goals    GoalProfile `json:"goals"`
	Location string      `json:"location,omitempty"`
}

// SuggestRequest asks for substitutes of one plan item.
type SuggestRequest struct {
	ItemID   string             `json:"itemId"`
	Reason   SubstitutionReason `json:"reason"`
	Goals    GoalProfile        `json:"goals"`
	Location string             `json:"location,omitempty"`
}

// GenerateRequest asks for a new plan built from a location's catalog.
type GenerateRequest struct {
	Goals    GoalProfile `json:"goals"`
	Location string      `json:"location,omitempty"`
}

// SavePlanRequest stores a plan for one user and day. Date is YYYY-MM-DD.
type SavePlanRequest struct {
	UserID string   `json:"userId"`
	Date   string   `json:"date"`
	Items  []string `json:"items"`
}

// ProfileRequest updates a profile. When Goals is nil the targets are derived
// from weight and fitness goal.
type ProfileRequest struct {
	Name                string       `json:"name"`
	WeightKg            float64      `json:"weightKg"`
	FitnessGoal         FitnessGoal  `json:"fitnessGoal"`
	Goals               *GoalProfile `json:"goals,omitempty"`
	MaxBudget           float64      `json:"maxBudget"`
	DietaryRestrictions []string     `json:"dietaryRestrictions"`
}

// ImportRequest names export files to import, local paths or S3 keys.
type ImportRequest struct {
	Files  []string `json:"files"`
	DryRun bool     `json:"dryRun"`
}

// CatalogFilter narrows a catalog listing. Zero values are ignored.
type CatalogFilter struct {
	Location     string
	Category     Category
	Restrictions []string
	MaxCalories  float64
	MinProtein   float64
	MaxCarbs     float64
	MaxFat       float64
}
