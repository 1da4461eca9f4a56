package service

import (
	"context"

	"dining-planner/internal/model"
	"dining-planner/internal/planner"
)

// CatalogService defines read operations on the food catalog.
type CatalogService interface {
	// List returns catalog items matching the filter.
	List(ctx context.Context, filter model.CatalogFilter) ([]model.FoodItem, error)

	// GetByID retrieves a single food item by ID.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)
}

// ProfileService defines operations for user profiles.
type ProfileService interface {
	// Get retrieves a profile by user ID.
	Get(ctx context.Context, userID string) (*model.Profile, error)

	// Put creates or replaces a profile.
	Put(ctx context.Context, userID string, req *model.ProfileRequest) (*model.Profile, error)
}

// PlanService defines operations for meal plans.
type PlanService interface {
	// Score evaluates a candidate plan.
	Score(ctx context.Context, req *model.PlanRequest) (*PlanResult, error)

	// Suggest returns substitutes for one item.
	Suggest(ctx context.Context, req *model.SuggestRequest) ([]model.FoodItem, error)

	// Optimize runs the optimizer over a candidate plan and rescores it.
	Optimize(ctx context.Context, req *model.PlanRequest) (*PlanResult, error)

	// Generate builds, optimizes and scores a new plan.
	Generate(ctx context.Context, req *model.GenerateRequest) (*PlanResult, error)

	// Save stores a plan for a user and day, replacing any earlier one.
	Save(ctx context.Context, req *model.SavePlanRequest) (*SavedPlan, error)

	// Get retrieves a saved plan. Date is YYYY-MM-DD.
	Get(ctx context.Context, userID, date string) (*SavedPlan, error)
}

// ImportService defines vendor export import operations.
type ImportService interface {
	// Import loads, cleans, normalizes and stores each export file. A failing
	// file is reported and does not stop the others.
	Import(ctx context.Context, req *model.ImportRequest) ([]model.ImportReport, error)
}

// PlanResult is a scored plan.
type PlanResult struct {
	Items        []model.FoodItem         `json:"items"`
	Totals       model.Totals             `json:"totals"`
	Score        model.MealPlanScore      `json:"score"`
	Macros       planner.MacroPercentages `json:"macros"`
	Improvements []string                 `json:"improvements,omitempty"`
}

// SavedPlan is a stored plan with its totals. Balance is set when the user
// has a profile with a body weight.
type SavedPlan struct {
	*model.MealPlan
	Macros  planner.MacroPercentages `json:"macros"`
	Targets *planner.Targets         `json:"targets,omitempty"`
	Balance *planner.Balance         `json:"balance,omitempty"`
}
