package repository

import (
	"context"
	"time"

	"dining-planner/internal/model"

	"github.com/jackc/pgx/v5"
)

// CatalogRepository defines the interface for food item data access operations.
type CatalogRepository interface {
	// GetCatalog retrieves all food items, optionally restricted to locations
	// whose name contains location (case-insensitive). An empty location means all.
	GetCatalog(ctx context.Context, location string) ([]model.FoodItem, error)

	// GetByID retrieves a single food item by its ID. Returns nil, nil when absent.
	GetByID(ctx context.Context, id string) (*model.FoodItem, error)

	// GetByIDs retrieves multiple food items by their IDs, in no particular order.
	GetByIDs(ctx context.Context, ids []string) ([]model.FoodItem, error)

	// Upsert inserts or replaces a single food item.
	Upsert(ctx context.Context, item model.FoodItem) error

	// UpsertBatch inserts or replaces food items in one transaction and returns
	// the number written.
	UpsertBatch(ctx context.Context, items []model.FoodItem) (int, error)

	// Delete removes a food item. Returns false when it did not exist.
	Delete(ctx context.Context, id string) (bool, error)
}

// ProfileRepository defines the interface for user profile data access operations.
type ProfileRepository interface {
	// Get retrieves a profile by user ID. Returns nil, nil when absent.
	Get(ctx context.Context, userID string) (*model.Profile, error)

	// Put inserts or replaces a profile.
	Put(ctx context.Context, profile *model.Profile) error
}

// PlanRepository defines the interface for saved meal plan data access operations.
type PlanRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// CreatePlan inserts a plan within the provided transaction, replacing any
	// plan the user already saved for the same date.
	CreatePlan(ctx context.Context, tx pgx.Tx, plan *model.MealPlan) error

	// CreatePlanItems inserts plan items within the provided transaction.
	CreatePlanItems(ctx context.Context, tx pgx.Tx, items []model.MealPlanItem) error

	// GetPlan retrieves a user's plan for a date with its items in position
	// order. Returns nil, nil when absent.
	GetPlan(ctx context.Context, userID string, date time.Time) (*model.MealPlan, error)
}
