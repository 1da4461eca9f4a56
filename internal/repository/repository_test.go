package repository

import (
	"context"
	"testing"
	"time"

	"dining-planner/internal/database"
	"dining-planner/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB creates a PostgreSQL testcontainer with the planner schema.
func setupTestDB(t *testing.T) *pgxpool.Pool {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	require.NoError(t, database.EnsureSchema(ctx, pool, zerolog.Nop()))

	t.Cleanup(func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	})

	return pool
}

func ptr[T any](v T) *T { return &v }

func testFoodItems() []model.FoodItem {
	return []model.FoodItem{
		{
			ID: "4412_grilled-chicken_grill", VendorID: "4412", Name: "Grilled Chicken",
			Location: "Fresh Food Company", Category: model.CategoryEntree, Price: 8.5,
			Calories: 320, Protein: 42, Carbs: 4, Fat: 12, Sodium: ptr(480.0),
			ServingSize: ptr("1 breast"), Allergens: []string{}, Tags: []string{"high-protein"},
			Station: "Grill", ServingDays: []string{"Monday"}, MenuTypes: []string{"Lunch"},
			Available: true,
		},
		{
			ID: "4413_side-salad", VendorID: "4413", Name: "Side Salad",
			Location: "Fresh Food Company", Category: model.CategorySide, Price: 3,
			Calories: 90, Protein: 2, Carbs: 10, Fat: 4, Tags: []string{"vegan"}, Available: true,
		},
		{
			ID: "item_1", Name: "Iced Latte", Location: "Cafe Ventanas",
			Category: model.CategoryBeverage, Price: 4.25, Calories: 180, Protein: 8,
			Allergens: []string{"milk"}, Available: true, Description: "Espresso over ice",
		},
	}
}

func TestCatalogRepository_UpsertAndGet(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCatalogRepository(pool, zerolog.Nop())
	ctx := context.Background()

	n, err := repo.UpsertBatch(ctx, testFoodItems())
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	t.Run("GetByID round trip", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "4412_grilled-chicken_grill")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, testFoodItems()[0], *got)
	})

	t.Run("GetByID missing", func(t *testing.T) {
		got, err := repo.GetByID(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("GetByIDs", func(t *testing.T) {
		got, err := repo.GetByIDs(ctx, []string{"item_1", "4413_side-salad", "nope"})
		require.NoError(t, err)
		assert.Len(t, got, 2)

		empty, err := repo.GetByIDs(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("GetCatalog location filter", func(t *testing.T) {
		tests := []struct {
			location string
			expected int
		}{
			{"", 3},
			{"fresh food", 2},
			{"VENTANAS", 1},
			{"Dining Hall", 0},
		}
		for _, tt := range tests {
			got, err := repo.GetCatalog(ctx, tt.location)
			require.NoError(t, err)
			assert.Len(t, got, tt.expected, tt.location)
		}
	})

	t.Run("Upsert replaces", func(t *testing.T) {
		item := testFoodItems()[2]
		item.Price = 4.75
		item.Available = false
		require.NoError(t, repo.Upsert(ctx, item))

		got, err := repo.GetByID(ctx, item.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.75, got.Price)
		assert.False(t, got.Available)
	})

	t.Run("Delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "4413_side-salad")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "4413_side-salad")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestCatalogRepository_UpsertBatchRollsBack(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewCatalogRepository(pool, zerolog.Nop())
	ctx := context.Background()

	items := testFoodItems()
	items[1].Category = "brunch"

	n, err := repo.UpsertBatch(ctx, items)

	assert.Error(t, err)
	assert.Zero(t, n)
	got, err := repo.GetCatalog(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestProfileRepository(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewProfileRepository(pool, zerolog.Nop())
	ctx := context.Background()

	missing, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Nil(t, missing)

	profile := &model.Profile{
		UserID:      "u1",
		Name:        "Sam",
		WeightKg:    70,
		FitnessGoal: model.GoalBuildMuscle,
		Goals: model.GoalProfile{
			TargetCalories: 2100, TargetProtein: 154, MaxBudget: 25,
			DietaryRestrictions: []string{"peanuts"},
		},
	}
	require.NoError(t, repo.Put(ctx, profile))
	assert.False(t, profile.UpdatedAt.IsZero())

	got, err := repo.Get(ctx, "u1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, profile.Goals, got.Goals)
	assert.Equal(t, model.GoalBuildMuscle, got.FitnessGoal)

	profile.Goals.MaxBudget = 30
	profile.Goals.DietaryRestrictions = nil
	require.NoError(t, repo.Put(ctx, profile))

	got, err = repo.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 30.0, got.Goals.MaxBudget)
	assert.Equal(t, []string{}, got.Goals.DietaryRestrictions)
}

func savePlan(t *testing.T, repo PlanRepository, userID string, date time.Time, foodIDs ...string) uuid.UUID {
	t.Helper()
	ctx := context.Background()

	tx, err := repo.BeginTx(ctx)
	require.NoError(t, err)
	defer func() { _ = tx.Rollback(ctx) }()

	plan := &model.MealPlan{ID: uuid.New(), UserID: userID, PlanDate: date, CreatedAt: time.Now().UTC()}
	require.NoError(t, repo.CreatePlan(ctx, tx, plan))

	items := make([]model.MealPlanItem, len(foodIDs))
	for i, id := range foodIDs {
		items[i] = model.MealPlanItem{ID: uuid.New(), PlanID: plan.ID, FoodItemID: id, Position: i}
	}
	require.NoError(t, repo.CreatePlanItems(ctx, tx, items))
	require.NoError(t, tx.Commit(ctx))

	return plan.ID
}

func TestPlanRepository(t *testing.T) {
	pool := setupTestDB(t)
	catalog := NewCatalogRepository(pool, zerolog.Nop())
	repo := NewPlanRepository(pool, zerolog.Nop())
	ctx := context.Background()

	_, err := catalog.UpsertBatch(ctx, testFoodItems())
	require.NoError(t, err)

	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	t.Run("missing", func(t *testing.T) {
		got, err := repo.GetPlan(ctx, "u1", date)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("items keep position order", func(t *testing.T) {
		id := savePlan(t, repo, "u1", date, "item_1", "4412_grilled-chicken_grill")

		got, err := repo.GetPlan(ctx, "u1", date)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, id, got.ID)
		require.Len(t, got.Items, 2)
		assert.Equal(t, "item_1", got.Items[0].ID)
		assert.Equal(t, "4412_grilled-chicken_grill", got.Items[1].ID)
	})

	t.Run("saving again replaces the day", func(t *testing.T) {
		id := savePlan(t, repo, "u1", date, "4413_side-salad")

		got, err := repo.GetPlan(ctx, "u1", date)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID)
		require.Len(t, got.Items, 1)
		assert.Equal(t, "4413_side-salad", got.Items[0].ID)
	})

	t.Run("rollback leaves nothing", func(t *testing.T) {
		other := date.AddDate(0, 0, 1)
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		plan := &model.MealPlan{ID: uuid.New(), UserID: "u1", PlanDate: other, CreatedAt: time.Now()}
		require.NoError(t, repo.CreatePlan(ctx, tx, plan))
		require.NoError(t, tx.Rollback(ctx))

		got, err := repo.GetPlan(ctx, "u1", other)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("unknown food item fails", func(t *testing.T) {
		tx, err := repo.BeginTx(ctx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(ctx) }()

		plan := &model.MealPlan{ID: uuid.New(), UserID: "u2", PlanDate: date, CreatedAt: time.Now()}
		require.NoError(t, repo.CreatePlan(ctx, tx, plan))
		err = repo.CreatePlanItems(ctx, tx, []model.MealPlanItem{
			{ID: uuid.New(), PlanID: plan.ID, FoodItemID: "ghost", Position: 0},
		})
		assert.Error(t, err)
	})
}
