package integration

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"dining-planner/internal/config"
	"dining-planner/internal/database"
	"dining-planner/internal/model"
	"dining-planner/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container with the planner schema.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	dbConfig := config.DatabaseConfig{
		MaxConnections:  10,
		MinConnections:  2,
		MaxConnLifetime: 300,
	}

	logger := zerolog.Nop()
	pool, err := database.NewPoolFromURL(ctx, connStr, dbConfig, logger)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// testCatalog is a small two-location catalog.
func testCatalog() []model.FoodItem {
	item := func(id, name, location string, category model.Category, price float64, calories int, protein, carbs, fat float64, allergens ...string) model.FoodItem {
		if allergens == nil {
			allergens = []string{}
		}
		return model.FoodItem{
			ID: id, Name: name, Location: location, Category: category,
			Price: price, Calories: calories, Protein: protein, Carbs: carbs, Fat: fat,
			Allergens: allergens, Tags: []string{}, ServingDays: []string{}, MenuTypes: []string{},
			Available: true,
		}
	}

	return []model.FoodItem{
		item("steak", "Steak Plate", "Grill House", model.CategoryEntree, 14, 850, 60, 40, 45),
		item("chicken", "Chicken Bowl", "Grill House", model.CategoryEntree, 8, 600, 45, 60, 15),
		item("tofu", "Tofu Stir Fry", "Grill House", model.CategoryEntree, 7, 450, 25, 50, 14),
		item("salad", "Side Salad", "Grill House", model.CategorySide, 3, 120, 3, 12, 6),
		item("bar", "Peanut Protein Bar", "Grill House", model.CategorySnack, 2.5, 210, 20, 22, 7, "peanuts"),
		item("latte", "Iced Latte", "Cafe Ventanas", model.CategoryBeverage, 4.25, 180, 8, 18, 7, "milk"),
	}
}

// SeedCatalog stores testCatalog through the catalog repository.
func SeedCatalog(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	repo := repository.NewCatalogRepository(pool, zerolog.Nop())
	if _, err := repo.UpsertBatch(context.Background(), testCatalog()); err != nil {
		t.Fatalf("failed to seed catalog: %v", err)
	}
}

// WriteExport writes a tab-separated vendor export under a temp dir.
func WriteExport(t *testing.T, filename, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), filename)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write export: %v", err)
	}
	return path
}

// CleanupDB cleans all data from test tables.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"meal_plan_items", "meal_plans", "profiles", "food_items"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}
