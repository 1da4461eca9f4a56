package main

import (
	"context"
	"fmt"
	"os"

	"dining-planner/internal/config"
	"dining-planner/internal/database"

	"github.com/rs/zerolog"
)

// Connects with the configured DB_* settings, applies the schema and prints
// the row count of every planner table.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to load configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.Database, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	var dbName string
	if err := pool.QueryRow(ctx, "SELECT current_database()").Scan(&dbName); err != nil {
		fmt.Fprintf(os.Stderr, "QueryRow failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully connected to database: %s\n", dbName)

	if err := database.EnsureSchema(ctx, pool, zerolog.Nop()); err != nil {
		fmt.Fprintf(os.Stderr, "Schema failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nTables:")
	for _, table := range []string{"food_items", "profiles", "meal_plans", "meal_plan_items"} {
		var count int64
		if err := pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			fmt.Fprintf(os.Stderr, "Count failed for %s: %v\n", table, err)
			os.Exit(1)
		}
		fmt.Printf("  - %-16s %d rows\n", table, count)
	}
}
