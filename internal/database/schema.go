package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Schema creates every table the planner uses. It is idempotent.
const Schema = `
	CREATE TABLE IF NOT EXISTS food_items (
		id TEXT PRIMARY KEY,
		vendor_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL,
		location TEXT NOT NULL,
		category TEXT NOT NULL CHECK (category IN ('entree', 'side', 'dessert', 'beverage', 'snack')),
		price NUMERIC(10, 2) NOT NULL DEFAULT 0 CHECK (price >= 0),
		calories INTEGER NOT NULL DEFAULT 0,
		protein DOUBLE PRECISION NOT NULL DEFAULT 0,
		carbs DOUBLE PRECISION NOT NULL DEFAULT 0,
		fat DOUBLE PRECISION NOT NULL DEFAULT 0,
		fiber DOUBLE PRECISION,
		sugar DOUBLE PRECISION,
		sodium DOUBLE PRECISION,
		serving_size TEXT,
		allergens TEXT[] NOT NULL DEFAULT '{}',
		tags TEXT[] NOT NULL DEFAULT '{}',
		station TEXT NOT NULL DEFAULT '',
		serving_days TEXT[] NOT NULL DEFAULT '{}',
		menu_types TEXT[] NOT NULL DEFAULT '{}',
		available BOOLEAN NOT NULL DEFAULT TRUE,
		description TEXT NOT NULL DEFAULT '',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_food_items_location ON food_items(location);
	CREATE INDEX IF NOT EXISTS idx_food_items_category ON food_items(category);

	CREATE TABLE IF NOT EXISTS profiles (
		user_id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		weight_kg DOUBLE PRECISION NOT NULL DEFAULT 0,
		fitness_goal TEXT NOT NULL DEFAULT 'maintain',
		goals JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS meal_plans (
		id UUID PRIMARY KEY,
		user_id TEXT NOT NULL,
		plan_date DATE NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, plan_date)
	);

	CREATE TABLE IF NOT EXISTS meal_plan_items (
		id UUID PRIMARY KEY,
		plan_id UUID NOT NULL REFERENCES meal_plans(id) ON DELETE CASCADE,
		food_item_id TEXT NOT NULL REFERENCES food_items(id),
		position INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_meal_plan_items_plan_id ON meal_plan_items(plan_id);
`

// EnsureSchema applies Schema to the pool's database.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool, logger zerolog.Logger) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	logger.Info().Msg("database schema ensured")
	return nil
}
