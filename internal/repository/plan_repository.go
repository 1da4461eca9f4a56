package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dining-planner/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// planRepository implements the PlanRepository interface using PostgreSQL.
type planRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPlanRepository creates a new PostgreSQL-backed meal plan repository.
func NewPlanRepository(pool *pgxpool.Pool, logger zerolog.Logger) PlanRepository {
	return &planRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "plan").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *planRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// CreatePlan removes the user's existing plan for the date, whose items
// cascade, and inserts the new one.
func (r *planRepository) CreatePlan(ctx context.Context, tx pgx.Tx, plan *model.MealPlan) error {
	_, err := tx.Exec(ctx,
		`DELETE FROM meal_plans WHERE user_id = $1 AND plan_date = $2`,
		plan.UserID, plan.PlanDate,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("user_id", plan.UserID).
			Msg("failed to replace existing plan")
		return fmt.Errorf("failed to replace existing plan: %w", err)
	}

	query := `
		INSERT INTO meal_plans (id, user_id, plan_date, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err = tx.Exec(ctx, query, plan.ID, plan.UserID, plan.PlanDate, plan.CreatedAt)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("plan_id", plan.ID.String()).
			Msg("failed to create plan")
		return fmt.Errorf("failed to create plan: %w", err)
	}

	r.logger.Debug().
		Str("plan_id", plan.ID.String()).
		Str("user_id", plan.UserID).
		Msg("plan created successfully")

	return nil
}

// CreatePlanItems inserts plan items within the provided transaction.
func (r *planRepository) CreatePlanItems(ctx context.Context, tx pgx.Tx, items []model.MealPlanItem) error {
	if len(items) == 0 {
		return nil
	}

	query := `
		INSERT INTO meal_plan_items (id, plan_id, food_item_id, position)
		VALUES ($1, $2, $3, $4)
	`

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(query, item.ID, item.PlanID, item.FoodItemID, item.Position)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for i := range items {
		if _, err := results.Exec(); err != nil {
			r.logger.Error().
				Err(err).
				Str("plan_id", items[i].PlanID.String()).
				Str("food_item_id", items[i].FoodItemID).
				Msg("failed to create plan item")
			return fmt.Errorf("failed to create plan item: %w", err)
		}
	}

	r.logger.Debug().
		Int("count", len(items)).
		Msg("plan items created successfully")

	return nil
}

// GetPlan retrieves a user's plan for a date with its catalog items.
func (r *planRepository) GetPlan(ctx context.Context, userID string, date time.Time) (*model.MealPlan, error) {
	planQuery := `
		SELECT id, user_id, plan_date, created_at
		FROM meal_plans
		WHERE user_id = $1 AND plan_date = $2
	`

	var plan model.MealPlan
	err := r.pool.QueryRow(ctx, planQuery, userID, date).Scan(
		&plan.ID,
		&plan.UserID,
		&plan.PlanDate,
		&plan.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("user_id", userID).Time("plan_date", date).Msg("plan not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query plan")
		return nil, fmt.Errorf("failed to query plan: %w", err)
	}

	itemsQuery := `
		SELECT ` + qualifiedFoodItemColumns("f") + `
		FROM meal_plan_items i
		JOIN food_items f ON f.id = i.food_item_id
		WHERE i.plan_id = $1
		ORDER BY i.position
	`

	rows, err := r.pool.Query(ctx, itemsQuery, plan.ID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("plan_id", plan.ID.String()).
			Msg("failed to query plan items")
		return nil, fmt.Errorf("failed to query plan items: %w", err)
	}

	plan.Items, err = collectFoodItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan plan item rows")
		return nil, fmt.Errorf("failed to read plan items: %w", err)
	}

	return &plan, nil
}
