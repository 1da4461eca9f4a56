package repository

import (
	"context"
	"errors"
	"fmt"

	"dining-planner/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const upsertFoodItemQuery = `
	INSERT INTO food_items (
		id, vendor_id, name, location, category, price, calories, protein, carbs, fat,
		fiber, sugar, sodium, serving_size, allergens, tags, station, serving_days, menu_types,
		available, description, updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, NOW())
	ON CONFLICT (id) DO UPDATE SET
		vendor_id = EXCLUDED.vendor_id,
		name = EXCLUDED.name,
		location = EXCLUDED.location,
		category = EXCLUDED.category,
		price = EXCLUDED.price,
		calories = EXCLUDED.calories,
		protein = EXCLUDED.protein,
		carbs = EXCLUDED.carbs,
		fat = EXCLUDED.fat,
		fiber = EXCLUDED.fiber,
		sugar = EXCLUDED.sugar,
		sodium = EXCLUDED.sodium,
		serving_size = EXCLUDED.serving_size,
		allergens = EXCLUDED.allergens,
		tags = EXCLUDED.tags,
		station = EXCLUDED.station,
		serving_days = EXCLUDED.serving_days,
		menu_types = EXCLUDED.menu_types,
		available = EXCLUDED.available,
		description = EXCLUDED.description,
		updated_at = NOW()
`

// catalogRepository implements the CatalogRepository interface using PostgreSQL.
type catalogRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCatalogRepository creates a new PostgreSQL-backed catalog repository.
func NewCatalogRepository(pool *pgxpool.Pool, logger zerolog.Logger) CatalogRepository {
	return &catalogRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
}

// GetCatalog retrieves food items ordered by location, station and name.
func (r *catalogRepository) GetCatalog(ctx context.Context, location string) ([]model.FoodItem, error) {
	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items
		WHERE $1 = '' OR location ILIKE '%' || $1 || '%'
		ORDER BY location, station, name, id
	`

	rows, err := r.pool.Query(ctx, query, location)
	if err != nil {
		r.logger.Error().Err(err).Str("location", location).Msg("failed to query catalog")
		return nil, fmt.Errorf("failed to query catalog: %w", err)
	}

	items, err := collectFoodItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Str("location", location).Msg("failed to read catalog rows")
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	return items, nil
}

// GetByID retrieves a single food item by its ID.
func (r *catalogRepository) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items
		WHERE id = $1
	`

	item, err := scanFoodItem(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("food_item_id", id).Msg("food item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("food_item_id", id).Msg("failed to query food item")
		return nil, fmt.Errorf("failed to query food item: %w", err)
	}

	return &item, nil
}

// GetByIDs retrieves multiple food items by their IDs.
func (r *catalogRepository) GetByIDs(ctx context.Context, ids []string) ([]model.FoodItem, error) {
	if len(ids) == 0 {
		return []model.FoodItem{}, nil
	}

	query := `
		SELECT ` + foodItemColumns + `
		FROM food_items
		WHERE id = ANY($1)
	`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to query food items by IDs")
		return nil, fmt.Errorf("failed to query food items by IDs: %w", err)
	}

	items, err := collectFoodItems(rows)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to read food item rows")
		return nil, fmt.Errorf("failed to read food items: %w", err)
	}

	return items, nil
}

// Upsert inserts or replaces a single food item.
func (r *catalogRepository) Upsert(ctx context.Context, item model.FoodItem) error {
	if _, err := r.pool.Exec(ctx, upsertFoodItemQuery, upsertArgs(item)...); err != nil {
		r.logger.Error().Err(err).Str("food_item_id", item.ID).Msg("failed to upsert food item")
		return fmt.Errorf("failed to upsert food item: %w", err)
	}
	return nil
}

// UpsertBatch writes all items in one transaction using a pgx batch.
func (r *catalogRepository) UpsertBatch(ctx context.Context, items []model.FoodItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(upsertFoodItemQuery, upsertArgs(item)...)
	}

	results := tx.SendBatch(ctx, batch)
	for i := range items {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			r.logger.Error().
				Err(err).
				Str("food_item_id", items[i].ID).
				Msg("failed to upsert food item")
			return 0, fmt.Errorf("failed to upsert food item %s: %w", items[i].ID, err)
		}
	}
	if err := results.Close(); err != nil {
		return 0, fmt.Errorf("failed to close batch: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit catalog batch")
		return 0, fmt.Errorf("failed to commit catalog batch: %w", err)
	}

	r.logger.Debug().Int("count", len(items)).Msg("food items upserted successfully")

	return len(items), nil
}

// Delete removes a food item.
func (r *catalogRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM food_items WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("food_item_id", id).Msg("failed to delete food item")
		return false, fmt.Errorf("failed to delete food item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func upsertArgs(item model.FoodItem) []any {
	return []any{
		item.ID,
		item.VendorID,
		item.Name,
		item.Location,
		string(item.Category),
		item.Price,
		item.Calories,
		item.Protein,
		item.Carbs,
		item.Fat,
		item.Fiber,
		item.Sugar,
		item.Sodium,
		item.ServingSize,
		textArray(item.Allergens),
		textArray(item.Tags),
		item.Station,
		textArray(item.ServingDays),
		textArray(item.MenuTypes),
		item.Available,
		item.Description,
	}
}
