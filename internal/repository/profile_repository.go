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

// profileRepository implements the ProfileRepository interface using PostgreSQL.
type profileRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewProfileRepository creates a new PostgreSQL-backed profile repository.
func NewProfileRepository(pool *pgxpool.Pool, logger zerolog.Logger) ProfileRepository {
	return &profileRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "profile").Logger(),
	}
}

// Get retrieves a profile by user ID. Goals are stored as JSONB.
func (r *profileRepository) Get(ctx context.Context, userID string) (*model.Profile, error) {
	query := `
		SELECT user_id, name, weight_kg, fitness_goal, goals, updated_at
		FROM profiles
		WHERE user_id = $1
	`

	var profile model.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&profile.UserID,
		&profile.Name,
		&profile.WeightKg,
		&profile.FitnessGoal,
		&profile.Goals,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("user_id", userID).Msg("profile not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("user_id", userID).Msg("failed to query profile")
		return nil, fmt.Errorf("failed to query profile: %w", err)
	}

	return &profile, nil
}

// Put inserts or replaces a profile and refreshes its UpdatedAt.
func (r *profileRepository) Put(ctx context.Context, profile *model.Profile) error {
	query := `
		INSERT INTO profiles (user_id, name, weight_kg, fitness_goal, goals, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			name = EXCLUDED.name,
			weight_kg = EXCLUDED.weight_kg,
			fitness_goal = EXCLUDED.fitness_goal,
			goals = EXCLUDED.goals,
			updated_at = NOW()
		RETURNING updated_at
	`

	goals := profile.Goals
	goals.DietaryRestrictions = textArray(goals.DietaryRestrictions)

	err := r.pool.QueryRow(ctx, query,
		profile.UserID,
		profile.Name,
		profile.WeightKg,
		string(profile.FitnessGoal),
		goals,
	).Scan(&profile.UpdatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("user_id", profile.UserID).Msg("failed to save profile")
		return fmt.Errorf("failed to save profile: %w", err)
	}

	r.logger.Debug().Str("user_id", profile.UserID).Msg("profile saved successfully")

	return nil
}
