package service

import (
	"context"
	"fmt"
	"strings"

	"dining-planner/internal/model"
	"dining-planner/internal/planner"
	"dining-planner/internal/repository"

	"github.com/rs/zerolog"
)

// profileService implements ProfileService.
type profileService struct {
	profileRepo repository.ProfileRepository
	logger      zerolog.Logger
}

// NewProfileService creates a new profile service.
func NewProfileService(profileRepo repository.ProfileRepository, logger zerolog.Logger) ProfileService {
	return &profileService{
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "profile").Logger(),
	}
}

// Get retrieves a profile by user ID.
func (s *profileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profileRepo.Get(ctx, userID)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to get profile")
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	if profile == nil {
		s.logger.Debug().Str("user_id", userID).Msg("profile not found")
		return nil, model.ErrProfileNotFound
	}

	return profile, nil
}

// Put creates or replaces a profile. Without explicit goals the targets are
// derived from body weight and fitness goal.
func (s *profileService) Put(ctx context.Context, userID string, req *model.ProfileRequest) (*model.Profile, error) {
	if err := s.validateProfileRequest(userID, req); err != nil {
		return nil, err
	}

	goal := req.FitnessGoal
	if goal == "" {
		goal = model.GoalMaintain
	}

	profile := &model.Profile{
		UserID:      userID,
		Name:        strings.TrimSpace(req.Name),
		WeightKg:    req.WeightKg,
		FitnessGoal: goal,
	}

	if req.Goals != nil {
		profile.Goals = *req.Goals
	} else {
		targets := planner.DailyTargets(req.WeightKg, goal)
		profile.Goals = planner.GoalsFor(targets, req.MaxBudget, req.DietaryRestrictions)
	}

	if err := s.profileRepo.Put(ctx, profile); err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to save profile")
		return nil, fmt.Errorf("failed to save profile: %w", err)
	}

	s.logger.Info().
		Str("user_id", userID).
		Str("fitness_goal", string(goal)).
		Float64("target_calories", profile.Goals.TargetCalories).
		Msg("profile saved")

	return profile, nil
}

func (s *profileService) validateProfileRequest(userID string, req *model.ProfileRequest) error {
	if req == nil || strings.TrimSpace(userID) == "" {
		return model.NewDomainError(model.ErrCodeInvalidRequest, "userId is required")
	}

	if req.FitnessGoal != "" && !req.FitnessGoal.Valid() {
		s.logger.Warn().Str("fitness_goal", string(req.FitnessGoal)).Msg("unknown fitness goal")
		return model.NewDomainError(model.ErrCodeInvalidGoals,
			"fitnessGoal must be one of lose_weight, maintain, gain_weight or build_muscle")
	}

	if req.WeightKg < 0 || req.MaxBudget < 0 {
		return model.ErrInvalidGoals
	}

	if req.Goals != nil {
		return validateGoals(*req.Goals)
	}

	if req.WeightKg == 0 {
		return model.NewDomainError(model.ErrCodeInvalidRequest, "weightKg is required when goals are omitted")
	}

	return nil
}
