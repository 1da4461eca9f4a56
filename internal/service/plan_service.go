package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"dining-planner/internal/metrics"
	"dining-planner/internal/model"
	"dining-planner/internal/planner"
	"dining-planner/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const planDateLayout = "2006-01-02"

// planService implements PlanService.
type planService struct {
	planRepo    repository.PlanRepository
	catalogRepo repository.CatalogRepository
	profileRepo repository.ProfileRepository
	logger      zerolog.Logger
}

// NewPlanService creates a new meal plan service.
func NewPlanService(
	planRepo repository.PlanRepository,
	catalogRepo repository.CatalogRepository,
	profileRepo repository.ProfileRepository,
	logger zerolog.Logger,
) PlanService {
	return &planService{
		planRepo:    planRepo,
		catalogRepo: catalogRepo,
		profileRepo: profileRepo,
		logger:      logger.With().Str("service", "plan").Logger(),
	}
}

// Score evaluates a candidate plan. An empty plan is scored, not rejected.
func (s *planService) Score(ctx context.Context, req *model.PlanRequest) (*PlanResult, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	return s.result("score", items, req.Goals, nil), nil
}

// Suggest returns substitutes drawn from the requested location, or from the
// current item's location when none is given.
func (s *planService) Suggest(ctx context.Context, req *model.SuggestRequest) ([]model.FoodItem, error) {
	if req == nil || req.ItemID == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "itemId is required")
	}
	if !req.Reason.Valid() {
		s.logger.Warn().Str("reason", string(req.Reason)).Msg("unknown substitution reason")
		return nil, model.ErrInvalidReason
	}
	if err := validateGoals(req.Goals); err != nil {
		return nil, err
	}

	current, err := s.catalogRepo.GetByID(ctx, req.ItemID)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", req.ItemID).Msg("failed to get food item")
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}
	if current == nil {
		return nil, model.ErrFoodItemNotFound
	}

	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = current.Location
	}

	catalog, err := s.catalog(ctx, location)
	if err != nil {
		return nil, err
	}

	suggestions := planner.Suggest(*current, catalog, req.Goals, req.Reason)
	metrics.PlanOperations.WithLabelValues("suggest").Inc()

	s.logger.Debug().
		Str("food_item_id", current.ID).
		Str("reason", string(req.Reason)).
		Int("count", len(suggestions)).
		Msg("substitutes found")

	return suggestions, nil
}

// Optimize runs one optimizer pass over the plan and scores the result.
func (s *planService) Optimize(ctx context.Context, req *model.PlanRequest) (*PlanResult, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	catalog, err := s.catalog(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	optimized, improvements := planner.Optimize(items, catalog, req.Goals)

	s.logger.Info().
		Int("item_count", len(items)).
		Int("improvements", len(improvements)).
		Msg("plan optimized")

	return s.result("optimize", optimized, req.Goals, improvements), nil
}

// Generate builds a plan from the catalog, optimizes it once and rescores.
func (s *planService) Generate(ctx context.Context, req *model.GenerateRequest) (*PlanResult, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "request body is required")
	}
	if err := validateGoals(req.Goals); err != nil {
		return nil, err
	}

	catalog, err := s.catalog(ctx, req.Location)
	if err != nil {
		return nil, err
	}

	generated, _ := planner.Generate(catalog, req.Goals)
	optimized, improvements := planner.Optimize(generated, catalog, req.Goals)

	s.logger.Info().
		Str("location", req.Location).
		Int("catalog_size", len(catalog)).
		Int("item_count", len(optimized)).
		Msg("plan generated")

	return s.result("generate", optimized, req.Goals, improvements), nil
}

// Save stores a plan for a user and day.
func (s *planService) Save(ctx context.Context, req *model.SavePlanRequest) (*SavedPlan, error) {
	if req == nil || strings.TrimSpace(req.UserID) == "" {
		return nil, model.NewDomainError(model.ErrCodeInvalidRequest, "userId is required")
	}
	if len(req.Items) == 0 {
		return nil, model.ErrEmptyPlan
	}

	date, err := parsePlanDate(req.Date)
	if err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	tx, err := s.planRepo.BeginTx(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(ctx); rbErr != nil {
				s.logger.Error().Err(rbErr).Msg("failed to rollback transaction")
			}
		}
	}()

	plan := &model.MealPlan{
		ID:        uuid.New(),
		UserID:    req.UserID,
		PlanDate:  date,
		CreatedAt: time.Now().UTC(),
	}

	if err = s.planRepo.CreatePlan(ctx, tx, plan); err != nil {
		s.logger.Error().Err(err).Str("plan_id", plan.ID.String()).Msg("failed to create plan")
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	planItems := make([]model.MealPlanItem, len(items))
	for i, item := range items {
		planItems[i] = model.MealPlanItem{
			ID:         uuid.New(),
			PlanID:     plan.ID,
			FoodItemID: item.ID,
			Position:   i,
		}
	}

	if err = s.planRepo.CreatePlanItems(ctx, tx, planItems); err != nil {
		s.logger.Error().
			Err(err).
			Str("plan_id", plan.ID.String()).
			Int("item_count", len(planItems)).
			Msg("failed to create plan items")
		return nil, fmt.Errorf("failed to save plan items: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		s.logger.Error().Err(err).Str("plan_id", plan.ID.String()).Msg("failed to commit transaction")
		return nil, fmt.Errorf("failed to save plan: %w", err)
	}

	metrics.PlanOperations.WithLabelValues("save").Inc()

	s.logger.Info().
		Str("plan_id", plan.ID.String()).
		Str("user_id", plan.UserID).
		Int("item_count", len(planItems)).
		Msg("plan saved")

	plan.Items = items
	return s.saved(ctx, plan), nil
}

// Get retrieves a saved plan.
func (s *planService) Get(ctx context.Context, userID, date string) (*SavedPlan, error) {
	day, err := parsePlanDate(date)
	if err != nil {
		return nil, err
	}

	plan, err := s.planRepo.GetPlan(ctx, userID, day)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Str("date", date).Msg("failed to get plan")
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	if plan == nil {
		s.logger.Debug().Str("user_id", userID).Str("date", date).Msg("plan not found")
		return nil, model.ErrPlanNotFound
	}

	return s.saved(ctx, plan), nil
}

// saved fills totals and, when the user's profile has a weight, the daily
// balance.
func (s *planService) saved(ctx context.Context, plan *model.MealPlan) *SavedPlan {
	plan.Totals = planner.Aggregate(plan.Items)
	out := &SavedPlan{
		MealPlan: plan,
		Macros:   planner.MacroSplit(plan.Totals.Protein, plan.Totals.Carbs, plan.Totals.Fat),
	}

	profile, err := s.profileRepo.Get(ctx, plan.UserID)
	if err != nil {
		s.logger.Warn().Err(err).Str("user_id", plan.UserID).Msg("skipping balance check")
		return out
	}
	if profile == nil || profile.WeightKg <= 0 {
		return out
	}

	targets := planner.DailyTargets(profile.WeightKg, profile.FitnessGoal)
	balance := planner.CheckBalance(plan.Totals, targets)
	out.Targets = &targets
	out.Balance = &balance
	return out
}

func (s *planService) result(op string, items []model.FoodItem, goals model.GoalProfile, improvements []string) *PlanResult {
	totals := planner.Aggregate(items)
	score := planner.Score(items, goals)

	metrics.PlanOperations.WithLabelValues(op).Inc()
	metrics.PlanOverallScore.Observe(float64(score.Overall))

	return &PlanResult{
		Items:        items,
		Totals:       totals,
		Score:        score,
		Macros:       planner.MacroSplit(totals.Protein, totals.Carbs, totals.Fat),
		Improvements: improvements,
	}
}

// resolveItems loads catalog items in request order. Repeated IDs repeat the
// item.
func (s *planService) resolveItems(ctx context.Context, ids []string) ([]model.FoodItem, error) {
	if len(ids) == 0 {
		return []model.FoodItem{}, nil
	}

	found, err := s.catalogRepo.GetByIDs(ctx, ids)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to get food items")
		return nil, fmt.Errorf("failed to get food items: %w", err)
	}

	byID := make(map[string]model.FoodItem, len(found))
	for _, item := range found {
		byID[item.ID] = item
	}

	items := make([]model.FoodItem, len(ids))
	for i, id := range ids {
		item, ok := byID[id]
		if !ok {
			s.logger.Warn().Str("food_item_id", id).Msg("food item not found")
			return nil, model.ErrFoodItemNotFound
		}
		items[i] = item
	}
	return items, nil
}

// catalog returns the available items of a location.
func (s *planService) catalog(ctx context.Context, location string) ([]model.FoodItem, error) {
	location = strings.TrimSpace(location)

	items, err := s.catalogRepo.GetCatalog(ctx, location)
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("failed to get catalog")
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	available := make([]model.FoodItem, 0, len(items))
	for _, item := range items {
		if item.Available {
			available = append(available, item)
		}
	}
	return available, nil
}

func validatePlanRequest(req *model.PlanRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeInvalidRequest, "request body is required")
	}
	for i, id := range req.Items {
		if id == "" {
			return model.NewDomainError(model.ErrCodeInvalidRequest, fmt.Sprintf("item %d: id is required", i))
		}
	}
	return validateGoals(req.Goals)
}

func validateGoals(g model.GoalProfile) error {
	if g.TargetCalories < 0 || g.TargetProtein < 0 || g.TargetCarbs < 0 || g.TargetFat < 0 || g.MaxBudget < 0 {
		return model.ErrInvalidGoals
	}
	return nil
}

func parsePlanDate(date string) (time.Time, error) {
	day, err := time.Parse(planDateLayout, date)
	if err != nil {
		return time.Time{}, model.ErrInvalidPlanDate
	}
	return day, nil
}
