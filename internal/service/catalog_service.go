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

// catalogService implements CatalogService.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      zerolog.Logger
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(catalogRepo repository.CatalogRepository, logger zerolog.Logger) CatalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
		logger:      logger.With().Str("service", "catalog").Logger(),
	}
}

// List returns the location's items narrowed by category, dietary
// restrictions and nutrition bounds, in catalog order.
func (s *catalogService) List(ctx context.Context, filter model.CatalogFilter) ([]model.FoodItem, error) {
	location := strings.TrimSpace(filter.Location)

	items, err := s.catalogRepo.GetCatalog(ctx, location)
	if err != nil {
		s.logger.Error().Err(err).Str("location", location).Msg("failed to get catalog")
		return nil, fmt.Errorf("failed to get catalog: %w", err)
	}

	if filter.Category != "" {
		kept := make([]model.FoodItem, 0, len(items))
		for _, item := range items {
			if item.Category == filter.Category {
				kept = append(kept, item)
			}
		}
		items = kept
	}

	items = planner.FilterByRestrictions(items, filter.Restrictions)
	items = planner.SearchByNutrition(items, planner.NutritionCriteria{
		MaxCalories: filter.MaxCalories,
		MinProtein:  filter.MinProtein,
		MaxCarbs:    filter.MaxCarbs,
		MaxFat:      filter.MaxFat,
	})

	s.logger.Debug().
		Str("location", location).
		Int("count", len(items)).
		Msg("retrieved catalog")

	return items, nil
}

// GetByID retrieves a single food item by ID.
func (s *catalogService) GetByID(ctx context.Context, id string) (*model.FoodItem, error) {
	if id == "" {
		s.logger.Warn().Msg("food item ID is empty")
		return nil, model.ErrFoodItemNotFound
	}

	item, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("food_item_id", id).Msg("failed to get food item by ID")
		return nil, fmt.Errorf("failed to get food item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("food_item_id", id).Msg("food item not found")
		return nil, model.ErrFoodItemNotFound
	}

	return item, nil
}
