package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dining-planner/internal/model"
	"dining-planner/internal/service"

	"github.com/rs/zerolog"
)

// CatalogHandler handles catalog-related HTTP requests.
type CatalogHandler struct {
	service service.CatalogService
	logger  zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(service service.CatalogService, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/catalog requests.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseCatalogFilter(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, err.Error(), h.logger)
		return
	}

	items, err := h.service.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve catalog", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetByID handles GET /api/catalog/{id} requests.
func (h *CatalogHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "food item ID is required", h.logger)
		return
	}

	item, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve food item", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func parseCatalogFilter(r *http.Request) (model.CatalogFilter, error) {
	q := r.URL.Query()

	filter := model.CatalogFilter{
		Location: q.Get("location"),
	}

	if c := q.Get("category"); c != "" {
		filter.Category = model.Category(strings.ToLower(c))
		if !filter.Category.Valid() {
			return filter, fmt.Errorf("unknown category %q", c)
		}
	}

	if raw := q.Get("restrictions"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				filter.Restrictions = append(filter.Restrictions, part)
			}
		}
	}

	bounds := []struct {
		param string
		dst   *float64
	}{
		{"maxCalories", &filter.MaxCalories},
		{"minProtein", &filter.MinProtein},
		{"maxCarbs", &filter.MaxCarbs},
		{"maxFat", &filter.MaxFat},
	}
	for _, b := range bounds {
		raw := q.Get(b.param)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return filter, fmt.Errorf("%s must be a non-negative number", b.param)
		}
		*b.dst = v
	}

	return filter, nil
}
