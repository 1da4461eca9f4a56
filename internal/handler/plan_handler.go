package handler

import (
	"net/http"

	"dining-planner/internal/model"
	"dining-planner/internal/service"

	"github.com/rs/zerolog"
)

// PlanHandler handles meal plan HTTP requests.
type PlanHandler struct {
	service service.PlanService
	logger  zerolog.Logger
}

// NewPlanHandler creates a new plan handler.
func NewPlanHandler(service service.PlanService, logger zerolog.Logger) *PlanHandler {
	return &PlanHandler{
		service: service,
		logger:  logger.With().Str("handler", "plan").Logger(),
	}
}

// Score handles POST /api/plans/score requests.
func (h *PlanHandler) Score(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if err := decodeValidated(w, r, planRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	result, err := h.service.Score(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to score plan", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Suggest handles POST /api/plans/suggest requests.
func (h *PlanHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req model.SuggestRequest
	if err := decodeValidated(w, r, suggestRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	suggestions, err := h.service.Suggest(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to find substitutes", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, suggestions)
}

// Optimize handles POST /api/plans/optimize requests.
func (h *PlanHandler) Optimize(w http.ResponseWriter, r *http.Request) {
	var req model.PlanRequest
	if err := decodeValidated(w, r, planRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	result, err := h.service.Optimize(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to optimize plan", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Generate handles POST /api/plans/generate requests.
func (h *PlanHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req model.GenerateRequest
	if err := decodeValidated(w, r, generateRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	result, err := h.service.Generate(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to generate plan", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Save handles POST /api/plans requests.
func (h *PlanHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req model.SavePlanRequest
	if err := decodeValidated(w, r, savePlanRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	plan, err := h.service.Save(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to save plan", h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, plan)
}

// Get handles GET /api/plans/{userId}/{date} requests.
func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	date := r.PathValue("date")
	if userID == "" || date == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidRequest, "user ID and date are required", h.logger)
		return
	}

	plan, err := h.service.Get(r.Context(), userID, date)
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve plan", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, plan)
}
