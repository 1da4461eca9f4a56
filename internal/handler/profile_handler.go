package handler

import (
	"net/http"

	"dining-planner/internal/model"
	"dining-planner/internal/service"

	"github.com/rs/zerolog"
)

// ProfileHandler handles user profile HTTP requests.
type ProfileHandler struct {
	service service.ProfileService
	logger  zerolog.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(service service.ProfileService, logger zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		logger:  logger.With().Str("handler", "profile").Logger(),
	}
}

// Get handles GET /api/profiles/{userId} requests.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.service.Get(r.Context(), r.PathValue("userId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to retrieve profile", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// Put handles PUT /api/profiles/{userId} requests.
func (h *ProfileHandler) Put(w http.ResponseWriter, r *http.Request) {
	var req model.ProfileRequest
	if err := decodeValidated(w, r, profileRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	profile, err := h.service.Put(r.Context(), r.PathValue("userId"), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to save profile", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}
