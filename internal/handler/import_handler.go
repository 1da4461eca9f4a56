package handler

import (
	"net/http"

	"dining-planner/internal/model"
	"dining-planner/internal/service"

	"github.com/rs/zerolog"
)

// ImportHandler handles vendor export import requests.
type ImportHandler struct {
	service service.ImportService
	logger  zerolog.Logger
}

// NewImportHandler creates a new import handler.
func NewImportHandler(service service.ImportService, logger zerolog.Logger) *ImportHandler {
	return &ImportHandler{
		service: service,
		logger:  logger.With().Str("handler", "import").Logger(),
	}
}

// importResponse wraps the per-file reports.
type importResponse struct {
	Reports []model.ImportReport `json:"reports"`
}

// Import handles POST /api/imports requests. Per-file failures are reported
// in the body with a 200; the request only fails when it is malformed.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req model.ImportRequest
	if err := decodeValidated(w, r, importRequestSchema, &req); err != nil {
		writeServiceError(w, r, err, "invalid request body", h.logger)
		return
	}

	reports, err := h.service.Import(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err, "failed to import exports", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{Reports: reports})
}
