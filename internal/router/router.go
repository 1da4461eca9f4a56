package router

import (
	"net/http"

	"dining-planner/internal/handler"
	"dining-planner/internal/middleware"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Plan    *handler.PlanHandler
	Profile *handler.ProfileHandler
	Import  *handler.ImportHandler
}

// New creates a new HTTP router with all routes and middleware configured.
func New(h Handlers, apiKey string, logger zerolog.Logger) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("GET /api/catalog", h.Catalog.List)
	mux.HandleFunc("GET /api/catalog/{id}", h.Catalog.GetByID)

	mux.HandleFunc("POST /api/plans/score", h.Plan.Score)
	mux.HandleFunc("POST /api/plans/suggest", h.Plan.Suggest)
	mux.HandleFunc("POST /api/plans/optimize", h.Plan.Optimize)
	mux.HandleFunc("POST /api/plans/generate", h.Plan.Generate)
	mux.HandleFunc("POST /api/plans", h.Plan.Save)
	mux.HandleFunc("GET /api/plans/{userId}/{date}", h.Plan.Get)

	mux.HandleFunc("GET /api/profiles/{userId}", h.Profile.Get)
	mux.HandleFunc("PUT /api/profiles/{userId}", h.Profile.Put)

	mux.HandleFunc("POST /api/imports", h.Import.Import)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> Metrics -> CORS -> APIKeyAuth
	var handler http.Handler = mux
	handler = middleware.APIKeyAuth(apiKey, logger)(handler)
	handler = middleware.CORS(handler)
	handler = middleware.Metrics(handler)
	handler = middleware.Logging(logger)(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.Recovery(logger)(handler)

	return handler
}
