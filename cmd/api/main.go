package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dining-planner/internal/config"
	"dining-planner/internal/database"
	"dining-planner/internal/handler"
	"dining-planner/internal/ingest"
	"dining-planner/internal/model"
	"dining-planner/internal/repository"
	"dining-planner/internal/router"
	"dining-planner/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "api")
	logger.Info().Msg("starting dining planner API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}

	// Initialize repositories
	catalogRepo := repository.NewCatalogRepository(pool, logger)
	profileRepo := repository.NewProfileRepository(pool, logger)
	planRepo := repository.NewPlanRepository(pool, logger)

	if cfg.Redis.Enabled {
		client, err := database.NewRedis(ctx, cfg.Redis, logger)
		if err != nil {
			// The catalog still works uncached.
			logger.Warn().Err(err).Msg("redis unavailable, catalog cache disabled")
		} else {
			defer client.Close()
			catalogRepo = repository.NewCachedCatalog(catalogRepo, client, cfg.Redis.CacheTTL, logger)
		}
	}

	loader := ingest.NewConfiguredLoader(ctx, cfg.S3, logger)
	importer := ingest.NewImporter(loader, nil, logger)

	// Initialize services
	catalogService := service.NewCatalogService(catalogRepo, logger)
	profileService := service.NewProfileService(profileRepo, logger)
	planService := service.NewPlanService(planRepo, catalogRepo, profileRepo, logger)
	importService := service.NewImportService(importer, catalogRepo, cfg.Import.Timeout, logger)

	if len(cfg.Import.Files) > 0 {
		reports, err := importService.Import(ctx, &model.ImportRequest{Files: cfg.Import.Files})
		if err != nil {
			return fmt.Errorf("startup import failed: %w", err)
		}
		for _, report := range reports {
			if report.Error != "" {
				logger.Warn().
					Str("source", report.Source).
					Str("error", report.Error).
					Msg("startup import skipped file")
			}
		}
	}

	mux := router.New(router.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService, logger),
		Plan:    handler.NewPlanHandler(planService, logger),
		Profile: handler.NewProfileHandler(profileService, logger),
		Import:  handler.NewImportHandler(importService, logger),
	}, cfg.Auth.APIKey, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
