package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"dining-planner/internal/config"
	"dining-planner/internal/database"
	"dining-planner/internal/ingest"
	"dining-planner/internal/model"
	"dining-planner/internal/repository"
	"dining-planner/internal/service"
)

var errFailedFiles = errors.New("one or more files failed to import")

func main() {
	files := flag.String("files", "", "Comma-separated export files (e.g. grill.tsv,deli.tsv.gz)")
	dryRun := flag.Bool("dry-run", false, "Parse, clean and normalize without storing items")
	flag.Parse()

	paths := splitList(*files)
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "Error: -files is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(paths, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(paths []string, dryRun bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger, "importer")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A dry run never stores, so it does not need the database.
	var catalogRepo repository.CatalogRepository
	if !dryRun {
		pool, err := database.NewPool(ctx, cfg.Database, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer pool.Close()

		if err := database.EnsureSchema(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
		catalogRepo = repository.NewCatalogRepository(pool, logger)

		if cfg.Redis.Enabled {
			// Stored items must evict cached listings the API is serving.
			client, err := database.NewRedis(ctx, cfg.Redis, logger)
			if err != nil {
				logger.Warn().Err(err).Msg("redis unavailable, cached listings will expire on their own")
			} else {
				defer client.Close()
				catalogRepo = repository.NewCachedCatalog(catalogRepo, client, cfg.Redis.CacheTTL, logger)
			}
		}
	}

	loader := ingest.NewConfiguredLoader(ctx, cfg.S3, logger)
	importService := service.NewImportService(ingest.NewImporter(loader, nil, logger), catalogRepo, cfg.Import.Timeout, logger)

	reports, err := importService.Import(ctx, &model.ImportRequest{Files: paths, DryRun: dryRun})
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(reports); err != nil {
		return fmt.Errorf("failed to write reports: %w", err)
	}

	for _, report := range reports {
		if report.Error != "" {
			return errFailedFiles
		}
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
