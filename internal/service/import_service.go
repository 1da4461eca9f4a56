package service

import (
	"context"
	"fmt"
	"time"

	"dining-planner/internal/ingest"
	"dining-planner/internal/model"
	"dining-planner/internal/repository"

	"github.com/rs/zerolog"
)

// BatchImporter turns export files into cleaned, normalized batches.
type BatchImporter interface {
	Import(ctx context.Context, paths []string) []ingest.Batch
}

// importService implements ImportService.
type importService struct {
	importer    BatchImporter
	catalogRepo repository.CatalogRepository
	timeout     time.Duration
	logger      zerolog.Logger
}

// NewImportService creates a new import service. A positive timeout bounds
// each Import call.
func NewImportService(
	importer BatchImporter,
	catalogRepo repository.CatalogRepository,
	timeout time.Duration,
	logger zerolog.Logger,
) ImportService {
	return &importService{
		importer:    importer,
		catalogRepo: catalogRepo,
		timeout:     timeout,
		logger:      logger.With().Str("service", "import").Logger(),
	}
}

// Import returns one report per file, in request order. Per-file failures
// are carried in the report; only a missing file list is an error.
func (s *importService) Import(ctx context.Context, req *model.ImportRequest) ([]model.ImportReport, error) {
	if req == nil || len(req.Files) == 0 {
		return nil, model.ErrNoImportSources
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	batches := s.importer.Import(ctx, req.Files)
	reports := make([]model.ImportReport, len(batches))

	var stored, failed int
	for i, batch := range batches {
		report := model.ImportReport{
			Source:     batch.Source,
			Restaurant: batch.Restaurant,
			Clean:      batch.Report,
			Items:      len(batch.Items),
		}

		switch {
		case batch.Err != nil:
			report.Error = batch.Err.Error()
		case req.DryRun:
		default:
			n, err := s.catalogRepo.UpsertBatch(ctx, batch.Items)
			if err != nil {
				s.logger.Error().Err(err).Str("source", batch.Source).Msg("failed to store import batch")
				report.Error = fmt.Sprintf("failed to store items: %v", err)
				break
			}
			report.Stored = n
			stored += n
		}

		if report.Error != "" {
			failed++
		}
		reports[i] = report
	}

	s.logger.Info().
		Int("files", len(reports)).
		Int("failed", failed).
		Int("stored", stored).
		Bool("dry_run", req.DryRun).
		Msg("import finished")

	return reports, nil
}
