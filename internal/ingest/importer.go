package ingest

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"dining-planner/internal/metrics"

	"github.com/rs/zerolog"
)

// Importer loads several vendor exports concurrently and normalizes each one
// as an independent batch.
type Importer struct {
	loader     Loader
	normalizer *Normalizer
	logger     zerolog.Logger
}

// NewImporter creates a new importer.
func NewImporter(loader Loader, normalizer *Normalizer, logger zerolog.Logger) *Importer {
	if normalizer == nil {
		normalizer = NewNormalizer(nil)
	}
	return &Importer{
		loader:     loader,
		normalizer: normalizer,
		logger:     logger.With().Str("component", "importer").Logger(),
	}
}

// Import returns one batch per path, in input order. A file that fails to load
// carries its error in Batch.Err and does not affect the others.
func (im *Importer) Import(ctx context.Context, paths []string) []Batch {
	im.logger.Info().Int("file_count", len(paths)).Msg("starting vendor export import")

	type loadResult struct {
		index int
		batch Batch
	}

	resultChan := make(chan loadResult, len(paths))
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(index int, path string) {
			defer wg.Done()
			resultChan <- loadResult{index: index, batch: im.importFile(ctx, path)}
		}(i, path)
	}

	wg.Wait()
	close(resultChan)

	batches := make([]Batch, len(paths))
	for result := range resultChan {
		batches[result.index] = result.batch
	}

	for _, b := range batches {
		if b.Err != nil {
			metrics.ImportFilesFailed.Inc()
			im.logger.Error().Err(b.Err).Str("file", b.Source).Msg("failed to import vendor export")
			continue
		}
		im.logger.Info().
			Str("file", b.Source).
			Str("restaurant", b.Restaurant).
			Int("original", b.Report.Original).
			Int("kept", b.Report.Kept).
			Float64("reduction_percent", b.Report.ReductionPercent).
			Msg("vendor export imported")
	}

	return batches
}

func (im *Importer) importFile(ctx context.Context, path string) Batch {
	batch := Batch{
		Source:     path,
		Restaurant: RestaurantName(path),
	}

	rows, err := im.loader.Load(ctx, path)
	if err != nil {
		batch.Err = err
		return batch
	}

	kept, report := Clean(rows)
	batch.Report = report
	batch.Items = im.normalizer.NormalizeAll(kept)

	metrics.ImportRowsRead.WithLabelValues(batch.Restaurant).Add(float64(report.Original))
	metrics.ImportRowsKept.WithLabelValues(batch.Restaurant).Add(float64(report.Kept))
	metrics.ImportRowsDropped.WithLabelValues(batch.Restaurant, "invalid").Add(float64(report.DroppedInvalid))
	metrics.ImportRowsDropped.WithLabelValues(batch.Restaurant, "duplicate").Add(float64(report.DroppedDuplicate))

	return batch
}

// RestaurantName derives a display name from an export file name, e.g.
// "exports/cafe_ventanas.tsv.gz" becomes "Cafe Ventanas".
func RestaurantName(path string) string {
	name := filepath.Base(path)
	for _, ext := range []string{".gz", ".tsv", ".txt", ".csv"} {
		name = strings.TrimSuffix(name, ext)
	}

	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, w := range words {
		first, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(first)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
