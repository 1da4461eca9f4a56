package ingest

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"dining-planner/internal/model"

	"github.com/rs/zerolog"
)

// fileLoader implements Loader for exports on the local file system.
type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a new file-based export loader.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "export-loader").Logger(),
	}
}

// Load reads a tab-separated export. Paths ending in .gz are decompressed.
func (l *fileLoader) Load(ctx context.Context, path string) ([]model.VendorRow, error) {
	l.logger.Info().Str("file", path).Msg("loading vendor export")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open export file")
		return nil, fmt.Errorf("failed to open export file %s: %w", path, err)
	}
	defer file.Close()

	rows, err := readExport(file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to read export file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("rows_loaded", len(rows)).
		Msg("vendor export loaded successfully")

	return rows, nil
}

// readExport parses r, transparently gunzipping when name ends in .gz.
func readExport(r io.Reader, name string) ([]model.VendorRow, error) {
	if strings.HasSuffix(strings.ToLower(name), ".gz") {
		gzipReader, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gzipReader.Close()
		r = gzipReader
	}

	rows, err := ParseExport(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse export %s: %w", name, err)
	}
	return rows, nil
}
