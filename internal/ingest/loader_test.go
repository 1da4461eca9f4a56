package ingest

import (
	"compress/gzip"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"dining-planner/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testExport = "Nutrislice Food Name\tLocations\tStation\tText\tPrice\n" +
	"Pad Thai\tCafe Ventanas\tWok\t520 calories, 22g protein\t9.50\n" +
	"Pad Thai\tCafe Ventanas\tWok\t520 calories, 22g protein\t9.50\n" +
	"Spring Roll\tCafe Ventanas\tWok\t180 calories\t3.00\n"

// createTestExport writes content to a file under a temp dir, gzipping it when
// the name ends in .gz.
func createTestExport(t *testing.T, filename, content string) string {
	t.Helper()
	filePath := filepath.Join(t.TempDir(), filename)

	file, err := os.Create(filePath)
	require.NoError(t, err)
	defer file.Close()

	if !strings.HasSuffix(filename, ".gz") {
		_, err = file.WriteString(content)
		require.NoError(t, err)
		return filePath
	}

	gzipWriter := gzip.NewWriter(file)
	_, err = gzipWriter.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gzipWriter.Close())

	return filePath
}

func TestFileLoader_Load_Plain(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestExport(t, "cafe_ventanas.tsv", testExport)

	rows, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Pad Thai", rows[0].NutrisliceFoodName)
	assert.Equal(t, "3.00", rows[2].Price)
}

func TestFileLoader_Load_Gzipped(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestExport(t, "cafe_ventanas.tsv.gz", testExport)

	rows, err := loader.Load(context.Background(), filePath)

	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

func TestFileLoader_Load_NonExistentFile(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())

	rows, err := loader.Load(context.Background(), "/nonexistent/export.tsv")

	assert.Error(t, err)
	assert.Nil(t, rows)
	assert.Contains(t, err.Error(), "failed to open export file")
}

func TestFileLoader_Load_InvalidGzip(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := filepath.Join(t.TempDir(), "broken.tsv.gz")
	require.NoError(t, os.WriteFile(filePath, []byte("not gzip data"), 0o644))

	_, err := loader.Load(context.Background(), filePath)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "gzip reader")
}

func TestFileLoader_Load_ContextCancelled(t *testing.T) {
	loader := NewFileLoader(zerolog.Nop())
	filePath := createTestExport(t, "cafe.tsv", testExport)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.Load(ctx, filePath)

	assert.ErrorIs(t, err, context.Canceled)
}

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, path string) ([]model.VendorRow, error)
}

func (m *mockLoader) Load(ctx context.Context, path string) ([]model.VendorRow, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, path)
	}
	return nil, errors.New("not implemented")
}

func rowsNamed(names ...string) []model.VendorRow {
	rows := make([]model.VendorRow, 0, len(names))
	for _, name := range names {
		rows = append(rows, model.VendorRow{NutrisliceFoodName: name})
	}
	return rows
}

func TestFallbackLoader_S3Success(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			assert.Equal(t, "exports/cafe.tsv", path, "S3 key should have prefix")
			return rowsNamed("From S3"), nil
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			t.Error("file loader should not be called when S3 succeeds")
			return nil, errors.New("should not be called")
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "exports/", true, zerolog.Nop())

	rows, err := fallback.Load(context.Background(), "cafe.tsv")

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "From S3", rows[0].NutrisliceFoodName)
}

func TestFallbackLoader_S3FailsFallsBackToLocal(t *testing.T) {
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			return nil, errors.New("S3 unavailable")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			assert.Equal(t, "cafe.tsv", path, "local path should not have prefix")
			return rowsNamed("From Disk"), nil
		},
	}

	fallback := NewFallbackLoader(s3Loader, fileLoader, "exports/", true, zerolog.Nop())

	rows, err := fallback.Load(context.Background(), "cafe.tsv")

	require.NoError(t, err)
	assert.Equal(t, "From Disk", rows[0].NutrisliceFoodName)
}

func TestFallbackLoader_S3DisabledOrNil(t *testing.T) {
	s3Called := false
	s3Loader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			s3Called = true
			return nil, errors.New("should not be called")
		},
	}
	fileLoader := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			return rowsNamed("Local"), nil
		},
	}

	tests := []struct {
		name     string
		s3Loader Loader
		enabled  bool
	}{
		{"disabled", s3Loader, false},
		{"nil loader", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fallback := NewFallbackLoader(tt.s3Loader, fileLoader, "exports/", tt.enabled, zerolog.Nop())

			rows, err := fallback.Load(context.Background(), "cafe.tsv")

			require.NoError(t, err)
			assert.Equal(t, "Local", rows[0].NutrisliceFoodName)
		})
	}
	assert.False(t, s3Called)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	failing := &mockLoader{
		loadFunc: func(ctx context.Context, path string) ([]model.VendorRow, error) {
			return nil, errors.New("unavailable")
		},
	}

	fallback := NewFallbackLoader(failing, failing, "exports/", true, zerolog.Nop())

	rows, err := fallback.Load(context.Background(), "cafe.tsv")

	assert.Error(t, err)
	assert.Nil(t, rows)
}
