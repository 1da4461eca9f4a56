// Package ingest reads Nutrislice vendor exports and turns them into catalog
// food items: load, clean, then normalize, one batch per export file.
package ingest

import (
	"context"

	"dining-planner/internal/model"
)

// Loader defines the interface for loading vendor export files.
type Loader interface {
	// Load reads one export (optionally gzipped) and returns its raw rows.
	Load(ctx context.Context, path string) ([]model.VendorRow, error)
}

// Batch is the normalized content of one export file.
type Batch struct {
	Source     string
	Restaurant string
	Items      []model.FoodItem
	Report     model.CleanReport
	Err        error
}
