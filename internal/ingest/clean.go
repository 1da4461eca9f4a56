package ingest

import (
	"math"

	"dining-planner/internal/model"
)

// dedupKey identifies a menu entry within one batch.
type dedupKey struct {
	name     string
	location string
	station  string
}

// Clean drops non-item rows and collapses rows sharing (name, location, station).
// The first occurrence wins. The seen-set lives for this call only, so batches
// from different restaurants never influence each other.
func Clean(rows []model.VendorRow) ([]model.VendorRow, model.CleanReport) {
	seen := make(map[dedupKey]struct{}, len(rows))
	kept := make([]model.VendorRow, 0, len(rows))
	report := model.CleanReport{Original: len(rows)}

	for _, row := range rows {
		if !row.IsFoodItem() {
			report.DroppedInvalid++
			continue
		}

		key := dedupKey{
			name:     row.ResolvedName(),
			location: row.Locations,
			station:  row.Station,
		}
		if _, dup := seen[key]; dup {
			report.DroppedDuplicate++
			continue
		}

		seen[key] = struct{}{}
		kept = append(kept, row)
	}

	report.Kept = len(kept)
	report.ReductionPercent = reductionPercent(report.Original, report.Kept)

	return kept, report
}

// reductionPercent is rounded to one decimal place.
func reductionPercent(original, kept int) float64 {
	if original == 0 {
		return 0
	}
	pct := (1 - float64(kept)/float64(original)) * 100
	return math.Round(pct*10) / 10
}
