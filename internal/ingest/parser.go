package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"dining-planner/internal/model"
)

// column assigns one export cell to a row field.
type column func(row *model.VendorRow, value string)

// columns maps normalised header names (Nutrislice spelling and snake_case
// aliases) to the field they populate.
var columns = map[string]column{
	"nutrislice id":         func(r *model.VendorRow, v string) { r.NutrisliceID = v },
	"imported id":           func(r *model.VendorRow, v string) { r.ImportedID = v },
	"menu name":             func(r *model.VendorRow, v string) { r.MenuName = v },
	"published":             func(r *model.VendorRow, v string) { r.Published = parseOptionalBool(v) },
	"menu types":            func(r *model.VendorRow, v string) { r.MenuTypes = v },
	"locations":             func(r *model.VendorRow, v string) { r.Locations = v },
	"location groups":       func(r *model.VendorRow, v string) { r.LocationGroups = v },
	"menu start date":       func(r *model.VendorRow, v string) { r.MenuStartDate = v },
	"menu end date":         func(r *model.VendorRow, v string) { r.MenuEndDate = v },
	"serving days":          func(r *model.VendorRow, v string) { r.ServingDays = v },
	"menu item date":        func(r *model.VendorRow, v string) { r.MenuItemDate = v },
	"day of week":           func(r *model.VendorRow, v string) { r.DayOfWeek = v },
	"nutrislice food id":    func(r *model.VendorRow, v string) { r.NutrisliceFoodID = v },
	"imported food id":      func(r *model.VendorRow, v string) { r.ImportedFoodID = v },
	"nutrislice food name":  func(r *model.VendorRow, v string) { r.NutrisliceFoodName = v },
	"imported food name":    func(r *model.VendorRow, v string) { r.ImportedFoodName = v },
	"text":                  func(r *model.VendorRow, v string) { r.Text = v },
	"is section title":      func(r *model.VendorRow, v string) { r.IsSectionTitle = parseBool(v) },
	"category":              func(r *model.VendorRow, v string) { r.Category = v },
	"price":                 func(r *model.VendorRow, v string) { r.Price = v },
	"serving size (amount)": func(r *model.VendorRow, v string) { r.ServingSizeAmount = v },
	"serving size amount":   func(r *model.VendorRow, v string) { r.ServingSizeAmount = v },
	"serving size (unit)":   func(r *model.VendorRow, v string) { r.ServingSizeUnit = v },
	"serving size unit":     func(r *model.VendorRow, v string) { r.ServingSizeUnit = v },
	"station":               func(r *model.VendorRow, v string) { r.Station = v },
	"is station header":     func(r *model.VendorRow, v string) { r.IsStationHeader = parseBool(v) },
}

// ParseExport reads a tab-separated vendor export whose first line is the
// header. Unknown columns are ignored and short lines leave trailing fields empty.
func ParseExport(r io.Reader) ([]model.VendorRow, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return []model.VendorRow{}, nil
		}
		return nil, fmt.Errorf("failed to read export header: %w", err)
	}

	setters := make([]column, len(header))
	for i, name := range header {
		setters[i] = columns[normaliseHeader(name)]
	}

	rows := []model.VendorRow{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read export: %w", err)
		}
		if blank(record) {
			continue
		}

		var row model.VendorRow
		for i, cell := range record {
			if i >= len(setters) || setters[i] == nil {
				continue
			}
			setters[i](&row, strings.TrimSpace(cell))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func normaliseHeader(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
	return strings.ReplaceAll(name, "_", " ")
}

func blank(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

func parseBool(v string) bool {
	return strings.EqualFold(strings.TrimSpace(v), "true")
}

// parseOptionalBool keeps an empty cell distinguishable from an explicit value.
func parseOptionalBool(v string) *bool {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	b := parseBool(v)
	return &b
}
