package ingest

import (
	"testing"

	"dining-planner/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClean_CollapsesDuplicates(t *testing.T) {
	a := model.VendorRow{NutrisliceFoodName: "Pad Thai", Locations: "Cafe Ventanas", Station: "Wok", Price: "9.00"}
	aPrime := model.VendorRow{NutrisliceFoodName: "Pad Thai", Locations: "Cafe Ventanas", Station: "Wok", Price: "9.50"}
	b := model.VendorRow{NutrisliceFoodName: "Spring Roll", Locations: "Cafe Ventanas", Station: "Wok"}

	kept, report := Clean([]model.VendorRow{a, aPrime, b})

	require.Len(t, kept, 2)
	assert.Equal(t, "9.00", kept[0].Price, "first occurrence wins")
	assert.Equal(t, "Spring Roll", kept[1].NutrisliceFoodName)
	assert.Equal(t, model.CleanReport{
		Original:         3,
		Kept:             2,
		DroppedDuplicate: 1,
		ReductionPercent: 33.3,
	}, report)
}

func TestClean_DropsInvalidRows(t *testing.T) {
	rows := []model.VendorRow{
		{NutrisliceFoodName: "Entrees", IsSectionTitle: true},
		{NutrisliceFoodName: "Grill", IsStationHeader: true},
		{Text: "no name at all"},
		{ImportedFoodName: "Burger", Station: "Grill"},
	}

	kept, report := Clean(rows)

	require.Len(t, kept, 1)
	assert.Equal(t, "Burger", kept[0].ResolvedName())
	assert.Equal(t, 4, report.Original)
	assert.Equal(t, 1, report.Kept)
	assert.Equal(t, 3, report.DroppedInvalid)
	assert.Equal(t, 0, report.DroppedDuplicate)
	assert.Equal(t, 75.0, report.ReductionPercent)
}

func TestClean_KeyIncludesLocationAndStation(t *testing.T) {
	rows := []model.VendorRow{
		{NutrisliceFoodName: "Coffee", Locations: "North", Station: "Bar"},
		{NutrisliceFoodName: "Coffee", Locations: "South", Station: "Bar"},
		{NutrisliceFoodName: "Coffee", Locations: "North", Station: "Bakery"},
		{ImportedFoodName: "Coffee", Locations: "North", Station: "Bar"},
	}

	kept, report := Clean(rows)

	assert.Len(t, kept, 3)
	assert.Equal(t, 1, report.DroppedDuplicate)
}

func TestClean_Empty(t *testing.T) {
	kept, report := Clean(nil)

	assert.Empty(t, kept)
	assert.Equal(t, model.CleanReport{}, report)
}

func TestClean_BatchesAreIndependent(t *testing.T) {
	row := model.VendorRow{NutrisliceFoodName: "Bagel", Locations: "Cafe", Station: "Bakery"}

	first, _ := Clean([]model.VendorRow{row})
	second, report := Clean([]model.VendorRow{row})

	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
	assert.Zero(t, report.DroppedDuplicate)
}

func TestClean_Idempotent(t *testing.T) {
	rows := []model.VendorRow{
		{NutrisliceFoodName: "Soup"},
		{NutrisliceFoodName: "Soup"},
		{NutrisliceFoodName: "Salad"},
	}

	once, _ := Clean(rows)
	twice, report := Clean(once)

	assert.Equal(t, once, twice)
	assert.Equal(t, 0.0, report.ReductionPercent)
}
