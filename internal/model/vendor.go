package model

import "strings"

// VendorRow is one line of a Nutrislice spreadsheet export. Numeric columns are
// kept as raw strings; the normalizer decides how to coerce them.
type VendorRow struct {
	NutrisliceID       string `json:"nutrisliceId"`
	ImportedID         string `json:"importedId"`
	MenuName           string `json:"menuName"`
	Published          *bool  `json:"published,omitempty"`
	MenuTypes          string `json:"menuTypes"`
	Locations          string `json:"locations"`
	LocationGroups     string `json:"locationGroups"`
	MenuStartDate      string `json:"menuStartDate"`
	MenuEndDate        string `json:"menuEndDate"`
	ServingDays        string `json:"servingDays"`
	MenuItemDate       string `json:"menuItemDate"`
	DayOfWeek          string `json:"dayOfWeek"`
	NutrisliceFoodID   string `json:"nutrisliceFoodId"`
	ImportedFoodID     string `json:"importedFoodId"`
	NutrisliceFoodName string `json:"nutrisliceFoodName"`
	ImportedFoodName   string `json:"importedFoodName"`
	Text               string `json:"text"`
	IsSectionTitle     bool   `json:"isSectionTitle"`
	Category           string `json:"category"`
	Price              string `json:"price"`
	ServingSizeAmount  string `json:"servingSizeAmount"`
	ServingSizeUnit    string `json:"servingSizeUnit"`
	Station            string `json:"station"`
	IsStationHeader    bool   `json:"isStationHeader"`
}

// ResolvedName returns the trimmed vendor name, falling back to the imported
// name when the vendor name is blank.
func (r VendorRow) ResolvedName() string {
	if name := strings.TrimSpace(r.NutrisliceFoodName); name != "" {
		return name
	}
	return strings.TrimSpace(r.ImportedFoodName)
}

// IsFoodItem reports whether the row describes an orderable item rather than a
// header, a section title or a nameless line.
func (r VendorRow) IsFoodItem() bool {
	if r.IsSectionTitle || r.IsStationHeader {
		return false
	}
	return r.ResolvedName() != ""
}

// CleanReport summarises one batch passed through the cleaner.
type CleanReport struct {
	Original         int     `json:"original"`
	Kept             int     `json:"kept"`
	DroppedInvalid   int     `json:"droppedInvalid"`
	DroppedDuplicate int     `json:"droppedDuplicate"`
	ReductionPercent float64 `json:"reductionPercent"`
}

// ImportReport describes the outcome of importing one export file.
type ImportReport struct {
	Source     string      `json:"source"`
	Restaurant string      `json:"restaurant"`
	Clean      CleanReport `json:"clean"`
	Items      int         `json:"items"`
	Stored     int         `json:"stored"`
	Error      string      `json:"error,omitempty"`
}
