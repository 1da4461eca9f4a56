package ingest

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"dining-planner/internal/extract"
	"dining-planner/internal/model"
)

const (
	unknownItemName     = "Unknown Item"
	unknownLocationName = "Unknown Location"
)

// IDFunc returns the uniquifier used for items whose export row carries no
// vendor food id.
type IDFunc func() string

// TimestampID is the default IDFunc. Ids built from it are not stable across
// re-imports of the same export.
func TimestampID() string {
	return strconv.FormatInt(time.Now().UnixNano(), 10)
}

// Normalizer turns vendor rows into catalog food items.
type Normalizer struct {
	newID IDFunc
}

// NewNormalizer creates a normalizer. A nil idFunc selects TimestampID.
func NewNormalizer(idFunc IDFunc) *Normalizer {
	if idFunc == nil {
		idFunc = TimestampID
	}
	return &Normalizer{newID: idFunc}
}

// Normalize converts one row. It returns false for header rows, section titles
// and rows without a name.
func (n *Normalizer) Normalize(row model.VendorRow) (model.FoodItem, bool) {
	if !row.IsFoodItem() {
		return model.FoodItem{}, false
	}

	name := strings.TrimSpace(row.ResolvedName())
	if name == "" {
		name = unknownItemName
	}
	location := strings.TrimSpace(row.Locations)
	if location == "" {
		location = unknownLocationName
	}

	item := model.FoodItem{
		VendorID:    vendorFoodID(row),
		Name:        name,
		Location:    location,
		Category:    extract.Category(row.Category, row.Text),
		Price:       parsePrice(row.Price),
		ServingSize: servingSize(row.ServingSizeAmount, row.ServingSizeUnit),
		Allergens:   dedupe(extract.Allergens(row.Text)),
		Tags:        dedupe(extract.DietaryTags(row.Text)),
		Station:     row.Station,
		ServingDays: splitList(row.ServingDays),
		MenuTypes:   splitList(row.MenuTypes),
		Available:   row.Published == nil || *row.Published,
		Description: row.Text,
	}
	item.ID = n.itemID(item)

	if facts := extract.Nutrition(row.Text); facts != nil {
		if facts.Calories != nil {
			item.Calories = *facts.Calories
		}
		item.Protein = valueOrZero(facts.Protein)
		item.Carbs = valueOrZero(facts.Carbs)
		item.Fat = valueOrZero(facts.Fat)
		item.Fiber = facts.Fiber
		item.Sugar = facts.Sugar
		item.Sodium = facts.Sodium
	}

	return item, true
}

// NormalizeAll converts rows in order, skipping the ones Normalize rejects.
func (n *Normalizer) NormalizeAll(rows []model.VendorRow) []model.FoodItem {
	items := make([]model.FoodItem, 0, len(rows))
	for _, row := range rows {
		if item, ok := n.Normalize(row); ok {
			items = append(items, item)
		}
	}
	return items
}

// itemID is deterministic when the row carries a vendor food id and falls back
// to the injected uniquifier otherwise.
func (n *Normalizer) itemID(item model.FoodItem) string {
	if item.VendorID == "" {
		return "item_" + n.newID()
	}
	parts := []string{item.VendorID, slug(item.Name)}
	if station := slug(item.Station); station != "" {
		parts = append(parts, station)
	}
	return strings.Join(parts, "_")
}

func vendorFoodID(row model.VendorRow) string {
	if id := strings.TrimSpace(row.NutrisliceFoodID); id != "" {
		return id
	}
	return strings.TrimSpace(row.ImportedFoodID)
}

// parsePrice coerces unparseable, non-finite and negative prices to 0.
func parsePrice(raw string) float64 {
	raw = strings.TrimPrefix(strings.TrimSpace(raw), "$")
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) || price < 0 {
		return 0
	}
	return price
}

func servingSize(amount, unit string) *string {
	unit = strings.TrimSpace(unit)
	value, err := strconv.ParseFloat(strings.TrimSpace(amount), 64)
	if err != nil || value == 0 || math.IsNaN(value) || math.IsInf(value, 0) || unit == "" {
		return nil
	}
	size := strconv.FormatFloat(value, 'f', -1, 64) + " " + unit
	return &size
}

func splitList(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
