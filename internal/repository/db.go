package repository

import (
	"strings"

	"dining-planner/internal/model"

	"github.com/jackc/pgx/v5"
)

// foodItemFields is the column order scanFoodItem expects.
var foodItemFields = []string{
	"id", "vendor_id", "name", "location", "category", "price", "calories", "protein", "carbs", "fat",
	"fiber", "sugar", "sodium", "serving_size", "allergens", "tags", "station", "serving_days",
	"menu_types", "available", "description",
}

var foodItemColumns = strings.Join(foodItemFields, ", ")

// qualifiedFoodItemColumns prefixes every food item column with a table alias.
func qualifiedFoodItemColumns(alias string) string {
	cols := make([]string, len(foodItemFields))
	for i, f := range foodItemFields {
		cols[i] = alias + "." + f
	}
	return strings.Join(cols, ", ")
}

// scanFoodItem scans one row selected with foodItemColumns.
func scanFoodItem(row pgx.Row) (model.FoodItem, error) {
	var item model.FoodItem
	err := row.Scan(
		&item.ID,
		&item.VendorID,
		&item.Name,
		&item.Location,
		&item.Category,
		&item.Price,
		&item.Calories,
		&item.Protein,
		&item.Carbs,
		&item.Fat,
		&item.Fiber,
		&item.Sugar,
		&item.Sodium,
		&item.ServingSize,
		&item.Allergens,
		&item.Tags,
		&item.Station,
		&item.ServingDays,
		&item.MenuTypes,
		&item.Available,
		&item.Description,
	)
	return item, err
}

// collectFoodItems drains rows into a non-nil slice.
func collectFoodItems(rows pgx.Rows) ([]model.FoodItem, error) {
	defer rows.Close()

	items := []model.FoodItem{}
	for rows.Next() {
		item, err := scanFoodItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// textArray keeps NOT NULL array columns satisfied for nil slices.
func textArray(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
