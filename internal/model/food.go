package model

// Category is the coarse classification of a food item.
type Category string

const (
	CategoryEntree   Category = "entree"
	CategorySide     Category = "side"
	CategoryDessert  Category = "dessert"
	CategoryBeverage Category = "beverage"
	CategorySnack    Category = "snack"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryEntree,
	CategorySide,
	CategoryDessert,
	CategoryBeverage,
	CategorySnack,
}

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// NutritionFacts is a sparse nutrition record. A nil field was not found in the
// source text; a nil *NutritionFacts means nothing was found at all.
type NutritionFacts struct {
	Calories     *int     `json:"calories,omitempty"`
	Protein      *float64 `json:"protein,omitempty"`
	Carbs        *float64 `json:"carbs,omitempty"`
	Fat          *float64 `json:"fat,omitempty"`
	Fiber        *float64 `json:"fiber,omitempty"`
	Sugar        *float64 `json:"sugar,omitempty"`
	Sodium       *float64 `json:"sodium,omitempty"`
	SaturatedFat *float64 `json:"saturatedFat,omitempty"`
	TransFat     *float64 `json:"transFat,omitempty"`
	Cholesterol  *float64 `json:"cholesterol,omitempty"`
	VitaminA     *float64 `json:"vitaminA,omitempty"`
	VitaminC     *float64 `json:"vitaminC,omitempty"`
	Calcium      *float64 `json:"calcium,omitempty"`
	Iron         *float64 `json:"iron,omitempty"`
}

// FoodItem is one orderable menu entry in the catalog.
type FoodItem struct {
	ID          string   `json:"id" db:"id"`
	VendorID    string   `json:"vendorId,omitempty" db:"vendor_id"`
	Name        string   `json:"name" db:"name"`
	Location    string   `json:"location" db:"location"`
	Category    Category `json:"category" db:"category"`
	Price       float64  `json:"price" db:"price"`
	Calories    int      `json:"calories" db:"calories"`
	Protein     float64  `json:"protein" db:"protein"`
	Carbs       float64  `json:"carbs" db:"carbs"`
	Fat         float64  `json:"fat" db:"fat"`
	Fiber       *float64 `json:"fiber,omitempty" db:"fiber"`
	Sugar       *float64 `json:"sugar,omitempty" db:"sugar"`
	Sodium      *float64 `json:"sodium,omitempty" db:"sodium"`
	ServingSize *string  `json:"servingSize,omitempty" db:"serving_size"`
	Allergens   []string `json:"allergens" db:"allergens"`
	Tags        []string `json:"tags" db:"tags"`
	Station     string   `json:"station" db:"station"`
	ServingDays []string `json:"servingDays" db:"serving_days"`
	MenuTypes   []string `json:"menuTypes" db:"menu_types"`
	Available   bool     `json:"available" db:"available"`
	Description string   `json:"description,omitempty" db:"description"`
}
