package domain

// MealItem is the lightweight product projection stored inside a meal plan.
type MealItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	ImageURL string  `json:"imageUrl,omitempty"`
	Calories float64 `json:"calories"`
}

// MealTotals holds the summed nutrition for a set of meal items.
// Calories are rounded to an integer, the macros to one decimal place.
type MealTotals struct {
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Meal is one slot of a daily plan.
type Meal struct {
	Items  []MealItem `json:"items"`
	Totals MealTotals `json:"totals"`
}

// MealPlan is a date-scoped daily plan of four meal slots plus running
// totals across all slots. Plans are immutable once generated; changing one
// means regenerating it. The shape matches what the document store persists,
// but persistence itself happens outside this package.
type MealPlan struct {
	ID        string     `json:"id"`
	Date      string     `json:"date"`
	Breakfast Meal       `json:"breakfast"`
	Lunch     Meal       `json:"lunch"`
	Dinner    Meal       `json:"dinner"`
	Snacks    Meal       `json:"snacks"`
	Totals    MealTotals `json:"totals"`
}

// ColombianOverview aggregates the home-screen payload: country-tagged
// products, typical foods from the catalog, and a generated weekly plan.
type ColombianOverview struct {
	Products     []Product  `json:"products"`
	TypicalFoods []Product  `json:"typicalFoods"`
	WeeklyPlan   []MealPlan `json:"weeklyPlan"`
}
