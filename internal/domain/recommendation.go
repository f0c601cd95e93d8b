package domain

// RecommendationSet holds daily recommended intake targets. Calories in
// kcal, sodium in grams, everything else in grams per day.
type RecommendationSet struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Sodium        float64 `json:"sodium"`
}
