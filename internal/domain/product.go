package domain

import "regexp"

// RawProduct is a product record as it arrives from a data source, before
// normalization. Open Food Facts responses and the local catalog literals
// both decode into this shape; the two use different field names for the
// same semantic fields.
type RawProduct map[string]any

// Product is the canonical product record exchanged between components.
// Every record is normalized to this shape regardless of which source
// produced it.
type Product struct {
	ID          string    `json:"id"`
	Code        string    `json:"code,omitempty"`
	Name        string    `json:"name"`
	Brand       string    `json:"brand,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Categories  []string  `json:"categories"`
	Countries   []string  `json:"countries"`
	Description string    `json:"description,omitempty"`
	Nutrition   Nutrition `json:"nutrition"`
}

// Nutrition holds the per-100g nutrition summary. Absent source values are
// zero, never missing, so downstream summation is always defined.
type Nutrition struct {
	Calories      float64 `json:"calories"`
	Protein       float64 `json:"protein"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fat           float64 `json:"fat"`
	Fiber         float64 `json:"fiber"`
	Sugar         float64 `json:"sugar"`
	Salt          float64 `json:"salt"`
	Sodium        float64 `json:"sodium"`
}

// barcodePattern matches EAN-8 through EAN-14 style numeric codes.
var barcodePattern = regexp.MustCompile(`^\d{8,14}$`)

// IsValidBarcode reports whether code is a numeric string of 8 to 14 digits.
func IsValidBarcode(code string) bool {
	return barcodePattern.MatchString(code)
}
