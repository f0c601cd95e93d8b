package usecase

import "github.com/applimenta/backend/internal/domain"

// DefaultProductName is the placeholder used when a source record carries
// no name at all.
const DefaultProductName = "Producto colombiano"

// keyProbe pairs the Open Food Facts key with the local catalog key for one
// canonical field. Probing order is always external first, then local.
type keyProbe struct {
	external string
	local    string
}

var (
	nameProbe        = keyProbe{"product_name", "nombre"}
	brandProbe       = keyProbe{"brands", "marca"}
	imageProbe       = keyProbe{"image_url", "imagen"}
	categoriesProbe  = keyProbe{"categories_tags", "categorias"}
	countriesProbe   = keyProbe{"countries_tags", "paises"}
	descriptionProbe = keyProbe{"description", "descripcion"}
	nutrimentsProbe  = keyProbe{"nutriments", "nutrientes"}
)

// nutrientProbes is the ordered probing table for the eight nutrition
// fields, all per 100 g. Absent values default to zero.
var nutrientProbes = []struct {
	external string
	local    string
	assign   func(*domain.Nutrition, float64)
}{
	{"energy-kcal_100g", "calorias", func(n *domain.Nutrition, v float64) { n.Calories = v }},
	{"proteins_100g", "proteinas", func(n *domain.Nutrition, v float64) { n.Protein = v }},
	{"carbohydrates_100g", "carbohidratos", func(n *domain.Nutrition, v float64) { n.Carbohydrates = v }},
	{"fat_100g", "grasas", func(n *domain.Nutrition, v float64) { n.Fat = v }},
	{"fiber_100g", "fibra", func(n *domain.Nutrition, v float64) { n.Fiber = v }},
	{"sugars_100g", "azucares", func(n *domain.Nutrition, v float64) { n.Sugar = v }},
	{"salt_100g", "sal", func(n *domain.Nutrition, v float64) { n.Salt = v }},
	{"sodium_100g", "sodio", func(n *domain.Nutrition, v float64) { n.Sodium = v }},
}

// Normalize maps a raw record from any source into the canonical Product
// shape. It is total over any map-like input: an empty or nil record
// produces an all-default Product.
func Normalize(raw domain.RawProduct) domain.Product {
	code := probeString(raw, keyProbe{"code", "code"}, "")
	id := probeString(raw, keyProbe{"id", "id"}, "")
	if id == "" {
		id = code
	}

	return domain.Product{
		ID:          id,
		Code:        code,
		Name:        probeString(raw, nameProbe, DefaultProductName),
		Brand:       probeString(raw, brandProbe, ""),
		ImageURL:    probeString(raw, imageProbe, ""),
		Categories:  probeStrings(raw, categoriesProbe),
		Countries:   probeStrings(raw, countriesProbe),
		Description: probeString(raw, descriptionProbe, ""),
		Nutrition:   ExtractNutrition(raw),
	}
}

// ExtractNutrition computes the per-100g nutrition summary from a raw
// record in either field convention. It probes independently of Normalize
// so callers holding an un-normalized record get the same values. Absent
// fields are zero; negative source values are clamped to zero.
func ExtractNutrition(raw domain.RawProduct) domain.Nutrition {
	nutriments := probeMap(raw, nutrimentsProbe)

	var n domain.Nutrition
	for _, probe := range nutrientProbes {
		value, ok := numericValue(nutriments[probe.external])
		if !ok {
			value, ok = numericValue(nutriments[probe.local])
		}
		if !ok || value < 0 {
			value = 0
		}
		probe.assign(&n, value)
	}
	return n
}

// hasName reports whether the raw record carries a real product name.
// Remote records without one are discarded by the search tiers.
func hasName(raw domain.RawProduct) bool {
	return probeString(raw, nameProbe, "") != ""
}

func probeString(raw domain.RawProduct, probe keyProbe, fallback string) string {
	if v, ok := raw[probe.external].(string); ok && v != "" {
		return v
	}
	if v, ok := raw[probe.local].(string); ok && v != "" {
		return v
	}
	return fallback
}

func probeStrings(raw domain.RawProduct, probe keyProbe) []string {
	for _, key := range []string{probe.external, probe.local} {
		switch v := raw[key].(type) {
		case []string:
			if len(v) > 0 {
				return v
			}
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return []string{}
}

func probeMap(raw domain.RawProduct, probe keyProbe) map[string]any {
	for _, key := range []string{probe.external, probe.local} {
		if v, ok := raw[key].(map[string]any); ok && len(v) > 0 {
			return v
		}
	}
	return map[string]any{}
}

// numericValue coerces the numeric types produced by JSON decoding and by
// catalog literals into a float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}
