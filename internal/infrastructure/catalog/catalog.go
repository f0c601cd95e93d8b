// Package catalog holds the curated set of Colombian products used as the
// known-good local tier of the product search. The data is immutable after
// initialization and safe for unsynchronized concurrent reads.
package catalog

import (
	"strings"

	"github.com/applimenta/backend/internal/domain"
)

// Catalog is the static local product catalog.
type Catalog struct {
	products []domain.RawProduct
}

// New returns the catalog backed by the curated product set.
func New() *Catalog {
	return &Catalog{products: colombianProducts}
}

// All returns a copy of every catalog record.
func (c *Catalog) All() []domain.RawProduct {
	out := make([]domain.RawProduct, len(c.products))
	copy(out, c.products)
	return out
}

// Search filters the catalog by case-insensitive substring match across
// name, brand, joined category tags, and description. An empty query
// returns the whole catalog.
func (c *Catalog) Search(query string) []domain.RawProduct {
	query = strings.TrimSpace(query)
	if query == "" {
		return c.All()
	}

	queryLower := strings.ToLower(query)
	var matches []domain.RawProduct
	for _, p := range c.products {
		if matchesQuery(p, queryLower) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindByCode returns the catalog record with the exact barcode, if any.
func (c *Catalog) FindByCode(code string) (domain.RawProduct, bool) {
	for _, p := range c.products {
		if stringField(p, "code") == code {
			return p, true
		}
	}
	return nil, false
}

func matchesQuery(p domain.RawProduct, queryLower string) bool {
	name := strings.ToLower(stringField(p, "product_name"))
	brand := strings.ToLower(stringField(p, "brands"))
	description := strings.ToLower(stringField(p, "description"))

	var tags []string
	if raw, ok := p["categories_tags"].([]string); ok {
		tags = raw
	}
	categories := strings.ToLower(strings.Join(tags, " "))

	return strings.Contains(name, queryLower) ||
		strings.Contains(brand, queryLower) ||
		strings.Contains(categories, queryLower) ||
		strings.Contains(description, queryLower)
}

func stringField(p domain.RawProduct, key string) string {
	if v, ok := p[key].(string); ok {
		return v
	}
	return ""
}
