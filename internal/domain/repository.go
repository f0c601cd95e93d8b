package domain

import (
	"context"
	"time"
)

// Locale selects which remote product database endpoint a search hits.
type Locale string

const (
	// LocalePrimary is the Spanish-language Open Food Facts endpoint
	LocalePrimary Locale = "es"
	// LocaleFallback is the world (English) Open Food Facts endpoint
	LocaleFallback Locale = "world"
)

// Catalog defines the read-only local curated product catalog.
type Catalog interface {
	All() []RawProduct
	Search(query string) []RawProduct
	FindByCode(code string) (RawProduct, bool)
}

// RemoteSource defines the interface for the remote product databases.
type RemoteSource interface {
	Search(ctx context.Context, query string, locale Locale) ([]RawProduct, error)
	LookupByCode(ctx context.Context, barcode string) (RawProduct, error)
	SearchCountry(ctx context.Context, country string) ([]RawProduct, error)
}

// CacheRepository defines the interface for caching normalized search results.
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]Product, error)
	Set(ctx context.Context, key string, products []Product, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}
