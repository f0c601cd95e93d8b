package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/applimenta/backend/internal/domain"
)

// SearchServiceConfig holds configuration for the search service
type SearchServiceConfig struct {
	CacheTTL time.Duration
}

// SearchService reconciles the local catalog, the remote product databases,
// and the search-result cache into one ranked result set. Tiers are tried
// strictly in sequence and the first non-empty tier wins; lower-layer
// failures are absorbed and only ever manifest as an empty tier.
type SearchService struct {
	catalog  domain.Catalog
	remote   domain.RemoteSource
	cache    domain.CacheRepository
	cacheTTL time.Duration
}

// NewSearchService creates a new search service with dependencies
func NewSearchService(
	catalog domain.Catalog,
	remote domain.RemoteSource,
	cache domain.CacheRepository,
	config SearchServiceConfig,
) *SearchService {
	cacheTTL := config.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 24 * time.Hour
	}

	return &SearchService{
		catalog:  catalog,
		remote:   remote,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

// Search runs the tiered product search:
// local catalog -> cached remote results -> primary endpoint -> fallback
// endpoint -> whole catalog as last resort. It never returns an error and
// never returns an empty set while the catalog has entries. An empty
// sanitized query returns the whole catalog.
func (s *SearchService) Search(ctx context.Context, query string) []domain.Product {
	sanitized := SanitizeQuery(query)
	if sanitized == "" {
		return normalizeAll(s.catalog.All())
	}

	// Local results always take precedence; remote sources are never
	// consulted when the catalog matches.
	if local := s.catalog.Search(sanitized); len(local) > 0 {
		return normalizeAll(local)
	}

	cacheKey := searchCacheKey(sanitized)
	if cached, err := s.cache.Get(ctx, cacheKey); err == nil && len(cached) > 0 {
		return cached
	}

	for _, locale := range []domain.Locale{domain.LocalePrimary, domain.LocaleFallback} {
		products := s.searchRemote(ctx, sanitized, locale)
		if len(products) > 0 {
			// Best effort; a failed cache write never fails the search.
			_ = s.cache.Set(ctx, cacheKey, products, s.cacheTTL)
			return products
		}
	}

	return normalizeAll(s.catalog.All())
}

// SearchByCode looks a product up by exact barcode: local catalog first,
// then the remote database. ErrInvalidBarcode and ErrProductNotFound are
// the only outcomes besides a product; there is no last-resort fallback.
func (s *SearchService) SearchByCode(ctx context.Context, barcode string) (*domain.Product, error) {
	if !domain.IsValidBarcode(barcode) {
		return nil, domain.ErrInvalidBarcode
	}

	if raw, ok := s.catalog.FindByCode(barcode); ok {
		product := Normalize(raw)
		return &product, nil
	}

	raw, err := s.remote.LookupByCode(ctx, barcode)
	if err != nil || raw == nil {
		return nil, domain.ErrProductNotFound
	}

	product := Normalize(raw)
	return &product, nil
}

// searchRemote queries one remote endpoint and absorbs every failure into
// an empty result so the caller falls through to the next tier. Records
// without a name are discarded before normalization.
func (s *SearchService) searchRemote(ctx context.Context, query string, locale domain.Locale) []domain.Product {
	raws, err := s.remote.Search(ctx, query, locale)
	if err != nil {
		return nil
	}

	var products []domain.Product
	for _, raw := range raws {
		if !hasName(raw) {
			continue
		}
		products = append(products, Normalize(raw))
	}
	return products
}

func normalizeAll(raws []domain.RawProduct) []domain.Product {
	products := make([]domain.Product, 0, len(raws))
	for _, raw := range raws {
		products = append(products, Normalize(raw))
	}
	return products
}

func searchCacheKey(sanitized string) string {
	return fmt.Sprintf("search:%s", strings.ToLower(sanitized))
}
