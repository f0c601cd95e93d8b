package usecase

import (
	"context"
	"strings"

	"github.com/applimenta/backend/internal/domain"
)

// typicalMarkers flag catalog entries as traditional Colombian staples via
// their category tags.
var typicalMarkers = []string{"colombiano", "arepa", "plátano", "frijol", "maíz"}

// typicalFoodsFallbackCount bounds the selection returned when no catalog
// entry carries a typical marker.
const typicalFoodsFallbackCount = 10

// OverviewService assembles the aggregated home-screen payload from the
// catalog, the remote country search, and the meal plan generator.
type OverviewService struct {
	catalog domain.Catalog
	remote  domain.RemoteSource
	plans   *MealPlanGenerator
}

// NewOverviewService creates a new overview service with dependencies
func NewOverviewService(catalog domain.Catalog, remote domain.RemoteSource, plans *MealPlanGenerator) *OverviewService {
	return &OverviewService{
		catalog: catalog,
		remote:  remote,
		plans:   plans,
	}
}

// TypicalFoods returns the catalog entries tagged as traditional Colombian
// staples. When nothing matches it falls back to a selection from the top
// of the catalog, so the result is never empty while the catalog has
// entries.
func (s *OverviewService) TypicalFoods() []domain.Product {
	var typical []domain.Product
	for _, raw := range s.catalog.All() {
		if hasTypicalMarker(raw) {
			typical = append(typical, Normalize(raw))
		}
	}
	if len(typical) > 0 {
		return typical
	}

	all := s.catalog.All()
	if len(all) > typicalFoodsFallbackCount {
		all = all[:typicalFoodsFallbackCount]
	}
	return normalizeAll(all)
}

// ColombianOverview aggregates country-tagged products, typical foods, and
// a freshly generated weekly plan. A failed or empty remote country search
// falls back to the catalog, so the overview is always served.
func (s *OverviewService) ColombianOverview(ctx context.Context) domain.ColombianOverview {
	products := s.countryProducts(ctx)
	return domain.ColombianOverview{
		Products:     products,
		TypicalFoods: s.TypicalFoods(),
		WeeklyPlan:   s.plans.GenerateWeeklyPlan(s.catalog.All()),
	}
}

func (s *OverviewService) countryProducts(ctx context.Context) []domain.Product {
	raws, err := s.remote.SearchCountry(ctx, "colombia")
	if err == nil {
		var products []domain.Product
		for _, raw := range raws {
			if !hasName(raw) {
				continue
			}
			products = append(products, Normalize(raw))
		}
		if len(products) > 0 {
			return products
		}
	}
	return normalizeAll(s.catalog.All())
}

func hasTypicalMarker(raw domain.RawProduct) bool {
	for _, tag := range probeStrings(raw, categoriesProbe) {
		tagLower := strings.ToLower(tag)
		for _, marker := range typicalMarkers {
			if strings.Contains(tagLower, marker) {
				return true
			}
		}
	}
	return false
}
