package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/applimenta/backend/config"
	"github.com/applimenta/backend/internal/domain"
	"github.com/applimenta/backend/internal/infrastructure/cache"
	"github.com/applimenta/backend/internal/infrastructure/catalog"
	"github.com/applimenta/backend/internal/usecase"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// offlineRemote simulates an unreachable remote database so the handlers
// exercise the local catalog tiers deterministically.
type offlineRemote struct{}

func (offlineRemote) Search(ctx context.Context, query string, locale domain.Locale) ([]domain.RawProduct, error) {
	return nil, domain.ErrRemoteUnavailable
}

func (offlineRemote) LookupByCode(ctx context.Context, barcode string) (domain.RawProduct, error) {
	return nil, domain.ErrProductNotFound
}

func (offlineRemote) SearchCountry(ctx context.Context, country string) ([]domain.RawProduct, error) {
	return nil, domain.ErrRemoteUnavailable
}

func setupTestRouter() *gin.Engine {
	cfg := &config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			Environment:    "test",
			AllowedOrigins: []string{"*"},
		},
	}

	cat := catalog.New()
	search := usecase.NewSearchService(cat, offlineRemote{}, cache.NewMemoryCache(), usecase.SearchServiceConfig{})
	plans := usecase.NewMealPlanGenerator()
	overview := usecase.NewOverviewService(cat, offlineRemote{}, plans)

	handler := NewHandler(search, plans, overview, cat)
	return SetupRouter(cfg, handler)
}

func performRequest(router *gin.Engine, method, path string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "GET", "/health")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %q, want %q", body["status"], "healthy")
	}
	if body["service"] != "applimenta-backend" {
		t.Errorf("service field = %q, want %q", body["service"], "applimenta-backend")
	}
}

func TestSearchEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("finds local catalog product", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/v1/products/search?q=arepa")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var body struct {
			Query    string           `json:"query"`
			Count    int              `json:"count"`
			Products []domain.Product `json:"products"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Count == 0 {
			t.Fatal("count = 0, want at least one result")
		}
		found := false
		for _, p := range body.Products {
			if p.Name == "Arepa de Maíz Blanco Colombiana" {
				found = true
			}
		}
		if !found {
			t.Error("expected catalog arepa in results")
		}
	})

	t.Run("unknown query falls back to whole catalog", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/v1/products/search?q=zzzznomatch")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var body struct {
			Count int `json:"count"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Count == 0 {
			t.Error("count = 0, want whole-catalog fallback")
		}
	})
}

func TestBarcodeEndpoint(t *testing.T) {
	router := setupTestRouter()

	t.Run("invalid barcode returns 400", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/v1/products/barcode/abc123")

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})

	t.Run("unknown barcode returns 404", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/v1/products/barcode/12345678")

		if w.Code != http.StatusNotFound {
			t.Errorf("status = %d, want %d", w.Code, http.StatusNotFound)
		}
	})

	t.Run("catalog barcode returns product", func(t *testing.T) {
		w := performRequest(router, "GET", "/api/v1/products/barcode/999000000001")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var product domain.Product
		if err := json.Unmarshal(w.Body.Bytes(), &product); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if product.Code != "999000000001" {
			t.Errorf("code = %q, want %q", product.Code, "999000000001")
		}
		if product.Name == "" {
			t.Error("product name is empty")
		}
	})
}

func TestMealPlanEndpoints(t *testing.T) {
	router := setupTestRouter()

	t.Run("daily plan has expected slot sizes", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/v1/mealplans/daily")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var plan domain.MealPlan
		if err := json.Unmarshal(w.Body.Bytes(), &plan); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if len(plan.Breakfast.Items) != 2 {
			t.Errorf("breakfast items = %d, want 2", len(plan.Breakfast.Items))
		}
		if len(plan.Lunch.Items) != 3 {
			t.Errorf("lunch items = %d, want 3", len(plan.Lunch.Items))
		}
		if len(plan.Dinner.Items) != 2 {
			t.Errorf("dinner items = %d, want 2", len(plan.Dinner.Items))
		}
		if len(plan.Snacks.Items) != 0 {
			t.Errorf("snack items = %d, want 0", len(plan.Snacks.Items))
		}
		if plan.ID == "" {
			t.Error("plan ID is empty")
		}
	})

	t.Run("weekly plan has seven days", func(t *testing.T) {
		w := performRequest(router, "POST", "/api/v1/mealplans/weekly")

		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
		}

		var body struct {
			Days  int               `json:"days"`
			Plans []domain.MealPlan `json:"plans"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if body.Days != 7 {
			t.Errorf("days = %d, want 7", body.Days)
		}
		if len(body.Plans) != 7 {
			t.Errorf("plans = %d, want 7", len(body.Plans))
		}
	})
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name         string
		path         string
		wantCalories float64
	}{
		{"male high activity", "/api/v1/recommendations?age=30&sex=masculino&activity=alto", 3000},
		{"female low activity", "/api/v1/recommendations?age=25&sex=femenino&activity=bajo", 1800},
		{"missing params use baseline", "/api/v1/recommendations", 2000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(router, "GET", tt.path)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}

			var targets domain.RecommendationSet
			if err := json.Unmarshal(w.Body.Bytes(), &targets); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if targets.Calories != tt.wantCalories {
				t.Errorf("calories = %v, want %v", targets.Calories, tt.wantCalories)
			}
		})
	}
}

func TestColombianOverviewEndpoint(t *testing.T) {
	router := setupTestRouter()

	w := performRequest(router, "GET", "/api/v1/colombian/overview")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var overview domain.ColombianOverview
	if err := json.Unmarshal(w.Body.Bytes(), &overview); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if len(overview.Products) == 0 {
		t.Error("products is empty, want catalog fallback")
	}
	if len(overview.TypicalFoods) == 0 {
		t.Error("typical foods is empty")
	}
	if len(overview.WeeklyPlan) != 7 {
		t.Errorf("weekly plan days = %d, want 7", len(overview.WeeklyPlan))
	}
}
