package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/applimenta/backend/internal/domain"
	"github.com/applimenta/backend/internal/usecase"
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	search   *usecase.SearchService
	plans    *usecase.MealPlanGenerator
	overview *usecase.OverviewService
	catalog  domain.Catalog
}

// NewHandler creates a new HTTP handler
func NewHandler(
	search *usecase.SearchService,
	plans *usecase.MealPlanGenerator,
	overview *usecase.OverviewService,
	catalog domain.Catalog,
) *Handler {
	return &Handler{
		search:   search,
		plans:    plans,
		overview: overview,
		catalog:  catalog,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "applimenta-backend",
		"version": "1.0.0",
	})
}

// SearchProducts handles text product searches. The tiered search never
// fails, so this always answers 200 with a product list.
func (h *Handler) SearchProducts(c *gin.Context) {
	query := c.Query("q")
	products := h.search.Search(c.Request.Context(), query)

	c.JSON(http.StatusOK, gin.H{
		"query":    query,
		"count":    len(products),
		"products": products,
	})
}

// SearchByBarcode handles exact barcode lookups
func (h *Handler) SearchByBarcode(c *gin.Context) {
	code := c.Param("code")

	product, err := h.search.SearchByCode(c.Request.Context(), code)
	switch {
	case errors.Is(err, domain.ErrInvalidBarcode):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "barcode must be a numeric string of 8 to 14 digits",
		})
	case errors.Is(err, domain.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no product found for barcode",
		})
	case err != nil:
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no product found for barcode",
		})
	default:
		c.JSON(http.StatusOK, product)
	}
}

// GenerateDailyPlan generates one daily meal plan from the catalog pool
func (h *Handler) GenerateDailyPlan(c *gin.Context) {
	plan := h.plans.GenerateDailyPlan(h.catalog.All())
	c.JSON(http.StatusOK, plan)
}

// GenerateWeeklyPlan generates seven independent daily plans
func (h *Handler) GenerateWeeklyPlan(c *gin.Context) {
	plans := h.plans.GenerateWeeklyPlan(h.catalog.All())
	c.JSON(http.StatusOK, gin.H{
		"days":  len(plans),
		"plans": plans,
	})
}

// GetRecommendations computes daily intake targets from demographic query
// parameters. Bounds validation of the inputs is a caller concern; the
// calculator is total over its input domain.
func (h *Handler) GetRecommendations(c *gin.Context) {
	age, _ := strconv.Atoi(c.Query("age"))
	sex := c.Query("sex")
	activity := c.Query("activity")

	targets := usecase.DailyTargets(age, sex, activity)
	c.JSON(http.StatusOK, targets)
}

// GetColombianOverview returns the aggregated home-screen payload
func (h *Handler) GetColombianOverview(c *gin.Context) {
	overview := h.overview.ColombianOverview(c.Request.Context())
	c.JSON(http.StatusOK, overview)
}
