package main

import (
	"fmt"
	"log"
	"os"

	"github.com/applimenta/backend/config"
	httpDelivery "github.com/applimenta/backend/internal/delivery/http"
	"github.com/applimenta/backend/internal/infrastructure/cache"
	"github.com/applimenta/backend/internal/infrastructure/catalog"
	"github.com/applimenta/backend/internal/infrastructure/openfoodfacts"
	"github.com/applimenta/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Applimenta Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	localCatalog := catalog.New()
	log.Printf("Local catalog: %d products", len(localCatalog.All()))

	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	offClient := openfoodfacts.NewClient(
		cfg.OpenFoodFacts.PrimaryBaseURL,
		cfg.OpenFoodFacts.FallbackBaseURL,
		cfg.OpenFoodFacts.Timeout,
		cfg.OpenFoodFacts.PageSize,
	)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		offClient.SetDebug(true)
		log.Printf("Open Food Facts client debug mode enabled")
	}
	log.Printf("Open Food Facts: primary=%s fallback=%s timeout=%s",
		cfg.OpenFoodFacts.PrimaryBaseURL,
		cfg.OpenFoodFacts.FallbackBaseURL,
		cfg.OpenFoodFacts.Timeout)

	// Initialize usecase layer
	searchService := usecase.NewSearchService(
		localCatalog,
		offClient,
		memoryCache,
		usecase.SearchServiceConfig{
			CacheTTL: cfg.Cache.TTL,
		},
	)
	planGenerator := usecase.NewMealPlanGenerator()
	overviewService := usecase.NewOverviewService(localCatalog, offClient, planGenerator)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(searchService, planGenerator, overviewService, localCatalog)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
