package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server        ServerConfig
	OpenFoodFacts OpenFoodFactsConfig `mapstructure:"openfoodfacts"`
	Cache         CacheConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// OpenFoodFactsConfig holds the remote product database configuration
type OpenFoodFactsConfig struct {
	PrimaryBaseURL  string        `mapstructure:"primary_base_url"`
	FallbackBaseURL string        `mapstructure:"fallback_base_url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	PageSize        int           `mapstructure:"page_size"`
}

// CacheConfig holds cache-related configuration
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/applimenta/")

	// Environment variable settings
	v.SetEnvPrefix("APPLIMENTA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	// Open Food Facts defaults: Spanish endpoint first, world as fallback
	v.SetDefault("openfoodfacts.primary_base_url", "https://es.openfoodfacts.org")
	v.SetDefault("openfoodfacts.fallback_base_url", "https://world.openfoodfacts.org")
	v.SetDefault("openfoodfacts.timeout", "5s")
	v.SetDefault("openfoodfacts.page_size", 20)

	// Cache defaults
	v.SetDefault("cache.ttl", "24h")
}

// validate validates the configuration
func validate(config *Config) error {
	if config.OpenFoodFacts.PrimaryBaseURL == "" || config.OpenFoodFacts.FallbackBaseURL == "" {
		return fmt.Errorf("both Open Food Facts base URLs are required")
	}

	if config.OpenFoodFacts.Timeout <= 0 {
		return fmt.Errorf("openfoodfacts timeout must be positive, got: %s", config.OpenFoodFacts.Timeout)
	}

	if config.OpenFoodFacts.PageSize < 1 || config.OpenFoodFacts.PageSize > 50 {
		return fmt.Errorf("openfoodfacts page size must be between 1 and 50, got: %d", config.OpenFoodFacts.PageSize)
	}

	return nil
}
