package config

import (
	"fmt"

	"github.com/danielsvicente/my-finance-api/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// BaseCurrency is the currency all balances are normalized into for the
	// net-worth total. Balances already in it skip conversion.
	BaseCurrency domain.Currency
	// RatePair is the market-data symbol for the base/foreign rate.
	RatePair string
	// RateSourceURL overrides the market-data endpoint; empty means the
	// public Yahoo Finance API.
	RateSourceURL string

	// RateLimit is the request budget per client IP, in limiter notation
	// (e.g. "100-M" for 100 per minute).
	RateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("BASE_CURRENCY", "EUR")
	viper.SetDefault("RATE_PAIR", "EURBRL")
	viper.SetDefault("RATE_SOURCE_URL", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"*"})

	viper.AutomaticEnv()

	baseCurrency, err := domain.ParseCurrency(viper.GetString("BASE_CURRENCY"))
	if err != nil {
		return nil, fmt.Errorf("invalid BASE_CURRENCY: %w", err)
	}

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		BaseCurrency:       baseCurrency,
		RatePair:           viper.GetString("RATE_PAIR"),
		RateSourceURL:      viper.GetString("RATE_SOURCE_URL"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL environment variable not set")
	}

	return cfg, nil
}
