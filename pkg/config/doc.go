// Package config loads typed configuration structs from environment
// variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11: the
// default .env file (when present) is loaded exactly once per process, after
// which each call parses the environment into the provided struct based on
// its `env:"..."` field tags.
//
// Usage:
//
//	type BillingConfig struct {
//	    APIKey  string `env:"PADDLE_API_KEY,required"`
//	    PriceID string `env:"BILLING_PRICE_ID,required"`
//	}
//
//	var cfg BillingConfig
//	if err := config.Load(&cfg); err != nil {
//	    // handle error
//	}
//
// MustLoad panics on failure and is intended for configuration without which
// the application cannot start.
package config
