package config

import (
	"fmt"
	"os"
)

// Config is everything the service reads from its environment,
// resolved once at startup.
type Config struct {
	Port            string
	EndpointPrefix  string
	StripeSecretKey string
	LogLevel        string
}

// Load reads the environment and fails fast when the Stripe secret is
// absent; the service must never start without a way to authenticate
// downstream.
func Load() (Config, error) {
	cfg := Config{
		Port:            getEnv("APP_PORT", "8080"),
		EndpointPrefix:  getEnv("ENDPOINT_PREFIX", ""),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
	}

	if cfg.StripeSecretKey == "" {
		return Config{}, fmt.Errorf("STRIPE_SECRET_KEY is not set")
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
