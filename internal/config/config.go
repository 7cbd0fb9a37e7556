package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port        string
	CORSOrigins []string
	Env         string

	// Aggregation provider
	Plaid PlaidConfig

	// Deep link the OAuth callback redirects to after a successful link
	MobileRedirectURI string
}

// PlaidConfig holds the aggregation provider credentials
type PlaidConfig struct {
	ClientID    string
	Secret      string
	Environment string
	ClientName  string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8000"),
		CORSOrigins:       strings.Split(getEnv("CORS_ORIGINS", "http://localhost:8081"), ","),
		Env:               getEnv("ENV", "development"),
		MobileRedirectURI: getEnv("MOBILE_REDIRECT_URI", "com.devikapo.mobile://success"),
		Plaid: PlaidConfig{
			ClientID:    getEnv("PLAID_CLIENT_ID", ""),
			Secret:      getEnv("PLAID_SECRET", ""),
			Environment: getEnv("PLAID_ENV", "sandbox"),
			ClientName:  getEnv("PLAID_CLIENT_NAME", "Budget App"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if c.Plaid.ClientID == "" {
		return fmt.Errorf("PLAID_CLIENT_ID is required")
	}
	if c.Plaid.Secret == "" {
		return fmt.Errorf("PLAID_SECRET is required")
	}
	switch c.Plaid.Environment {
	case "sandbox", "development", "production":
	default:
		return fmt.Errorf("PLAID_ENV must be one of sandbox, development, production")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
