package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Banking provider credentials.
	PlaidClientID string
	PlaidSecret   string
	PlaidEnv      string

	// Auth provider shared JWT signing secret (HS256 access tokens).
	SupabaseJWTSecret string

	// Test mode bypasses auth and rate limiting and injects a fixed identity.
	TestMode   bool
	TestUserID string

	// CORS allowlist.
	FrontendURL string
}

// devOrigins are the local dev-server origins allowed outside production.
var devOrigins = []string{
	"http://localhost:5173",
	"http://localhost:5174",
	"http://localhost:5175",
	"http://localhost:5176",
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("PLAID_CLIENT_ID", "")
	viper.SetDefault("PLAID_SECRET", "")
	viper.SetDefault("PLAID_ENV", "sandbox")
	viper.SetDefault("SUPABASE_JWT_SECRET", "")
	viper.SetDefault("TEST_MODE", false)
	viper.SetDefault("TEST_USER_ID", "test-user")
	viper.SetDefault("FRONTEND_URL", "http://localhost:5173")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:       viper.GetString("PGSQL_URL"),
		Port:              viper.GetString("PORT"),
		IsProduction:      viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:     viper.GetBool("ENABLE_DB_CHECK"),
		PlaidClientID:     viper.GetString("PLAID_CLIENT_ID"),
		PlaidSecret:       viper.GetString("PLAID_SECRET"),
		PlaidEnv:          viper.GetString("PLAID_ENV"),
		SupabaseJWTSecret: viper.GetString("SUPABASE_JWT_SECRET"),
		TestMode:          viper.GetBool("TEST_MODE"),
		TestUserID:        viper.GetString("TEST_USER_ID"),
		FrontendURL:       viper.GetString("FRONTEND_URL"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.PlaidClientID == "" || cfg.PlaidSecret == "" {
		log.Println("Warning: PLAID_CLIENT_ID / PLAID_SECRET not set. Bank linking will not function.")
	}
	if cfg.SupabaseJWTSecret == "" && !cfg.TestMode {
		log.Println("Warning: SUPABASE_JWT_SECRET not set. Bearer tokens cannot be validated.")
	}
	if cfg.TestMode {
		log.Printf("Warning: TEST_MODE enabled. All requests run as %s and rate limits are disabled.\n", cfg.TestUserID)
	}

	return cfg, nil
}

// AllowedOrigins returns the CORS origin allowlist: the configured frontend
// origin in production, the local dev-server origins otherwise.
func (c *Config) AllowedOrigins() []string {
	if c.IsProduction {
		return []string{c.FrontendURL}
	}
	return devOrigins
}
