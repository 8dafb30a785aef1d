package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL       string
	Port              string
	IsProduction      bool
	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	// MinWithdrawalAmount is the smallest withdrawal the platform accepts,
	// in currency units.
	MinWithdrawalAmount decimal.Decimal

	// AssetCatalogPath optionally points at a YAML file overriding the
	// built-in purchase catalog.
	AssetCatalogPath string

	// RateLimit uses the limiter format "<count>-<period>", e.g. "100-M".
	RateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_EXPIRY_DURATION", "168h")
	viper.SetDefault("JWT_ISSUER", "driveyield-backend")
	viper.SetDefault("MIN_WITHDRAWAL_AMOUNT", "220")
	viper.SetDefault("ASSET_CATALOG_PATH", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}

	jwtExpiryStr := viper.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil {
		jwtExpiryDuration = time.Hour * 24 * 7
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration.String())
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	minWithdrawalStr := viper.GetString("MIN_WITHDRAWAL_AMOUNT")
	minWithdrawal, err := decimal.NewFromString(minWithdrawalStr)
	if err != nil || minWithdrawal.IsNegative() {
		minWithdrawal = decimal.NewFromInt(220)
		log.Printf("Warning: Invalid value for MIN_WITHDRAWAL_AMOUNT ('%s'). Defaulting to %s.\n", minWithdrawalStr, minWithdrawal.String())
	}
	cfg.MinWithdrawalAmount = minWithdrawal

	cfg.AssetCatalogPath = viper.GetString("ASSET_CATALOG_PATH")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	return cfg, nil
}
