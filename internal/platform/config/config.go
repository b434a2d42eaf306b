package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL      string
	Port             string
	IsProduction     bool
	EnableDBCheck    bool
	StorageDriver    string
	RunMigrations    bool
	SeedChartOnStart bool
	LogLevel         string

	RedisURL      string
	ChartCacheTTL time.Duration

	JWTSecret          string
	RateLimit          string
	CORSAllowedOrigins []string

	// Posting rules
	EquityDebitPolicy string
	EquityAccounts    []string

	// Year-end closing
	ClosingRevenueAccounts  []string
	ClosingExpenseAccounts  []string
	RetainedEarningsAccount string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", true)
	viper.SetDefault("STORAGE_DRIVER", StoragePostgres)
	viper.SetDefault("RUN_MIGRATIONS", true)
	viper.SetDefault("SEED_CHART_ON_START", false)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CHART_CACHE_TTL", "10m")
	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("POSTING_RULE_EQUITY_DEBIT_POLICY", "advisory")
	viper.SetDefault("POSTING_RULE_EQUITY_ACCOUNTS", "411")
	viper.SetDefault("CLOSING_REVENUE_ACCOUNTS", "511,512,515")
	viper.SetDefault("CLOSING_EXPENSE_ACCOUNTS", "632,635,641,642,811,821")
	viper.SetDefault("CLOSING_RETAINED_EARNINGS_ACCOUNT", "421")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:        viper.GetString("PGSQL_URL"),
		Port:               viper.GetString("PORT"),
		IsProduction:       viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:      viper.GetBool("ENABLE_DB_CHECK"),
		StorageDriver:      strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		RunMigrations:      viper.GetBool("RUN_MIGRATIONS"),
		SeedChartOnStart:   viper.GetBool("SEED_CHART_ON_START"),
		LogLevel:           viper.GetString("LOG_LEVEL"),
		RedisURL:           viper.GetString("REDIS_URL"),
		JWTSecret:          viper.GetString("JWT_SECRET"),
		RateLimit:          viper.GetString("RATE_LIMIT"),
		CORSAllowedOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		EquityDebitPolicy:  viper.GetString("POSTING_RULE_EQUITY_DEBIT_POLICY"),
		EquityAccounts:     splitList(viper.GetString("POSTING_RULE_EQUITY_ACCOUNTS")),

		ClosingRevenueAccounts:  splitList(viper.GetString("CLOSING_REVENUE_ACCOUNTS")),
		ClosingExpenseAccounts:  splitList(viper.GetString("CLOSING_EXPENSE_ACCOUNTS")),
		RetainedEarningsAccount: strings.TrimSpace(viper.GetString("CLOSING_RETAINED_EARNINGS_ACCOUNT")),
	}

	ttlStr := viper.GetString("CHART_CACHE_TTL")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil {
		ttl = 10 * time.Minute
		log.Printf("Warning: Invalid value for CHART_CACHE_TTL ('%s'). Defaulting to %s.\n", ttlStr, ttl)
	}
	cfg.ChartCacheTTL = ttl

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StoragePostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %q", StoragePostgres)
		}
	case StorageMemory:
		if cfg.IsProduction {
			log.Println("Warning: in-memory storage in production loses every posting on restart.")
		}
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. /api/v1 is served without authentication.")
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
