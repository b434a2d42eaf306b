package config_test

import (
	"testing"
	"time"

	"github.com/SscSPs/tt99_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_MemoryDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("PGSQL_URL", "")
	t.Setenv("CHART_CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("POSTING_RULE_EQUITY_DEBIT_POLICY", "blocking")
	t.Setenv("POSTING_RULE_EQUITY_ACCOUNTS", "411,412")
	t.Setenv("CLOSING_EXPENSE_ACCOUNTS", "632, 642")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.StorageMemory, cfg.StorageDriver)
	assert.Equal(t, 30*time.Second, cfg.ChartCacheTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "blocking", cfg.EquityDebitPolicy)
	assert.Equal(t, []string{"411", "412"}, cfg.EquityAccounts)
	assert.Equal(t, []string{"632", "642"}, cfg.ClosingExpenseAccounts)
	assert.Equal(t, []string{"511", "512", "515"}, cfg.ClosingRevenueAccounts)
	assert.Equal(t, "421", cfg.RetainedEarningsAccount)
}

func TestLoadConfig_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_UnknownDriver(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_BadTTLFallsBack(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("CHART_CACHE_TTL", "soon")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, cfg.ChartCacheTTL)
}
