package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_FILE", "LOG_ECHO_CONSOLE", "SEED_DEMO_ACCOUNTS", "INVESTMENT_SEED",
		"CHECKING_OVERDRAFT_LIMIT", "CHECKING_MAINTENANCE_FEE", "INVESTMENT_MIN_RETURN", "INVESTMENT_MAX_RETURN",
		"JOURNAL_ENABLED", "JOURNAL_DRIVER", "JOURNAL_PATH", "STATUS_ADDR", "RATE_LIMIT_PER_SECOND",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "bank_transactions.log", cfg.App.LogFile)
	assert.True(t, cfg.App.EchoLogToConsole)
	assert.True(t, cfg.App.SeedDemoAccounts)
	assert.Equal(t, int64(0), cfg.App.InvestmentSeed)

	assert.Equal(t, 100000.0, cfg.Accounts.OverdraftLimit)
	assert.Equal(t, 5000.0, cfg.Accounts.MaintenanceFee)
	assert.Equal(t, -0.05, cfg.Accounts.MinInvestmentReturn)
	assert.Equal(t, 0.15, cfg.Accounts.MaxInvestmentReturn)

	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, JournalDriverSQLite, cfg.Journal.Driver)
	assert.Equal(t, ":memory:", cfg.Journal.DSN())

	assert.False(t, cfg.StatusEnabled())
	assert.Equal(t, 5, cfg.Status.RateLimitPerSecond)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_FILE", "/tmp/bank.log")
	t.Setenv("SEED_DEMO_ACCOUNTS", "false")
	t.Setenv("INVESTMENT_SEED", "42")
	t.Setenv("CHECKING_OVERDRAFT_LIMIT", "200000")
	t.Setenv("CHECKING_MAINTENANCE_FEE", "2500.5")
	t.Setenv("STATUS_ADDR", ":9090")
	t.Setenv("STATUS_SHUTDOWN_TIMEOUT", "2s")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/bank.log", cfg.App.LogFile)
	assert.False(t, cfg.App.SeedDemoAccounts)
	assert.Equal(t, int64(42), cfg.App.InvestmentSeed)
	assert.Equal(t, 200000.0, cfg.Accounts.OverdraftLimit)
	assert.Equal(t, 2500.5, cfg.Accounts.MaintenanceFee)
	assert.True(t, cfg.StatusEnabled())
	assert.Equal(t, 2*time.Second, cfg.Status.ShutdownTimeout)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("CHECKING_OVERDRAFT_LIMIT", "lots")
	t.Setenv("JOURNAL_ENABLED", "maybe")
	t.Setenv("RATE_LIMIT_PER_SECOND", "fast")
	t.Setenv("DB_CONN_MAX_LIFETIME", "forever")
	t.Setenv("INVESTMENT_SEED", "abc")

	cfg := Load()

	assert.Equal(t, 100000.0, cfg.Accounts.OverdraftLimit)
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, 5, cfg.Status.RateLimitPerSecond)
	assert.Equal(t, time.Hour, cfg.Journal.ConnMaxLifetime)
	assert.Equal(t, 5, cfg.Journal.BreakerMaxFailures)
	assert.Equal(t, 30*time.Second, cfg.Journal.BreakerResetTimeout)
	assert.Equal(t, int64(0), cfg.App.InvestmentSeed)
}

func TestJournalConfig_DSN(t *testing.T) {
	cfg := JournalConfig{
		Driver:   JournalDriverPostgres,
		Host:     "db",
		Port:     "5433",
		User:     "u",
		Password: "p",
		Name:     "journal",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=u password=p dbname=journal sslmode=require", cfg.DSN())

	cfg.Driver = JournalDriverSQLite
	cfg.Path = "journal.db"
	assert.Equal(t, "journal.db", cfg.DSN())
}
