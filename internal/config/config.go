package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	JournalDriverSQLite   = "sqlite"
	JournalDriverPostgres = "postgres"
)

type Config struct {
	App      AppConfig
	Accounts AccountsConfig
	Journal  JournalConfig
	Status   StatusConfig
}

type AppConfig struct {
	Environment      string
	LogFile          string
	EchoLogToConsole bool
	SeedDemoAccounts bool
	// InvestmentSeed seeds the investment return source; 0 seeds from the clock
	InvestmentSeed int64
}

type AccountsConfig struct {
	OverdraftLimit      float64
	MaintenanceFee      float64
	MinInvestmentReturn float64
	MaxInvestmentReturn float64
}

type JournalConfig struct {
	Enabled             bool
	Driver              string
	Path                string
	Host                string
	Port                string
	User                string
	Password            string
	Name                string
	SSLMode             string
	MaxConnections      int
	MaxIdleConns        int
	ConnMaxLifetime     time.Duration
	// BreakerMaxFailures consecutive write failures stop journaling for BreakerResetTimeout
	BreakerMaxFailures  int
	BreakerResetTimeout time.Duration
}

type StatusConfig struct {
	// Addr is the listen address of the status server; empty disables it
	Addr               string
	RateLimitPerSecond int
	ShutdownTimeout    time.Duration
}

func Load() *Config {
	return &Config{
		App: AppConfig{
			Environment:      getEnv("APP_ENV", "development"),
			LogFile:          getEnv("LOG_FILE", "bank_transactions.log"),
			EchoLogToConsole: getBoolEnv("LOG_ECHO_CONSOLE", true),
			SeedDemoAccounts: getBoolEnv("SEED_DEMO_ACCOUNTS", true),
			InvestmentSeed:   getInt64Env("INVESTMENT_SEED", 0),
		},
		Accounts: AccountsConfig{
			OverdraftLimit:      getFloatEnv("CHECKING_OVERDRAFT_LIMIT", 100000),
			MaintenanceFee:      getFloatEnv("CHECKING_MAINTENANCE_FEE", 5000),
			MinInvestmentReturn: getFloatEnv("INVESTMENT_MIN_RETURN", -0.05),
			MaxInvestmentReturn: getFloatEnv("INVESTMENT_MAX_RETURN", 0.15),
		},
		Journal: JournalConfig{
			Enabled:             getBoolEnv("JOURNAL_ENABLED", true),
			Driver:              getEnv("JOURNAL_DRIVER", JournalDriverSQLite),
			Path:                getEnv("JOURNAL_PATH", ":memory:"),
			Host:                getEnv("DB_HOST", "localhost"),
			Port:                getEnv("DB_PORT", "5432"),
			User:                getEnv("DB_USER", "bank_user"),
			Password:            getEnv("DB_PASSWORD", "bank_password"),
			Name:                getEnv("DB_NAME", "bank_journal"),
			SSLMode:             getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:      getIntEnv("DB_MAX_CONNECTIONS", 5),
			MaxIdleConns:        getIntEnv("DB_MAX_IDLE_CONNS", 1),
			ConnMaxLifetime:     getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			BreakerMaxFailures:  getIntEnv("JOURNAL_BREAKER_MAX_FAILURES", 5),
			BreakerResetTimeout: getDurationEnv("JOURNAL_BREAKER_RESET_TIMEOUT", 30*time.Second),
		},
		Status: StatusConfig{
			Addr:               getEnv("STATUS_ADDR", ""),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 5),
			ShutdownTimeout:    getDurationEnv("STATUS_SHUTDOWN_TIMEOUT", 5*time.Second),
		},
	}
}

// IsSQLite reports whether the journal uses the SQLite driver
func (c *JournalConfig) IsSQLite() bool {
	return c.Driver == JournalDriverSQLite || c.Driver == ""
}

// DSN returns the connection string for the configured driver
func (c *JournalConfig) DSN() string {
	if c.Driver == JournalDriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	return c.Path
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

// StatusEnabled reports whether the status HTTP server should run
func (c *Config) StatusEnabled() bool {
	return c.Status.Addr != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
