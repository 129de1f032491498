package database

import (
	"testing"

	"bank-accounts/internal/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), gormConfig)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB: db,
		config: &config.JournalConfig{
			Driver:         config.JournalDriverSQLite,
			Path:           ":memory:",
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return testDB
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	if err := db.Exec("DELETE FROM journal_entries").Error; err != nil {
		t.Logf("failed to cleanup table journal_entries: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Logf("failed to close test database: %v", err)
	}
}
