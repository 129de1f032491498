package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsPath = "db/migrations"

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

var (
	ErrMigrationsNotFound  = errors.New("migrations directory not found")
	ErrAutoMigrateDisabled = errors.New("auto-migration disabled (AUTO_MIGRATE != true)")
)

// MigrationRunner applies the SQL migrations of the journal schema
type MigrationRunner struct {
	db             *sql.DB
	migrationsPath string
	log            *slog.Logger
}

// NewMigrationRunner creates a new migration runner
func NewMigrationRunner(db *sql.DB, log *slog.Logger) *MigrationRunner {
	return &MigrationRunner{
		db:             db,
		migrationsPath: migrationsPath,
		log:            log,
	}
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	mr.log.Info("waiting for journal database")

	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		mr.log.Warn("journal database not ready",
			slog.Int("attempt", i+1),
			slog.Int("max_attempts", maxRetries),
			slog.Any("error", err),
		)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) newMigrate() (*migrate.Migrate, error) {
	absPath, err := filepath.Abs(mr.migrationsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to get absolute path for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(mr.db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(
		fmt.Sprintf("file://%s", absPath),
		"postgres",
		driver,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		mr.log.Warn("migrations directory not found, skipping migrations", slog.String("path", mr.migrationsPath))
		return nil
	}

	m, err := mr.newMigrate()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		mr.log.Warn("journal schema is dirty, forcing version", slog.Uint64("version", uint64(version)))
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		mr.log.Info("no new journal migrations to apply", slog.Uint64("version", uint64(version)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	mr.log.Info("applied journal migrations", slog.Uint64("version", uint64(newVersion)))

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	if _, err := os.Stat(mr.migrationsPath); os.IsNotExist(err) {
		return 0, false, ErrMigrationsNotFound
	}

	m, err := mr.newMigrate()
	if err != nil {
		return 0, false, err
	}

	return m.Version()
}

// RunMigrationsIfEnabled runs migrations if AUTO_MIGRATE is set to true
func RunMigrationsIfEnabled(db *sql.DB, log *slog.Logger) error {
	if os.Getenv("AUTO_MIGRATE") != "true" {
		return ErrAutoMigrateDisabled
	}

	runner := NewMigrationRunner(db, log)

	if err := runner.WaitForDatabase(); err != nil {
		return fmt.Errorf("database readiness check failed: %w", err)
	}

	if err := runner.RunMigrations(); err != nil {
		return fmt.Errorf("migration execution failed: %w", err)
	}

	version, dirty, err := runner.GetMigrationStatus()
	if err != nil {
		log.Warn("failed to get migration status", slog.Any("error", err))
	} else {
		log.Info("journal migration status", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
	}

	return nil
}
