package database

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bank-accounts/internal/config"
	"bank-accounts/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrUnsupportedDriver = errors.New("unsupported journal driver")

type DB struct {
	*gorm.DB
	config *config.JournalConfig
}

func dialector(cfg *config.JournalConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.JournalDriverSQLite, "":
		return sqlite.Open(cfg.DSN()), nil
	case config.JournalDriverPostgres:
		return postgres.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

func New(cfg *config.JournalConfig) (*DB, error) {
	dial, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dial, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to journal database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if cfg.IsSQLite() {
		// every connection to ":memory:" is a separate database
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
	} else {
		sqlDB.SetMaxOpenConns(cfg.MaxConnections)
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping journal database: %w", err)
	}

	return &DB{
		DB:     db,
		config: cfg,
	}, nil
}

func (db *DB) AutoMigrate() error {
	return db.DB.AutoMigrate(
		&models.JournalEntry{},
	)
}

func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (db *DB) HealthCheck() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// Initialize opens the journal database and brings its schema up to date.
// Postgres uses the SQL migrations when AUTO_MIGRATE is enabled and falls
// back to GORM AutoMigrate; SQLite always uses AutoMigrate.
func Initialize(cfg *config.JournalConfig, log *slog.Logger) (*DB, error) {
	db, err := New(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.IsSQLite() {
		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate journal database: %w", err)
		}
		log.Debug("journal database initialized", slog.String("driver", cfg.Driver))
		return db, nil
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if err := RunMigrationsIfEnabled(sqlDB, log); err != nil {
		if !errors.Is(err, ErrAutoMigrateDisabled) {
			log.Warn("migration runner failed, falling back to GORM AutoMigrate", slog.Any("error", err))
		}

		if err := db.AutoMigrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to migrate journal database: %w", err)
		}
	}

	log.Debug("journal database initialized", slog.String("driver", cfg.Driver))

	return db, nil
}
