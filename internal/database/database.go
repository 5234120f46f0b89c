package database

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/recipfy/recipe-service/config"
)

// DB represents the database connection
type DB struct {
	*gorm.DB
}

// New opens the configured store and verifies it is reachable
func New(cfg *config.Config, log zerolog.Logger) (*DB, error) {
	var dialector gorm.Dialector
	switch cfg.DB.Driver {
	case "sqlite":
		dialector = sqlite.Open(cfg.DB.DSN)
	case "postgres":
		dialector = postgres.Open(cfg.DB.PostgresDSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DB.Driver)
	}

	log.Info().
		Str("driver", cfg.DB.Driver).
		Str("host", cfg.DB.Host).
		Str("port", cfg.DB.Port).
		Str("user", cfg.DB.User).
		Msg("connecting to database")

	level := gormlogger.Warn
	if cfg.Env.IsDevelopment() {
		level = gormlogger.Info
	}

	db, err := Open(dialector, NewGormLogger(log).LogMode(level))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting connection pool: %w", err)
	}
	if cfg.DB.Driver == "postgres" {
		sqlDB.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.DB.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(cfg.DB.ConnMaxLifetime)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.HealthCheck(ctx); err != nil {
		return nil, fmt.Errorf("error connecting to the database: %w", err)
	}

	log.Info().Msg("successfully connected to database")
	return db, nil
}

// Open wraps a gorm connection for the given dialector. SQLite handles are
// limited to one connection so in-memory databases are shared by every query.
func Open(dialector gorm.Dialector, logger gormlogger.Interface) (*DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	if db.Dialector.Name() == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("error getting connection pool: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &DB{db}, nil
}

// HealthCheck checks if the database is accessible
func (db *DB) HealthCheck(ctx context.Context) error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the underlying connection pool
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
