// Package db opens the GORM connection backing the relational state mirror.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"monopoly_backend/internal/platform/config"
)

const retryInterval = 3 * time.Second

// Config selects the dialect and its connection parameters.
type Config struct {
	Dialect        string // config.BackendSQLite or config.BackendPostgres
	SQLitePath     string
	Host           string
	Port           string
	User           string
	Password       string
	Name           string
	SSLMode        string
	ConnectTimeout time.Duration
}

// LoadConfig derives a Config from the process configuration.
func LoadConfig(cfg config.Config) Config {
	return Config{
		Dialect:        cfg.StateBackend,
		SQLitePath:     cfg.DB.SQLitePath,
		Host:           cfg.DB.Host,
		Port:           cfg.DB.Port,
		User:           cfg.DB.User,
		Password:       cfg.DB.Password,
		Name:           cfg.DB.Name,
		SSLMode:        cfg.DB.SSLMode,
		ConnectTimeout: cfg.DB.ConnectTimeout,
	}
}

// BuildDSN returns the data source name for the configured dialect.
// SQLite gets a busy timeout so concurrent saves wait instead of failing.
func BuildDSN(cfg Config) string {
	if cfg.Dialect == config.BackendPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000", cfg.SQLitePath)
}

// Opener opens a GORM connection for a DSN.
type Opener func(dsn string) (*gorm.DB, error)

// OpenerFor returns the Opener of the configured dialect.
func OpenerFor(cfg Config) Opener {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}
	if cfg.Dialect == config.BackendPostgres {
		return func(dsn string) (*gorm.DB, error) {
			return gorm.Open(postgres.Open(dsn), gcfg)
		}
	}
	return func(dsn string) (*gorm.DB, error) {
		return gorm.Open(sqlite.Open(dsn), gcfg)
	}
}

// ConnectWithRetry calls opener every few seconds until it succeeds or timeout elapses.
func ConnectWithRetry(dsn string, timeout time.Duration, opener Opener) (*gorm.DB, error) {
	deadline := time.Now().Add(timeout)
	for {
		db, err := opener(dsn)
		if err == nil {
			return db, nil
		}
		if time.Now().Add(retryInterval).After(deadline) {
			return nil, fmt.Errorf("db connect failed after %s: %w", timeout, err)
		}
		slog.Warn("db connect failed, retrying", "error", err, "retry_in", retryInterval)
		time.Sleep(retryInterval)
	}
}

// OpenDB connects with retry and runs migrate on the new connection.
func OpenDB(cfg Config, migrate func(*gorm.DB) error) (*gorm.DB, error) {
	db, err := ConnectWithRetry(BuildDSN(cfg), cfg.ConnectTimeout, OpenerFor(cfg))
	if err != nil {
		return nil, err
	}
	if cfg.Dialect != config.BackendPostgres {
		// SQLite allows a single writer.
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sqlite handle: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}
	if migrate != nil {
		if err := migrate(db); err != nil {
			return nil, err
		}
	}
	slog.Info("database connected", "dialect", cfg.Dialect)
	return db, nil
}
