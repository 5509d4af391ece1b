// Package config loads process configuration from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// State mirror backends.
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config is the whole process configuration.
type Config struct {
	HTTPAddr        string        `env:"HTTP_ADDR" envDefault:"127.0.0.1:0"`
	// PortFile keeps the file name the desktop shell already polls.
	PortFile        string        `env:"PORT_FILE" envDefault:".flask_port"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`
	CORSOrigins     []string      `env:"CORS_ALLOW_ORIGINS" envSeparator:","`

	PropertiesFile string `env:"CATALOG_PROPERTIES_FILE"`
	CommercialFile string `env:"CATALOG_COMMERCIAL_FILE"`

	StateBackend           string `env:"STATE_BACKEND" envDefault:"sqlite"`
	DefaultStartingBalance int    `env:"DEFAULT_STARTING_BALANCE" envDefault:"1500"`

	// StateCache puts Redis in front of a SQL state backend.
	StateCache    bool          `env:"STATE_CACHE" envDefault:"false"`
	StateCacheTTL time.Duration `env:"STATE_CACHE_TTL" envDefault:"5m"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	DB    DBConfig
	Redis RedisConfig
}

// DBConfig holds relational mirror settings.
type DBConfig struct {
	SQLitePath     string        `env:"SQLITE_PATH" envDefault:"monopoly.db"`
	Host           string        `env:"DB_HOST" envDefault:"localhost"`
	Port           string        `env:"DB_PORT" envDefault:"5432"`
	User           string        `env:"DB_USER"`
	Password       string        `env:"DB_PASSWORD"`
	Name           string        `env:"DB_NAME" envDefault:"monopoly"`
	SSLMode        string        `env:"DB_SSLMODE" envDefault:"disable"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" envDefault:"30s"`
}

// RedisConfig holds Redis mirror settings.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	Prefix   string `env:"REDIS_PREFIX" envDefault:"monopoly"`
}

// Addr returns host:port.
func (c RedisConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// LoadDotEnv loads variables from the given files into the environment
// without overriding values that are already set. Missing files are skipped.
func LoadDotEnv(files ...string) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			slog.Warn("failed to load env file", "file", f, "error", err)
		}
	}
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.StateBackend = strings.ToLower(strings.TrimSpace(cfg.StateBackend))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the struct tags cannot express.
func (c Config) Validate() error {
	switch c.StateBackend {
	case BackendMemory, BackendSQLite, BackendPostgres, BackendRedis:
	default:
		return fmt.Errorf("unknown STATE_BACKEND %q", c.StateBackend)
	}
	if c.DefaultStartingBalance < 0 {
		return fmt.Errorf("DEFAULT_STARTING_BALANCE must be non-negative, got %d", c.DefaultStartingBalance)
	}
	if c.StateCache && c.StateBackend != BackendSQLite && c.StateBackend != BackendPostgres {
		return fmt.Errorf("STATE_CACHE requires a sqlite or postgres STATE_BACKEND, got %q", c.StateBackend)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog.Level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds the process logger from LogFormat and LogLevel.
func (c Config) NewLogger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.SlogLevel()}
	if strings.EqualFold(c.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
