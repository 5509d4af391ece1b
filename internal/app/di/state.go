// Package di provides dependency injection factories for creating application components.
package di

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	gameadapters "monopoly_backend/internal/feature/game/adapters"
	"monopoly_backend/internal/feature/game/usecase"
	"monopoly_backend/internal/platform/config"
	"monopoly_backend/internal/platform/cache"
	platformdb "monopoly_backend/internal/platform/db"
	platformredis "monopoly_backend/internal/platform/redis"
	"monopoly_backend/internal/platform/statemirror"
)

// NewStateRepository creates a StateRepository implementation.
// With both stores it returns the SQL repository behind a Redis cache.
// With only one it returns that store, and no mirror at all when neither is
// configured.
func NewStateRepository(rdb *redis.Client, db *gorm.DB, redisPrefix string, cacheTTL time.Duration) usecase.StateRepository {
	switch {
	case rdb != nil && db != nil:
		return cache.NewCachingStateRepository(rdb, cacheTTL, gameadapters.NewStateGorm(db), redisPrefix)
	case rdb != nil:
		return statemirror.NewStateRedis(rdb, redisPrefix)
	case db != nil:
		return gameadapters.NewStateGorm(db)
	default:
		return nil
	}
}

// Backends holds the connections opened for the configured state mirror.
type Backends struct {
	Redis *redis.Client
	DB    *gorm.DB
}

// Close releases every open connection.
func (b Backends) Close() {
	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			slog.Error("failed to close Redis client", "error", err)
		}
	}
	if b.DB != nil {
		if sqlDB, err := b.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("failed to close database", "error", err)
			}
		}
	}
}

// OpenBackends connects to the store named by cfg.StateBackend.
// An unreachable SQL database is an error. An unreachable Redis is not:
// the game then runs without it, with a warning.
func OpenBackends(ctx context.Context, cfg config.Config) (Backends, error) {
	switch cfg.StateBackend {
	case config.BackendSQLite, config.BackendPostgres:
		db, err := platformdb.OpenDB(platformdb.LoadConfig(cfg), gameadapters.Migrate)
		if err != nil {
			return Backends{}, err
		}
		b := Backends{DB: db}
		if cfg.StateCache {
			rdb, err := platformredis.NewRedisClient(ctx, cfg.Redis)
			if err != nil {
				slog.Warn("Redis unavailable. Running without state cache.", "error", err)
				return b, nil
			}
			b.Redis = rdb
		}
		return b, nil
	case config.BackendRedis:
		rdb, err := platformredis.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			slog.Warn("Redis unavailable. Running without state mirror.", "error", err)
			return Backends{}, nil
		}
		return Backends{Redis: rdb}, nil
	default:
		slog.Info("state mirror disabled", "backend", cfg.StateBackend)
		return Backends{}, nil
	}
}
