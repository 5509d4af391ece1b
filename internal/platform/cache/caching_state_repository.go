// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"monopoly_backend/internal/feature/game/domain/entity"
	"monopoly_backend/internal/feature/game/usecase"
	"monopoly_backend/internal/platform/statemirror"
)

// CachingStateRepository decorates a StateRepository with a Redis read cache.
// The inner repository stays the source of truth.
type CachingStateRepository struct {
	inner     usecase.StateRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingStateRepository implements StateRepository.
var _ usecase.StateRepository = (*CachingStateRepository)(nil)

// NewCachingStateRepository decorates a StateRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "monopoly".
func NewCachingStateRepository(rdb *redis.Client, ttl time.Duration, inner usecase.StateRepository, namespace string) *CachingStateRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "monopoly"
	}
	return &CachingStateRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// Save writes to the inner repository and then refreshes the cached copy.
func (c *CachingStateRepository) Save(ctx context.Context, s *entity.State) error {
	if err := c.inner.Save(ctx, s); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}

	key := c.cacheKey()
	b, err := statemirror.EncodeState(s)
	if err != nil {
		_ = c.rdb.Del(ctx, key).Err()
		return nil
	}
	// Best effort: a stale entry is dropped so the next Load goes to the database.
	if err := c.rdb.Set(ctx, key, b, c.ttl).Err(); err != nil {
		_ = c.rdb.Del(ctx, key).Err()
	}
	return nil
}

// Load checks the cache first then falls back to the inner repository.
func (c *CachingStateRepository) Load(ctx context.Context) (*entity.State, error) {
	if c.rdb == nil {
		return c.inner.Load(ctx)
	}

	key := c.cacheKey()

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		if s, err := statemirror.DecodeState(b); err == nil {
			return s, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	s, err := c.inner.Load(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := statemirror.EncodeState(s); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}
	return s, nil
}

// cacheKey is the single key holding the cached state.
func (c *CachingStateRepository) cacheKey() string {
	return fmt.Sprintf("%s:cache:state", safe(c.namespace))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
