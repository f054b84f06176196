package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/allanbrunobr/nasc-gap-analysis/internal/types"
)

// VacancyGetter is the fetch interface the cache decorates.
type VacancyGetter interface {
	GetVacancy(ctx context.Context, id uuid.UUID) (*types.Vacancy, error)
}

// CachedVacancyStore is a Redis read-through cache in front of the vacancy
// store. Vacancy text is immutable for the posting's lifetime, so cached
// entries only need a TTL, not invalidation. Cache failures fall through to
// the inner store.
type CachedVacancyStore struct {
	inner  VacancyGetter
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedVacancyStore wraps inner with a Redis cache.
func NewCachedVacancyStore(inner VacancyGetter, client *redis.Client, ttl time.Duration, logger *zap.Logger) *CachedVacancyStore {
	if ttl == 0 {
		ttl = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedVacancyStore{
		inner:  inner,
		client: client,
		prefix: "vacancy:",
		ttl:    ttl,
		logger: logger,
	}
}

// GetVacancy returns the cached vacancy when present, otherwise fetches from
// the inner store and populates the cache.
func (c *CachedVacancyStore) GetVacancy(ctx context.Context, id uuid.UUID) (*types.Vacancy, error) {
	key := c.prefix + id.String()

	cached, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var vacancy types.Vacancy
		if err := json.Unmarshal(cached, &vacancy); err == nil {
			return &vacancy, nil
		}
		c.logger.Warn("dropping undecodable cached vacancy", zap.String("key", key))
	} else if !errors.Is(err, redis.Nil) {
		c.logger.Warn("vacancy cache read failed", zap.String("key", key), zap.Error(err))
	}

	vacancy, err := c.inner.GetVacancy(ctx, id)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(vacancy); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn("vacancy cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return vacancy, nil
}
