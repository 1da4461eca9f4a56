package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"dining-planner/internal/metrics"
	"dining-planner/internal/model"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const catalogKeyPrefix = "catalog:location:"

// cachedCatalog wraps a CatalogRepository with a Redis read-through cache of
// GetCatalog results. Any write drops every cached listing.
type cachedCatalog struct {
	CatalogRepository
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// NewCachedCatalog creates a catalog repository that caches listings in Redis.
// Cache failures are logged and fall through to repo.
func NewCachedCatalog(repo CatalogRepository, client *redis.Client, ttl time.Duration, logger zerolog.Logger) CatalogRepository {
	return &cachedCatalog{
		CatalogRepository: repo,
		client:            client,
		ttl:               ttl,
		logger:            logger.With().Str("repository", "catalog-cache").Logger(),
	}
}

func catalogKey(location string) string {
	return catalogKeyPrefix + strings.ToLower(strings.TrimSpace(location))
}

// GetCatalog serves listings from Redis when present.
func (c *cachedCatalog) GetCatalog(ctx context.Context, location string) ([]model.FoodItem, error) {
	key := catalogKey(location)

	data, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var items []model.FoodItem
		if err := json.Unmarshal(data, &items); err == nil {
			metrics.CatalogCacheRequests.WithLabelValues("hit").Inc()
			return items, nil
		}
		c.logger.Warn().Str("key", key).Msg("discarding corrupt cached catalog")
	case errors.Is(err, redis.Nil):
	default:
		c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}
	metrics.CatalogCacheRequests.WithLabelValues("miss").Inc()

	items, err := c.CatalogRepository.GetCatalog(ctx, location)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
		}
	}

	return items, nil
}

func (c *cachedCatalog) Upsert(ctx context.Context, item model.FoodItem) error {
	if err := c.CatalogRepository.Upsert(ctx, item); err != nil {
		return err
	}
	c.invalidate(ctx)
	return nil
}

func (c *cachedCatalog) UpsertBatch(ctx context.Context, items []model.FoodItem) (int, error) {
	n, err := c.CatalogRepository.UpsertBatch(ctx, items)
	if err != nil {
		return n, err
	}
	if n > 0 {
		c.invalidate(ctx)
	}
	return n, nil
}

func (c *cachedCatalog) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := c.CatalogRepository.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		c.invalidate(ctx)
	}
	return deleted, nil
}

// invalidate removes every cached listing.
func (c *cachedCatalog) invalidate(ctx context.Context) {
	if err := c.deleteListings(ctx); err != nil {
		c.logger.Warn().Err(err).Msg("catalog cache invalidation failed")
	}
}

func (c *cachedCatalog) deleteListings(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, catalogKeyPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan cached listings: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cached listings: %w", err)
	}
	c.logger.Debug().Int("count", len(keys)).Msg("catalog cache invalidated")
	return nil
}
