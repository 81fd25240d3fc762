package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/freshmart/grocery-bot/internal/model"
)

const defaultCacheKey = "grocerybot:catalog"

// Cache keeps a JSON copy of the catalog in redis so restarts don't hit the
// spreadsheet API on every boot. Entries expire after TTL; a cold or
// unreachable redis simply falls through to the source.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
	key    string
	ttl    time.Duration
}

// NewCache creates a catalog cache on the given redis client.
func NewCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) *Cache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Cache{
		client: client,
		logger: logger,
		key:    defaultCacheKey,
		ttl:    ttl,
	}
}

// Get returns the cached catalog, or ok=false on miss or any redis error.
func (c *Cache) Get(ctx context.Context) (*model.Catalog, bool) {
	payload, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("catalog cache read failed", "error", err)
		}
		return nil, false
	}

	var catalog model.Catalog
	if err := json.Unmarshal(payload, &catalog); err != nil {
		c.logger.Warn("catalog cache entry corrupt, ignoring", "error", err)
		return nil, false
	}
	return &catalog, true
}

// Set stores the catalog with the configured TTL.
func (c *Cache) Set(ctx context.Context, catalog *model.Catalog) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := c.client.Set(ctx, c.key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write catalog cache: %w", err)
	}
	return nil
}

// Invalidate drops the cached catalog so the next load hits the source.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
