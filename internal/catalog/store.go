// Package catalog holds the in-memory read-only product catalog and its
// loading machinery.
package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/freshmart/grocery-bot/internal/common"
	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/service"
)

// Store wraps a loaded catalog behind a read lock. When loading fails the
// store stays in a degraded state: lookups return nil and the engine renders
// a catalog-unavailable response instead of crashing.
type Store struct {
	source  service.CatalogSource
	cache   *Cache
	logger  *slog.Logger
	catalog *model.Catalog
	mu      sync.RWMutex
}

// Option configures a Store.
type Option func(*Store)

// WithCache attaches a redis-backed catalog cache consulted before the
// source and refreshed after a successful load.
func WithCache(cache *Cache) Option {
	return func(s *Store) { s.cache = cache }
}

// NewStore creates a catalog store backed by the given source.
func NewStore(source service.CatalogSource, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{source: source, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load fetches the catalog, preferring the cache when one is attached. On
// failure the previous catalog (if any) is kept and ErrCatalogUnavailable is
// returned wrapped.
func (s *Store) Load(ctx context.Context) error {
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx); ok {
			s.install(cached)
			s.logger.Info("catalog loaded from cache",
				"categories", cached.CategoryCount(),
				"items", cached.ItemCount())
			return nil
		}
	}

	loaded, err := s.source.LoadCatalog(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrCatalogUnavailable, err)
	}
	s.install(loaded)

	if s.cache != nil {
		if err := s.cache.Set(ctx, loaded); err != nil {
			s.logger.Warn("failed to cache catalog", "error", err)
		}
	}

	s.logger.Info("catalog loaded",
		"categories", loaded.CategoryCount(),
		"items", loaded.ItemCount())
	return nil
}

// Refresh drops any cached copy and reloads the catalog from the source.
func (s *Store) Refresh(ctx context.Context) error {
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("failed to invalidate catalog cache", "error", err)
		}
	}
	return s.Load(ctx)
}

func (s *Store) install(c *model.Catalog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog = c
}

// Available reports whether a catalog has been loaded.
func (s *Store) Available() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog != nil && len(s.catalog.Categories) > 0
}

// Catalog returns the loaded catalog, or nil while degraded.
func (s *Store) Catalog() *model.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Category returns the category with the given key, or nil.
func (s *Store) Category(key string) *model.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return nil
	}
	return s.catalog.Category(key)
}

// CategoryCount returns the number of loaded categories.
func (s *Store) CategoryCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return 0
	}
	return s.catalog.CategoryCount()
}

// ItemCount returns the total number of loaded items.
func (s *Store) ItemCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.catalog == nil {
		return 0
	}
	return s.catalog.ItemCount()
}
