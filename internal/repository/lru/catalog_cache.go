// Package lru хранит снимок каталога в памяти процесса, когда Redis не используется.
package lru

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const catalogSnapshotKey = "catalog"

type CatalogCacheRepo struct {
	cache *expirable.LRU[string, *usecase.CatalogSnapshot]
	ttl   time.Duration
}

// NewCatalogCacheRepo создаёт кэш с TTL. Нулевой TTL отключает кэш.
func NewCatalogCacheRepo(ttl time.Duration) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		cache: expirable.NewLRU[string, *usecase.CatalogSnapshot](1, nil, ttl),
		ttl:   ttl,
	}
}

func (c *CatalogCacheRepo) Get(_ context.Context) (*usecase.CatalogSnapshot, error) {
	snapshot, ok := c.cache.Get(catalogSnapshotKey)
	if !ok {
		return nil, e.ErrCacheMiss
	}

	return snapshot, nil
}

func (c *CatalogCacheRepo) Set(_ context.Context, snapshot *usecase.CatalogSnapshot) error {
	if c.ttl <= 0 {
		return nil
	}

	c.cache.Add(catalogSnapshotKey, snapshot)
	return nil
}

func (c *CatalogCacheRepo) Invalidate(_ context.Context) error {
	c.cache.Remove(catalogSnapshotKey)
	return nil
}
