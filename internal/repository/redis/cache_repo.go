package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/clients"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const catalogSnapshotKey = "catalog:snapshot:v1"

// CatalogCacheRepo кэширует нормализованный снимок каталога одним ключом.
type CatalogCacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogConverter
	ttl    time.Duration
	logger logger.Logger
}

func NewCatalogCacheRepo(client *clients.RedisClient, conv converter.CatalogConverter,
	ttl time.Duration, logger logger.Logger) *CatalogCacheRepo {
	return &CatalogCacheRepo{
		client: client,
		conv:   conv,
		ttl:    ttl,
		logger: logger,
	}
}

// Get возвращает снимок или e.ErrCacheMiss. Повреждённый снимок удаляется и считается промахом.
func (c *CatalogCacheRepo) Get(ctx context.Context) (*usecase.CatalogSnapshot, error) {
	data, err := c.client.Client.Get(ctx, catalogSnapshotKey).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, e.ErrCacheMiss
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	snapshot, err := c.unmarshalSnapshot(data)
	if err != nil {
		c.logger.Warnf("Redis unmarshal failed, dropping catalog snapshot: %v", e.Wrap(whereami.WhereAmI(), err))
		if err := c.client.Client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
			c.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, e.ErrCacheMiss
	}

	return snapshot, nil
}

// Set кэширует снимок с TTL каталога. Нулевой TTL отключает кэш.
func (c *CatalogCacheRepo) Set(ctx context.Context, snapshot *usecase.CatalogSnapshot) error {
	if c.ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(c.conv.ToRedisModel(snapshot))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := c.client.Client.Set(ctx, catalogSnapshotKey, data, c.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CatalogCacheRepo) Invalidate(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, catalogSnapshotKey).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CatalogCacheRepo) unmarshalSnapshot(data []byte) (*usecase.CatalogSnapshot, error) {
	var model converter.CatalogSnapshotRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return c.conv.ToUseCase(&model)
}
