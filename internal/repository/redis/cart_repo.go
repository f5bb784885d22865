package redis

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront-bff/pkg/clients"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

// CartRepo хранит сериализованные корзины. Чтение продлевает TTL, брошенная корзина истекает сама.
type CartRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
}

func NewCartRepo(client *clients.RedisClient, ttl time.Duration) *CartRepo {
	return &CartRepo{
		client: client,
		ttl:    ttl,
	}
}

// Load возвращает (nil, nil), если корзины нет.
func (c *CartRepo) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Client.GetEx(ctx, key, c.ttl).Bytes()
	if errors.Is(err, r.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return data, nil
}

func (c *CartRepo) Save(ctx context.Context, key string, data []byte) error {
	if err := c.client.Client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *CartRepo) Delete(ctx context.Context, key string) error {
	if err := c.client.Client.Del(ctx, key).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
