package clients

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/jitter"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	pingAttempts = 5
	pingBase     = 200 * time.Millisecond
	pingMax      = 3 * time.Second
)

type RedisClient struct {
	Client *r.Client
}

func NewRedisClient(cfg *cfg.RedisCfg) *RedisClient {
	client := r.NewClient(&r.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.Timeout,
		WriteTimeout: cfg.Timeout,
	})

	return &RedisClient{
		Client: client,
	}
}

// Ping проверяет соединение, повторяя попытки с экспоненциальной задержкой:
// при старте в docker compose Redis может подняться позже приложения.
func (c *RedisClient) Ping(ctx context.Context, log logger.Logger) error {
	policy := jitter.Policy{
		Attempts: pingAttempts,
		Base:     pingBase,
		Max:      pingMax,
		Factor:   jitter.DefaultJitter,
	}

	err := jitter.Retry(ctx, policy,
		func(ctx context.Context) error {
			return c.Client.Ping(ctx).Err()
		},
		nil,
		func(attempt int, wait time.Duration, err error) {
			log.Warnf("redis ping failed, retrying in %v (attempt %d): %v", wait, attempt, err)
		},
	)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (c *RedisClient) Close() error {
	return c.Client.Close()
}
