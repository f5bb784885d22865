package usecase

import (
	"context"
	"time"
)

// CatalogCacheRepository хранит нормализованный снимок каталога.
// Get возвращает e.ErrCacheMiss, если снимка нет.
type CatalogCacheRepository interface {
	Get(ctx context.Context) (*CatalogSnapshot, error)
	Set(ctx context.Context, snapshot *CatalogSnapshot) error
	Invalidate(ctx context.Context) error
}

type ImageRepository interface {
	PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}
