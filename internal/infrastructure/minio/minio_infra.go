package minio

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/infrastructure"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

const presignCacheSize = 4096

// PresignResolver превращает ключи объектов MinIO в presigned-ссылки.
// Ссылки кэшируются на половину срока жизни, чтобы снимок каталога не выдавал протухшие.
type PresignResolver struct {
	repo     usecase.ImageRepository
	bucket   string
	expiry   time.Duration
	fallback usecase.ImageURLResolver
	cache    *expirable.LRU[string, string]
	logger   logger.Logger
}

// NewPresignResolver создаёт резолвер. fallback используется, если подписать ссылку не удалось.
func NewPresignResolver(repo usecase.ImageRepository, bucket string, expiry time.Duration,
	fallback usecase.ImageURLResolver, logger logger.Logger) *PresignResolver {
	return &PresignResolver{
		repo:     repo,
		bucket:   bucket,
		expiry:   expiry,
		fallback: fallback,
		cache:    expirable.NewLRU[string, string](presignCacheSize, nil, expiry/2),
		logger:   logger,
	}
}

func (p *PresignResolver) Resolve(ctx context.Context, path string) string {
	const op = "PresignResolver.Resolve"

	if path == "" {
		return ""
	}
	if infrastructure.IsAbsoluteURL(path) {
		return path
	}

	key := p.objectKey(path)
	if key == "" {
		return ""
	}

	if url, ok := p.cache.Get(key); ok {
		return url
	}

	url, err := p.repo.PresignedGetURL(ctx, key, p.expiry)
	if err != nil {
		p.logger.Warnf("failed to presign image %s, using public url: %v", key, e.Wrap(op, err))
		return p.fallback.Resolve(ctx, path)
	}

	p.cache.Add(key, url)
	return url
}

// objectKey убирает ведущий слеш и имя бакета, если API вернул путь вида /<bucket>/<key>.
func (p *PresignResolver) objectKey(path string) string {
	key := strings.TrimLeft(infrastructure.NormalizeImagePath(path), "/")

	return strings.TrimPrefix(key, p.bucket+"/")
}
