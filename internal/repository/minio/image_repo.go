package minio

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/jimlawless/whereami"
	"github.com/minio/minio-go/v7"
)

// ImageRepo выдаёт ссылки на изображения товаров из бакета MinIO.
type ImageRepo struct {
	mc     *minio.Client
	bucket string
}

func NewImageRepo(mc *minio.Client, bucket string) *ImageRepo {
	return &ImageRepo{
		mc:     mc,
		bucket: bucket,
	}
}

// PresignedGetURL возвращает подписанную ссылку на чтение объекта.
func (i *ImageRepo) PresignedGetURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	u, err := i.mc.PresignedGetObject(ctx, i.bucket, key, expiry, nil)
	if err != nil {
		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return u.String(), nil
}
