package minio

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/infrastructure"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/stretchr/testify/assert"
)

type fakeImageRepo struct {
	calls []string
	err   error
}

func (f *fakeImageRepo) PresignedGetURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	f.calls = append(f.calls, key)
	if f.err != nil {
		return "", f.err
	}
	return "https://minio.test/products/" + key + "?X-Amz-Expires=" + expiry.String(), nil
}

func newResolver(repo *fakeImageRepo) *PresignResolver {
	return NewPresignResolver(repo, "products", time.Hour,
		infrastructure.NewBaseURLResolver("https://shop.test"), logger.NewNopLogger())
}

func TestPresignResolver_Resolve(t *testing.T) {
	repo := &fakeImageRepo{}
	r := newResolver(repo)
	ctx := context.Background()

	assert.Equal(t, "", r.Resolve(ctx, ""))
	assert.Equal(t, "https://cdn.test/a.jpg", r.Resolve(ctx, "https://cdn.test/a.jpg"))
	assert.Equal(t, "https://minio.test/products/shirt/a.jpg?X-Amz-Expires=1h0m0s", r.Resolve(ctx, `\products\shirt\a.jpg`))
	assert.Equal(t, []string{"shirt/a.jpg"}, repo.calls)
}

func TestPresignResolver_CachesURLs(t *testing.T) {
	repo := &fakeImageRepo{}
	r := newResolver(repo)
	ctx := context.Background()

	first := r.Resolve(ctx, "shirt/a.jpg")
	second := r.Resolve(ctx, "/shirt/a.jpg")

	assert.Equal(t, first, second)
	assert.Len(t, repo.calls, 1)
}

func TestPresignResolver_FallsBack(t *testing.T) {
	r := newResolver(&fakeImageRepo{err: errors.New("no credentials")})

	assert.Equal(t, "https://shop.test/uploads/a.jpg", r.Resolve(context.Background(), "uploads/a.jpg"))
}
