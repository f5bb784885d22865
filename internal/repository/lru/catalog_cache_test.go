package lru

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCacheRepo(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogCacheRepo(time.Minute)

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, e.ErrCacheMiss)

	snapshot := usecase.NewCatalogSnapshot([]domain.CatalogProduct{{ID: "1", Name: "Linen Shirt"}}, nil)
	require.NoError(t, repo.Set(ctx, snapshot))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Same(t, snapshot, got)

	require.NoError(t, repo.Invalidate(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, e.ErrCacheMiss)
}

func TestCatalogCacheRepo_Expires(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogCacheRepo(20 * time.Millisecond)

	require.NoError(t, repo.Set(ctx, usecase.NewCatalogSnapshot(nil, nil)))
	assert.Eventually(t, func() bool {
		_, err := repo.Get(ctx)
		return err != nil
	}, time.Second, 5*time.Millisecond)
}

func TestCatalogCacheRepo_ZeroTTLDisablesCache(t *testing.T) {
	ctx := context.Background()
	repo := NewCatalogCacheRepo(0)

	require.NoError(t, repo.Set(ctx, usecase.NewCatalogSnapshot(nil, nil)))
	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, e.ErrCacheMiss)
}
