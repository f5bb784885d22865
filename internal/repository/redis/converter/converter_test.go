package converter

import (
	"testing"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogConverter_PreservesPrices(t *testing.T) {
	prev := decimal.RequireFromString("59.99")
	snapshot := usecase.NewCatalogSnapshot(
		[]domain.CatalogProduct{
			{ID: "1", Name: "A", Price: decimal.RequireFromString("49.90"), PreviousPrice: &prev, Images: []domain.Image{domain.NewImage("u", "h")}},
			{ID: "2", Name: "B", Price: decimal.Zero},
		},
		[]domain.Category{domain.NewCategory("10", "Shirts", "s.jpg")},
	)

	conv := NewCatalogConverter()
	model := conv.ToRedisModel(snapshot)
	assert.Equal(t, "49.9", model.Products[0].Price)
	assert.Nil(t, model.Products[1].PreviousPrice)

	back, err := conv.ToUseCase(model)
	require.NoError(t, err)
	require.Len(t, back.Products, 2)
	assert.True(t, snapshot.Products[0].Price.Equal(back.Products[0].Price))
	require.NotNil(t, back.Products[0].PreviousPrice)
	assert.True(t, prev.Equal(*back.Products[0].PreviousPrice))
	assert.Nil(t, back.Products[1].PreviousPrice)
	assert.Equal(t, snapshot.Categories, back.Categories)
}

func TestCatalogConverter_RejectsBadPrice(t *testing.T) {
	_, err := NewCatalogConverter().ToUseCase(&CatalogSnapshotRedisModel{
		Products: []CatalogProductRedisModel{{ID: "1", Price: "abc"}},
	})
	assert.Error(t, err)
}
