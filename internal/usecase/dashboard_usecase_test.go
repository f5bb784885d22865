package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDashboardUC(api *fakeShopAPI, now time.Time) *DashboardUseCase {
	uc := NewDashboardUC(api, newCatalogUC(api, &fakeCache{}), logger.NewNopLogger())
	uc.now = func() time.Time { return now }
	return uc
}

func TestDashboardUseCase_Stats(t *testing.T) {
	now := time.Date(2026, 4, 15, 12, 0, 0, 0, time.UTC)
	api := &fakeShopAPI{
		products:   testProducts(),
		categories: testCategories(),
		orders: []domain.Order{
			{ID: "1", Status: domain.OrderDelivered, Date: now.AddDate(0, 0, -1)},
			{ID: "2", Status: domain.OrderDelivered, Date: now.AddDate(0, -1, 0)},
			{ID: "3", Status: domain.OrderDelivered, Date: now.AddDate(-1, 0, 0)},
			{ID: "4", Status: domain.OrderPending, Date: now.Add(-time.Hour)},
			{ID: "5", Status: domain.OrderConfirmed, Date: now.AddDate(0, 0, -2)},
			{ID: "6", Status: domain.OrderCancelled, Date: now.AddDate(0, 0, -3)},
			{ID: "7", Status: domain.OrderDelivered},
		},
	}
	uc := newDashboardUC(api, now)

	stats, err := uc.Stats(context.Background(), "tok")
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 4, stats.DeliveredOrders)
	assert.Equal(t, 1, stats.DeliveredThisMonth)

	latest := make([]string, 0, len(stats.LatestOrders))
	for _, o := range stats.LatestOrders {
		latest = append(latest, o.ID)
	}
	assert.Equal(t, []string{"4", "1", "5", "6", "2"}, latest)
	assert.Equal(t, "1", api.orders[0].ID)
}

func TestDashboardUseCase_Errors(t *testing.T) {
	now := time.Now()

	_, err := newDashboardUC(&fakeShopAPI{}, now).Stats(context.Background(), "")
	assert.ErrorIs(t, err, e.ErrUnauthorized)

	_, err = newDashboardUC(&fakeShopAPI{productsErr: e.ErrUpstream}, now).Stats(context.Background(), "tok")
	assert.ErrorIs(t, err, e.ErrUpstream)
}

func TestDashboardUseCase_EmptyShop(t *testing.T) {
	stats, err := newDashboardUC(&fakeShopAPI{}, time.Now()).Stats(context.Background(), "tok")
	require.NoError(t, err)

	assert.Zero(t, stats.TotalProducts)
	assert.Zero(t, stats.DeliveredOrders)
	assert.NotNil(t, stats.LatestOrders)
	assert.Empty(t, stats.LatestOrders)
}
