package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"golang.org/x/sync/errgroup"
)

const latestOrdersLimit = 5

// DashboardUseCase считает сводку для главной страницы админки.
// Продажей считается заказ в статусе Delivered.
type DashboardUseCase struct {
	shopAPI ShopAPI
	catalog CatalogUC
	now     func() time.Time
	logger  logger.Logger
}

func NewDashboardUC(shopAPI ShopAPI, catalog CatalogUC, logger logger.Logger) *DashboardUseCase {
	return &DashboardUseCase{
		shopAPI: shopAPI,
		catalog: catalog,
		now:     time.Now,
		logger:  logger,
	}
}

func (d *DashboardUseCase) Stats(ctx context.Context, token string) (*DashboardStats, error) {
	const op = "DashboardUseCase.Stats"

	if token == "" {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}

	var (
		orders   []domain.Order
		products int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = d.shopAPI.Orders(gCtx, token)
		return err
	})
	g.Go(func() error {
		var err error
		products, err = d.catalog.ProductCount(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, e.Wrap(op, err)
	}

	now := d.now()
	year, month, _ := now.Date()

	stats := NewDashboardStats(products)
	for _, o := range orders {
		if o.Status != domain.OrderDelivered {
			continue
		}
		stats.DeliveredOrders++

		if o.Date.IsZero() {
			continue
		}
		if y, m, _ := o.Date.In(now.Location()).Date(); y == year && m == month {
			stats.DeliveredThisMonth++
		}
	}

	latest := make([]domain.Order, len(orders))
	copy(latest, orders)
	sortNewestFirst(latest)
	if len(latest) > latestOrdersLimit {
		latest = latest[:latestOrdersLimit]
	}
	stats.LatestOrders = latest

	return stats, nil
}
