package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

// AdminOrdersUseCase проксирует управление заказами в API магазина.
// Токен не проверяется, только пробрасывается.
type AdminOrdersUseCase struct {
	shopAPI ShopAPI
	now     func() time.Time
	logger  logger.Logger
}

func NewAdminOrdersUC(shopAPI ShopAPI, logger logger.Logger) *AdminOrdersUseCase {
	return &AdminOrdersUseCase{
		shopAPI: shopAPI,
		now:     time.Now,
		logger:  logger,
	}
}

// List возвращает заказы, отфильтрованные по точному статусу, вхождению имени покупателя
// без учёта регистра и периоду. Результат отсортирован по дате, новые первыми.
func (a *AdminOrdersUseCase) List(ctx context.Context, req *ListOrdersReq) ([]domain.Order, error) {
	const op = "AdminOrdersUseCase.List"

	if req.Token == "" {
		return nil, e.Wrap(op, e.ErrUnauthorized)
	}
	if req.Status != "" && !req.Status.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}
	if _, ok := req.Period.Window(); !ok {
		return nil, e.Wrap(op, e.ErrInvalidOrderPeriod)
	}

	orders, err := a.shopAPI.Orders(ctx, req.Token)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	now := a.now()
	name := strings.ToLower(strings.TrimSpace(req.CustomerName))
	filtered := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		if req.Status != "" && o.Status != req.Status {
			continue
		}
		if name != "" && !strings.Contains(strings.ToLower(o.Customer.CustomerName), name) {
			continue
		}
		if !req.Period.Within(o.Date, now) {
			continue
		}
		filtered = append(filtered, o)
	}

	sortNewestFirst(filtered)

	return filtered, nil
}

func (a *AdminOrdersUseCase) UpdateStatus(ctx context.Context, req *UpdateOrderStatusReq) error {
	const op = "AdminOrdersUseCase.UpdateStatus"

	if req.Token == "" {
		return e.Wrap(op, e.ErrUnauthorized)
	}
	if !req.Status.Valid() {
		return e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	if err := a.shopAPI.UpdateOrderStatus(ctx, req.Token, req.OrderID, req.Status); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("order %s status changed to %s", req.OrderID, req.Status)
	return nil
}

func (a *AdminOrdersUseCase) Delete(ctx context.Context, token string, id string) error {
	const op = "AdminOrdersUseCase.Delete"

	if token == "" {
		return e.Wrap(op, e.ErrUnauthorized)
	}

	if err := a.shopAPI.DeleteOrder(ctx, token, id); err != nil {
		return e.Wrap(op, err)
	}

	a.logger.Infof("order %s deleted", id)
	return nil
}

// sortNewestFirst сортирует заказы по дате по убыванию. Заказы без даты уходят в конец.
func sortNewestFirst(orders []domain.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})
}
