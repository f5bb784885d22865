package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

// CartUseCase — операции корзины сессии. Товар для добавления берётся из каталога,
// клиент присылает только id и количество.
type CartUseCase struct {
	carts   *cart.Manager
	catalog CatalogUC
	logger  logger.Logger
}

func NewCartUC(carts *cart.Manager, catalog CatalogUC, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		carts:   carts,
		catalog: catalog,
		logger:  logger,
	}
}

func (c *CartUseCase) Get(ctx context.Context, sessionID string) cart.Snapshot {
	return c.carts.Cart(ctx, sessionID).Snapshot()
}

// AddItem добавляет товар. quantity == 0 означает одну единицу.
func (c *CartUseCase) AddItem(ctx context.Context, req *AddItemReq) (cart.Snapshot, error) {
	const op = "CartUseCase.AddItem"

	if err := validateItemRequest(req.ProductID, req.Quantity); err != nil {
		return cart.Snapshot{}, e.Wrap(op, err)
	}

	product, err := c.catalog.Product(ctx, req.ProductID)
	if err != nil {
		return cart.Snapshot{}, e.Wrap(op, err)
	}

	store := c.carts.Cart(ctx, req.SessionID)
	store.AddItem(ctx, product, req.Quantity, func() {
		c.logger.Debugf("added %d of product %s to cart", max(req.Quantity, 1), product.ID)
	})

	return store.Snapshot(), nil
}

func (c *CartUseCase) RemoveItem(ctx context.Context, req *RemoveItemReq) (cart.Snapshot, error) {
	const op = "CartUseCase.RemoveItem"

	if err := validateItemRequest(req.ProductID, req.Quantity); err != nil {
		return cart.Snapshot{}, e.Wrap(op, err)
	}

	store := c.carts.Cart(ctx, req.SessionID)
	store.RemoveItem(ctx, req.ProductID, req.Quantity)

	return store.Snapshot(), nil
}

func (c *CartUseCase) RemoveProduct(ctx context.Context, sessionID string, productID string) (cart.Snapshot, error) {
	const op = "CartUseCase.RemoveProduct"

	if productID == "" {
		return cart.Snapshot{}, e.Wrap(op, e.ErrMissingProductID)
	}

	store := c.carts.Cart(ctx, sessionID)
	store.RemoveProduct(ctx, productID)

	return store.Snapshot(), nil
}

func (c *CartUseCase) Clear(ctx context.Context, sessionID string) cart.Snapshot {
	store := c.carts.Cart(ctx, sessionID)
	store.Clear(ctx)

	return store.Snapshot()
}

func validateItemRequest(productID string, quantity int) error {
	if productID == "" {
		return e.ErrMissingProductID
	}
	if quantity < 0 || quantity > cart.MaxLineQuantity {
		return e.ErrInvalidQuantity
	}

	return nil
}
