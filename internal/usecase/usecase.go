package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
)

type CatalogUC interface {
	Browse(ctx context.Context, req *BrowseCatalogReq) (*BrowseCatalogRes, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Product(ctx context.Context, id string) (*domain.CatalogProduct, error)
	ProductDetails(ctx context.Context, id string) (*ProductDetails, error)
	ProductCount(ctx context.Context) (int, error)
	Refresh(ctx context.Context, token string) (*CatalogSnapshot, error)
}

type CartUC interface {
	Get(ctx context.Context, sessionID string) cart.Snapshot
	AddItem(ctx context.Context, req *AddItemReq) (cart.Snapshot, error)
	RemoveItem(ctx context.Context, req *RemoveItemReq) (cart.Snapshot, error)
	RemoveProduct(ctx context.Context, sessionID string, productID string) (cart.Snapshot, error)
	Clear(ctx context.Context, sessionID string) cart.Snapshot
}

type CheckoutUC interface {
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.OrderConfirmation, error)
}

type AdminOrdersUC interface {
	List(ctx context.Context, req *ListOrdersReq) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, req *UpdateOrderStatusReq) error
	Delete(ctx context.Context, token string, id string) error
}

type DashboardUC interface {
	Stats(ctx context.Context, token string) (*DashboardStats, error)
}
