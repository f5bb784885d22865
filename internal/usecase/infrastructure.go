package usecase

import (
	"context"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
)

// ShopAPI — внешний REST API магазина. Токен передаётся только в админские вызовы.
type ShopAPI interface {
	Products(ctx context.Context) ([]domain.CatalogProduct, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	CreateOrder(ctx context.Context, order *domain.OrderSubmission) error
	Orders(ctx context.Context, token string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token string, id string, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, token string, id string) error
}

// ImageURLResolver превращает путь изображения из API в ссылку для браузера.
type ImageURLResolver interface {
	Resolve(ctx context.Context, path string) string
}

// EventPublisher публикует события корзины и заказов. Ошибки публикации не влияют на запрос.
type EventPublisher interface {
	PublishCartEvent(ctx context.Context, sessionID string, ev cart.Event) error
	PublishOrderPlaced(ctx context.Context, sessionID string, confirmation *domain.OrderConfirmation) error
}
