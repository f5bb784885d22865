package usecase

import (
	"context"
	"sync"
	"testing"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/repository/memory"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type fakeShopAPI struct {
	mu             sync.Mutex
	products       []domain.CatalogProduct
	categories     []domain.Category
	orders         []domain.Order
	productsErr    error
	createOrderErr error
	productCalls   int
	created        []*domain.OrderSubmission
	statusUpdates  map[string]domain.OrderStatus
	deleted        []string
	tokens         []string
}

func (f *fakeShopAPI) Products(context.Context) ([]domain.CatalogProduct, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	return f.products, f.productsErr
}

func (f *fakeShopAPI) Categories(context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeShopAPI) CreateOrder(_ context.Context, order *domain.OrderSubmission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createOrderErr != nil {
		return f.createOrderErr
	}
	f.created = append(f.created, order)
	return nil
}

func (f *fakeShopAPI) Orders(_ context.Context, token string) ([]domain.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	return f.orders, nil
}

func (f *fakeShopAPI) UpdateOrderStatus(_ context.Context, token string, id string, status domain.OrderStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	if f.statusUpdates == nil {
		f.statusUpdates = make(map[string]domain.OrderStatus)
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeShopAPI) DeleteOrder(_ context.Context, token string, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tokens = append(f.tokens, token)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeShopAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.productCalls
}

type fakeCache struct {
	mu       sync.Mutex
	snapshot *CatalogSnapshot
	getErr   error
	sets     int
}

func (f *fakeCache) Get(context.Context) (*CatalogSnapshot, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if f.snapshot == nil {
		return nil, e.ErrCacheMiss
	}
	return f.snapshot, nil
}

func (f *fakeCache) Set(_ context.Context, snapshot *CatalogSnapshot) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = snapshot
	f.sets++
	return nil
}

func (f *fakeCache) Invalidate(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.snapshot = nil
	return nil
}

func (f *fakeCache) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

type fakePublisher struct {
	mu     sync.Mutex
	cart   []cart.Event
	orders []*domain.OrderConfirmation
}

func (f *fakePublisher) PublishCartEvent(_ context.Context, _ string, ev cart.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cart = append(f.cart, ev)
	return nil
}

func (f *fakePublisher) PublishOrderPlaced(_ context.Context, _ string, c *domain.OrderConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, c)
	return nil
}

func testProducts() []domain.CatalogProduct {
	return []domain.CatalogProduct{
		{ID: "1", Name: "Linen Shirt", Price: decimal.RequireFromString("49.90"), Category: "Shirts", IsAvailable: true},
		{ID: "2", Name: "Denim Jacket", Price: decimal.RequireFromString("120"), Category: "Jackets", IsAvailable: true},
		{ID: "3", Name: "Wool Scarf", Price: decimal.RequireFromString("25"), Category: "Accessories", IsAvailable: false},
	}
}

func testCategories() []domain.Category {
	return []domain.Category{
		domain.NewCategory("10", "Shirts", ""),
		domain.NewCategory("20", "Jackets", ""),
	}
}

func newTestManager(t *testing.T) *cart.Manager {
	t.Helper()

	m, err := cart.NewManager(memory.NewCartRepo(), "cart_v1", 16, logger.NewNopLogger())
	require.NoError(t, err)
	return m
}
