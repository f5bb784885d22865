package usecase

import (
	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
)

// CATALOG USECASE

// CatalogSnapshot — товары и категории, загруженные одним заходом в API магазина.
type CatalogSnapshot struct {
	Products   []domain.CatalogProduct
	Categories []domain.Category
}

func NewCatalogSnapshot(products []domain.CatalogProduct, categories []domain.Category) *CatalogSnapshot {
	return &CatalogSnapshot{
		Products:   products,
		Categories: categories,
	}
}

// BrowseCatalogReq — параметры витрины. CategoryID, если задан, перекрывает CategoryName.
type BrowseCatalogReq struct {
	Filter     catalog.Filter
	CategoryID string
}

func NewBrowseCatalogReq(filter catalog.Filter, categoryID string) *BrowseCatalogReq {
	return &BrowseCatalogReq{
		Filter:     filter,
		CategoryID: categoryID,
	}
}

// ProductDetails — товар и похожие товары из той же категории.
type ProductDetails struct {
	Product domain.CatalogProduct
	Related []domain.CatalogProduct
}

func NewProductDetails(product domain.CatalogProduct, related []domain.CatalogProduct) *ProductDetails {
	return &ProductDetails{
		Product: product,
		Related: related,
	}
}

// BrowseCatalogRes — отображаемый список и фильтр, который к нему применён.
type BrowseCatalogRes struct {
	Result     catalog.Result
	Categories []domain.Category
	Filter     catalog.Filter
}

// CART USECASE

type AddItemReq struct {
	SessionID string
	ProductID string
	Quantity  int
}

func NewAddItemReq(sessionID string, productID string, quantity int) *AddItemReq {
	return &AddItemReq{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

type RemoveItemReq struct {
	SessionID string
	ProductID string
	Quantity  int
}

func NewRemoveItemReq(sessionID string, productID string, quantity int) *RemoveItemReq {
	return &RemoveItemReq{
		SessionID: sessionID,
		ProductID: productID,
		Quantity:  quantity,
	}
}

// CHECKOUT USECASE

type PlaceOrderReq struct {
	SessionID string
	Info      domain.CheckoutInfo
}

func NewPlaceOrderReq(sessionID string, info domain.CheckoutInfo) *PlaceOrderReq {
	return &PlaceOrderReq{
		SessionID: sessionID,
		Info:      info,
	}
}

// ADMIN ORDERS USECASE

// ListOrdersReq — фильтр списка заказов. Пустые поля не фильтруют.
type ListOrdersReq struct {
	Token        string
	Status       domain.OrderStatus
	CustomerName string
	Period       domain.OrderPeriod
}

func NewListOrdersReq(token string, status domain.OrderStatus, customerName string, period domain.OrderPeriod) *ListOrdersReq {
	return &ListOrdersReq{
		Token:        token,
		Status:       status,
		CustomerName: customerName,
		Period:       period,
	}
}

// DashboardStats — сводка админки: число товаров, доставленные заказы и последние заказы.
type DashboardStats struct {
	TotalProducts      int
	DeliveredOrders    int
	DeliveredThisMonth int
	LatestOrders       []domain.Order
}

func NewDashboardStats(totalProducts int) *DashboardStats {
	return &DashboardStats{
		TotalProducts: totalProducts,
		LatestOrders:  []domain.Order{},
	}
}

type UpdateOrderStatusReq struct {
	Token   string
	OrderID string
	Status  domain.OrderStatus
}

func NewUpdateOrderStatusReq(token string, orderID string, status domain.OrderStatus) *UpdateOrderStatusReq {
	return &UpdateOrderStatusReq{
		Token:   token,
		OrderID: orderID,
		Status:  status,
	}
}
