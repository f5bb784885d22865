package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/shopspring/decimal"
)

// Денежные значения отдаются JSON-числом.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

// CATALOG

type ImageResponse struct {
	URL      string `json:"url"`
	BlurHash string `json:"blurHash,omitempty"`
}

type ProductResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         json.Number     `json:"price" swaggertype:"number"`
	PreviousPrice *json.Number    `json:"previousPrice,omitempty" swaggertype:"number"`
	Category      string          `json:"category"`
	IsAvailable   bool            `json:"isAvailable"`
	OnPromotion   bool            `json:"onPromotion"`
	Images        []ImageResponse `json:"images"`
	Image         string          `json:"image,omitempty"`
}

type CategoryResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type FilterResponse struct {
	Search        string `json:"search"`
	Category      string `json:"category"`
	Sort          string `json:"sort"`
	AvailableOnly bool   `json:"availableOnly"`
}

type CatalogResponse struct {
	Products   []ProductResponse  `json:"products"`
	Count      int                `json:"count"`
	Categories []CategoryResponse `json:"categories"`
	Filter     FilterResponse     `json:"filter"`
}

func NewProductResponse(p domain.CatalogProduct) ProductResponse {
	resp := ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       money(p.Price),
		Category:    p.Category,
		IsAvailable: p.IsAvailable,
		OnPromotion: p.OnPromotion,
		Images:      make([]ImageResponse, 0, len(p.Images)),
		Image:       p.Image,
	}

	if p.PreviousPrice != nil {
		prev := money(*p.PreviousPrice)
		resp.PreviousPrice = &prev
	}
	for _, img := range p.Images {
		resp.Images = append(resp.Images, ImageResponse{URL: img.URL, BlurHash: img.BlurHash})
	}

	return resp
}

// ProductDetailsResponse — поля товара на верхнем уровне и похожие товары в related.
type ProductDetailsResponse struct {
	ProductResponse
	Related []ProductResponse `json:"related"`
}

func NewProductDetailsResponse(d *usecase.ProductDetails) *ProductDetailsResponse {
	related := make([]ProductResponse, 0, len(d.Related))
	for _, p := range d.Related {
		related = append(related, NewProductResponse(p))
	}

	return &ProductDetailsResponse{
		ProductResponse: NewProductResponse(d.Product),
		Related:         related,
	}
}

func NewCategoryResponses(categories []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, CategoryResponse{ID: c.ID, Name: c.Name, Image: c.Image})
	}

	return resp
}

func NewFilterResponse(f catalog.Filter) FilterResponse {
	return FilterResponse{
		Search:        f.SearchText,
		Category:      f.CategoryName,
		Sort:          string(f.SortKey),
		AvailableOnly: f.AvailableOnly,
	}
}

func NewCatalogResponse(res *usecase.BrowseCatalogRes) *CatalogResponse {
	products := make([]ProductResponse, 0, len(res.Result.Products))
	for _, p := range res.Result.Products {
		products = append(products, NewProductResponse(p))
	}

	return &CatalogResponse{
		Products:   products,
		Count:      res.Result.Count,
		Categories: NewCategoryResponses(res.Categories),
		Filter:     NewFilterResponse(res.Filter),
	}
}

// CART

// FlexibleID принимает id строкой или числом.
type FlexibleID string

func (f *FlexibleID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexibleID(n.String())

	return nil
}

type AddItemRequest struct {
	ProductID FlexibleID `json:"productId" swaggertype:"string"`
	Quantity  int        `json:"quantity"`
}

type CartItemResponse struct {
	ProductID string      `json:"productId"`
	Name      string      `json:"name"`
	UnitPrice json.Number `json:"unitPrice" swaggertype:"number"`
	ImageURL  string      `json:"imageUrl,omitempty"`
	Quantity  int         `json:"quantity"`
	Subtotal  json.Number `json:"subtotal" swaggertype:"number"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalItems int                `json:"totalItems"`
	CartTotal  json.Number        `json:"cartTotal" swaggertype:"number"`
}

func NewCartResponse(snap cart.Snapshot) *CartResponse {
	items := make([]CartItemResponse, 0, len(snap.Lines))
	for _, l := range snap.Lines {
		items = append(items, CartItemResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: money(l.UnitPrice),
			ImageURL:  l.ImageURL,
			Quantity:  l.Quantity,
			Subtotal:  money(l.Subtotal()),
		})
	}

	return &CartResponse{
		Items:      items,
		TotalItems: snap.TotalItems,
		CartTotal:  money(snap.CartTotal),
	}
}

// CHECKOUT

type CheckoutRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerEmail   string `json:"customerEmail"`
	CustomerPhone   string `json:"customerPhone"`
	City            string `json:"city"`
	CustomerAddress string `json:"customerAddress"`
	PaymentMethod   string `json:"paymentMethod"`
}

func (c *CheckoutRequest) ToDomain() domain.CheckoutInfo {
	return domain.CheckoutInfo{
		CustomerName:    c.CustomerName,
		CustomerEmail:   c.CustomerEmail,
		CustomerPhone:   c.CustomerPhone,
		City:            c.City,
		CustomerAddress: c.CustomerAddress,
		PaymentMethod:   c.PaymentMethod,
	}
}

type ConfirmationResponse struct {
	OrderNumber     int         `json:"orderNumber"`
	Total           json.Number `json:"total" swaggertype:"number"`
	Date            string      `json:"date"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	CustomerPhone   string      `json:"customerPhone"`
	City            string      `json:"city"`
	CustomerAddress string      `json:"customerAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
}

func NewConfirmationResponse(c *domain.OrderConfirmation) *ConfirmationResponse {
	return &ConfirmationResponse{
		OrderNumber:     c.OrderNumber,
		Total:           money(c.Total),
		Date:            c.Date.UTC().Format(time.RFC3339),
		CustomerName:    c.Customer.CustomerName,
		CustomerEmail:   c.Customer.CustomerEmail,
		CustomerPhone:   c.Customer.CustomerPhone,
		City:            c.Customer.City,
		CustomerAddress: c.Customer.CustomerAddress,
		PaymentMethod:   c.Customer.PaymentMethod,
	}
}

// ADMIN ORDERS

type OrderProductResponse struct {
	ID       string      `json:"id,omitempty"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price" swaggertype:"number"`
	Quantity int         `json:"quantity"`
}

type OrderResponse struct {
	ID              string                 `json:"id"`
	CustomerName    string                 `json:"customerName"`
	CustomerEmail   string                 `json:"customerEmail"`
	CustomerPhone   string                 `json:"customerPhone"`
	City            string                 `json:"city"`
	CustomerAddress string                 `json:"customerAddress"`
	PaymentMethod   string                 `json:"paymentMethod,omitempty"`
	Status          string                 `json:"status"`
	Date            string                 `json:"date,omitempty"`
	Total           json.Number            `json:"total" swaggertype:"number"`
	Products        []OrderProductResponse `json:"products"`
}

func NewOrderResponses(orders []domain.Order) []OrderResponse {
	resp := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		r := OrderResponse{
			ID:              o.ID,
			CustomerName:    o.Customer.CustomerName,
			CustomerEmail:   o.Customer.CustomerEmail,
			CustomerPhone:   o.Customer.CustomerPhone,
			City:            o.Customer.City,
			CustomerAddress: o.Customer.CustomerAddress,
			PaymentMethod:   o.Customer.PaymentMethod,
			Status:          string(o.Status),
			Total:           money(o.Total),
			Products:        make([]OrderProductResponse, 0, len(o.Products)),
		}
		if !o.Date.IsZero() {
			r.Date = o.Date.UTC().Format(time.RFC3339)
		}
		for _, p := range o.Products {
			r.Products = append(r.Products, OrderProductResponse{
				ID:       p.ProductID,
				Name:     p.Name,
				Price:    money(p.Price),
				Quantity: p.Quantity,
			})
		}
		resp = append(resp, r)
	}

	return resp
}

type DashboardResponse struct {
	TotalProducts      int             `json:"totalProducts"`
	DeliveredOrders    int             `json:"deliveredOrders"`
	DeliveredThisMonth int             `json:"deliveredThisMonth"`
	LatestOrders       []OrderResponse `json:"latestOrders"`
}

func NewDashboardResponse(s *usecase.DashboardStats) *DashboardResponse {
	return &DashboardResponse{
		TotalProducts:      s.TotalProducts,
		DeliveredOrders:    s.DeliveredOrders,
		DeliveredThisMonth: s.DeliveredThisMonth,
		LatestOrders:       NewOrderResponses(s.LatestOrders),
	}
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}
