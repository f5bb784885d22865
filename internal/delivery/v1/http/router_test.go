package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/catalog"
	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/repository/memory"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubShopAPI struct {
	extra   []domain.CatalogProduct
	orders  []domain.Order
	created []*domain.OrderSubmission
	token   string
}

func (s *stubShopAPI) Products(context.Context) ([]domain.CatalogProduct, error) {
	return append([]domain.CatalogProduct{
		{ID: "1", Name: "Linen Shirt", Price: decimal.RequireFromString("49.90"), Category: "Shirts", IsAvailable: true},
		{ID: "2", Name: "Denim Jacket", Price: decimal.RequireFromString("120"), Category: "Jackets", IsAvailable: true},
		{ID: "3", Name: "Wool Scarf", Price: decimal.RequireFromString("25"), Category: "Accessories", IsAvailable: false},
	}, s.extra...), nil
}

func (s *stubShopAPI) Categories(context.Context) ([]domain.Category, error) {
	return []domain.Category{domain.NewCategory("10", "Shirts", ""), domain.NewCategory("20", "Jackets", "")}, nil
}

func (s *stubShopAPI) CreateOrder(_ context.Context, order *domain.OrderSubmission) error {
	s.created = append(s.created, order)
	return nil
}

func (s *stubShopAPI) Orders(_ context.Context, token string) ([]domain.Order, error) {
	s.token = token
	return s.orders, nil
}

func (s *stubShopAPI) UpdateOrderStatus(_ context.Context, token string, _ string, _ domain.OrderStatus) error {
	s.token = token
	return nil
}

func (s *stubShopAPI) DeleteOrder(_ context.Context, token string, _ string) error {
	s.token = token
	return nil
}

type noCache struct{}

func (noCache) Get(context.Context) (*usecase.CatalogSnapshot, error) { return nil, e.ErrCacheMiss }
func (noCache) Set(context.Context, *usecase.CatalogSnapshot) error   { return nil }
func (noCache) Invalidate(context.Context) error                      { return nil }

var testCartCfg = &cfg.CartCfg{
	CookieName:    "cart_session",
	SessionHeader: "X-Cart-Session",
	CookieMaxAge:  time.Hour,
}

func newTestServer(t *testing.T, api *stubShopAPI) *httptest.Server {
	t.Helper()

	log := logger.NewNopLogger()
	manager, err := cart.NewManager(memory.NewCartRepo(), "cart_v1", 16, log)
	require.NoError(t, err)

	catalogUC := usecase.NewCatalogUC(api, noCache{}, catalog.NewViewModel("en"), log)
	mux := chi.NewRouter()
	NewRouter(mux, log).Init(UseCases{
		Catalog:     catalogUC,
		Cart:        usecase.NewCartUC(manager, catalogUC, log),
		Checkout:    usecase.NewCheckoutUC(manager, api, nil, log),
		AdminOrders: usecase.NewAdminOrdersUC(api, log),
		Dashboard:   usecase.NewDashboardUC(api, catalogUC, log),
	}, NewSessionMiddleware(testCartCfg), "/swagger/doc.json")

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func do(t *testing.T, method, url, session, body string, out any) *http.Response {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	if session != "" {
		req.Header.Set("X-Cart-Session", session)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestCatalog(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{})

	var res CatalogResponse
	resp := do(t, http.MethodGet, srv.URL+"/api/v1/catalog?sort=price_desc", "", "", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, res.Count)
	assert.Equal(t, "2", res.Products[0].ID)
	assert.Equal(t, json.Number("120"), res.Products[0].Price)
	assert.Equal(t, FilterResponse{Category: "All", Sort: "price_desc", AvailableOnly: true}, res.Filter)
	assert.Len(t, res.Categories, 2)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/catalog?availableOnly=false&search=SCARF", "", "", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "3", res.Products[0].ID)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/catalog?categoryId=10", "", "", &res)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Shirts", res.Filter.Category)
	assert.Equal(t, 1, res.Count)

	var errResp ErrorResponse
	resp = do(t, http.MethodGet, srv.URL+"/api/v1/catalog?availableOnly=maybe", "", "", &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestProduct(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{extra: []domain.CatalogProduct{
		{ID: "4", Name: "Oxford Shirt", Price: decimal.NewFromInt(60), Category: " shirts ", IsAvailable: true},
	}})

	var p ProductDetailsResponse
	resp := do(t, http.MethodGet, srv.URL+"/api/v1/products/3", "", "", &p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Wool Scarf", p.Name)
	assert.NotNil(t, p.Related)
	assert.Empty(t, p.Related)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/products/1", "", "", &p)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "1", p.ID)
	require.Len(t, p.Related, 1)
	assert.Equal(t, "4", p.Related[0].ID)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/products/404", "", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSession_IssuedAndReused(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{})

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/cart", "", "", nil)
	session := resp.Header.Get("X-Cart-Session")
	_, err := uuid.Parse(session)
	require.NoError(t, err)

	var cookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "cart_session" {
			cookie = c
		}
	}
	require.NotNil(t, cookie)
	assert.Equal(t, session, cookie.Value)
	assert.True(t, cookie.HttpOnly)

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/cart", session, "", nil)
	assert.Equal(t, session, resp.Header.Get("X-Cart-Session"))

	resp = do(t, http.MethodGet, srv.URL+"/api/v1/cart", "../../etc", "", nil)
	assert.NotEqual(t, "../../etc", resp.Header.Get("X-Cart-Session"))
}

func TestCartFlow(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{})
	session := uuid.NewString()

	var c CartResponse
	resp := do(t, http.MethodPost, srv.URL+"/api/v1/cart/items", session, `{"productId":1,"quantity":2}`, &c)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, c.TotalItems)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/cart/items", session, `{"productId":"1"}`, &c)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, json.Number("149.7"), c.CartTotal)
	assert.Equal(t, json.Number("149.7"), c.Items[0].Subtotal)

	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/cart/items/1?quantity=2", session, "", &c)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, c.TotalItems)

	resp = do(t, http.MethodDelete, srv.URL+"/api/v1/cart/products/1", session, "", &c)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, c.Items)
	assert.Equal(t, json.Number("0"), c.CartTotal)
}

func TestCartErrors(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{})
	session := uuid.NewString()

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"invalid json", http.MethodPost, "/api/v1/cart/items", `{"productId":`, http.StatusBadRequest},
		{"missing id", http.MethodPost, "/api/v1/cart/items", `{"quantity":1}`, http.StatusBadRequest},
		{"negative quantity", http.MethodPost, "/api/v1/cart/items", `{"productId":"1","quantity":-1}`, http.StatusBadRequest},
		{"unknown product", http.MethodPost, "/api/v1/cart/items", `{"productId":"404"}`, http.StatusNotFound},
		{"bad remove quantity", http.MethodDelete, "/api/v1/cart/items/1?quantity=x", "", http.StatusBadRequest},
		{"quantity above limit", http.MethodPost, "/api/v1/cart/items", `{"productId":"1","quantity":10000}`, http.StatusBadRequest},
		{"max int quantity", http.MethodPost, "/api/v1/cart/items", `{"productId":"1","quantity":9223372036854775807}`, http.StatusBadRequest},
		{"remove quantity above limit", http.MethodDelete, "/api/v1/cart/items/1?quantity=10000", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errResp ErrorResponse
			resp := do(t, tt.method, srv.URL+tt.path, session, tt.body, &errResp)
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.status, errResp.Code)
		})
	}
}

const validCheckout = `{
	"customerName": "Ann Lee",
	"customerEmail": "ann@example.com",
	"customerPhone": "+1 555-123-4567",
	"city": "Springfield",
	"customerAddress": "12 Main St."
}`

func TestCheckout(t *testing.T) {
	api := &stubShopAPI{}
	srv := newTestServer(t, api)
	session := uuid.NewString()

	var errResp ErrorResponse
	resp := do(t, http.MethodPost, srv.URL+"/api/v1/checkout", session, validCheckout, &errResp)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	do(t, http.MethodPost, srv.URL+"/api/v1/cart/items", session, `{"productId":"2"}`, nil)

	resp = do(t, http.MethodPost, srv.URL+"/api/v1/checkout", session, strings.Replace(validCheckout, "ann@example.com", "ann", 1), &errResp)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "customerEmail", errResp.Field)
	assert.Equal(t, "Enter a valid email address.", errResp.Message)

	var conf ConfirmationResponse
	resp = do(t, http.MethodPost, srv.URL+"/api/v1/checkout", session, validCheckout, &conf)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, json.Number("120"), conf.Total)
	assert.Equal(t, "COD", conf.PaymentMethod)
	assert.GreaterOrEqual(t, conf.OrderNumber, 0)
	assert.Less(t, conf.OrderNumber, 1_000_000)
	require.Len(t, api.created, 1)

	var c CartResponse
	do(t, http.MethodGet, srv.URL+"/api/v1/cart", session, "", &c)
	assert.Empty(t, c.Items)
}

func TestAdminOrders(t *testing.T) {
	api := &stubShopAPI{orders: []domain.Order{
		{ID: "1", Status: domain.OrderPending, Total: decimal.NewFromInt(10)},
		{ID: "2", Status: domain.OrderConfirmed, Total: decimal.NewFromInt(20)},
	}}
	srv := newTestServer(t, api)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/admin/orders", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodGet, srv.URL+"/api/v1/admin/orders?status=Confirmed", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var orders []OrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "2", orders[0].ID)
	assert.Equal(t, "tok", api.token)

	req, err = http.NewRequest(http.MethodPut, srv.URL+"/api/v1/admin/orders/2/status", strings.NewReader(`{"status":"Lost"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp2.StatusCode)

	req, err = http.NewRequest(http.MethodPut, srv.URL+"/api/v1/admin/orders/1/status", strings.NewReader(`{"status":"Confirmed"}`))
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")
	resp4, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp4.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp4.StatusCode)

	req, err = http.NewRequest(http.MethodDelete, srv.URL+"/api/v1/admin/orders/2", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")
	resp3, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp3.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp3.StatusCode)
}

// getWithToken выполняет GET с Authorization: Bearer tok и декодирует ответ в out.
func getWithToken(t *testing.T, url string, out any) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestAdminOrdersPeriod(t *testing.T) {
	now := time.Now()
	api := &stubShopAPI{orders: []domain.Order{
		{ID: "old", Status: domain.OrderDelivered, Date: now.AddDate(0, -3, 0)},
		{ID: "recent", Status: domain.OrderPending, Date: now.Add(-2 * time.Hour)},
		{ID: "days", Status: domain.OrderConfirmed, Date: now.AddDate(0, 0, -3)},
	}}
	srv := newTestServer(t, api)

	var orders []OrderResponse
	resp := getWithToken(t, srv.URL+"/api/v1/admin/orders", &orders)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, orders, 3)
	assert.Equal(t, []string{"recent", "days", "old"}, []string{orders[0].ID, orders[1].ID, orders[2].ID})

	resp = getWithToken(t, srv.URL+"/api/v1/admin/orders?period=WEEK", &orders)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, orders, 2)
	assert.Equal(t, "recent", orders[0].ID)

	var errResp ErrorResponse
	resp = getWithToken(t, srv.URL+"/api/v1/admin/orders?period=year", &errResp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, e.ErrInvalidOrderPeriod.Error(), errResp.Message)
}

func TestDashboard(t *testing.T) {
	now := time.Now()
	api := &stubShopAPI{orders: []domain.Order{
		{ID: "1", Status: domain.OrderDelivered, Date: now},
		{ID: "2", Status: domain.OrderDelivered, Date: now.AddDate(-1, 0, 0)},
		{ID: "3", Status: domain.OrderPending, Date: now.Add(-time.Minute)},
	}}
	srv := newTestServer(t, api)

	resp := do(t, http.MethodGet, srv.URL+"/api/v1/admin/dashboard", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var stats DashboardResponse
	resp = getWithToken(t, srv.URL+"/api/v1/admin/dashboard", &stats)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, stats.TotalProducts)
	assert.Equal(t, 2, stats.DeliveredOrders)
	assert.Equal(t, 1, stats.DeliveredThisMonth)
	require.Len(t, stats.LatestOrders, 3)
	assert.Equal(t, "1", stats.LatestOrders[0].ID)
	assert.Equal(t, "tok", api.token)
}

func TestCatalogRefresh(t *testing.T) {
	srv := newTestServer(t, &stubShopAPI{})

	resp := do(t, http.MethodPost, srv.URL+"/api/v1/admin/catalog/refresh", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/api/v1/admin/catalog/refresh", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer tok")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp2.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp2.StatusCode)
}

func TestToHTTPResponse(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{e.Wrap("op", e.ErrUpstream), http.StatusBadGateway},
		{e.Wrap("op", e.ErrUpstreamUnavailable), http.StatusServiceUnavailable},
		{e.Wrap("op", e.ErrEmptyCart), http.StatusConflict},
		{e.NewValidationError("city", "Enter a valid city."), http.StatusUnprocessableEntity},
		{context.Canceled, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		code, _ := ToHTTPResponse(tt.err)
		assert.Equal(t, tt.code, code, tt.err.Error())
	}
}

func TestBearerToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, bearerToken(r))

	r.Header.Set("Authorization", "bearer  abc ")
	assert.Equal(t, "abc", bearerToken(r))

	r.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, bearerToken(r))
}
