package shop_api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	config := &cfg.ShopAPICfg{
		BaseURL:      srv.URL,
		Timeout:      time.Second,
		MaxRetries:   3,
		RetryBackoff: time.Millisecond,
		MaxBackoff:   5 * time.Millisecond,
	}

	return NewClient(config, srv.Client(), prefixResolver{}, logger.NewNopLogger())
}

func TestClient_Products(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"name":"A","price":"10","isAvailable":true},{"id":"2","name":"B","price":5}]`)
	}))

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1", products[0].ID)
	assert.True(t, products[0].IsAvailable)
	assert.False(t, products[1].IsAvailable)
}

func TestClient_ProductsWithUnexpectedFieldTypes(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":1984,"price":"10","isAvailable":true},{"id":"2","name":"B","price":5,"image":{}}]`)
	}))

	products, err := c.Products(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "1984", products[0].Name)
	assert.Equal(t, "B", products[1].Name)
	assert.Empty(t, products[1].Image)
}

func TestClient_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = io.WriteString(w, `[{"id":1,"name":"Shirts"}]`)
	}))

	categories, err := c.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Equal(t, []domain.Category{{ID: "1", Name: "Shirts"}}, categories)
}

func TestClient_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := c.Products(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_GivesUpAfterMaxRetries(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, e.ErrUpstream)
	assert.Equal(t, int32(3), calls.Load())
}

func TestClient_CreateOrder_NoToken(t *testing.T) {
	var got orderRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/orders", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	order := &domain.OrderSubmission{
		Customer: domain.CheckoutInfo{CustomerName: "Ann Lee", PaymentMethod: domain.DefaultPaymentMethod},
		Date:     time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC),
		Status:   domain.OrderPending,
		Products: []domain.OrderLine{{ProductID: "1", Name: "A", Price: decimal.RequireFromString("10.5"), Quantity: 2}},
	}

	require.NoError(t, c.CreateOrder(context.Background(), order))
	assert.Equal(t, "Ann Lee", got.CustomerName)
	assert.Equal(t, "COD", got.PaymentMethod)
	assert.Equal(t, "2026-03-04T05:06:07Z", got.Date)
	assert.Equal(t, "Pending", got.Status)
	require.Len(t, got.Products, 1)
	assert.Equal(t, json.Number("10.5"), got.Products[0].Price)
	assert.Equal(t, 2, got.Products[0].Quantity)
}

func TestClient_CreateOrder_NotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	err := c.CreateOrder(context.Background(), &domain.OrderSubmission{})
	assert.ErrorIs(t, err, e.ErrUpstream)
	assert.Equal(t, int32(1), calls.Load())
}

func TestClient_AdminCallsForwardToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		_, _ = io.WriteString(w, `[{"id":1,"status":"Pending","products":[{"name":"A","price":2,"quantity":3}]}]`)
	})
	mux.HandleFunc("PUT /api/orders/{id}/status", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.PathValue("id"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var body statusRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Confirmed", body.Status)
	})
	mux.HandleFunc("DELETE /api/orders/{id}", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "1", r.PathValue("id"))
		w.WriteHeader(http.StatusNoContent)
	})
	c := newTestClient(t, mux)
	ctx := context.Background()

	orders, err := c.Orders(ctx, "secret")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.True(t, decimal.NewFromInt(6).Equal(orders[0].Total))

	require.NoError(t, c.UpdateOrderStatus(ctx, "secret", "1", domain.OrderConfirmed))
	require.NoError(t, c.DeleteOrder(ctx, "secret", "1"))
}

func TestClient_UnauthorizedMapped(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Orders(context.Background(), "expired")
	assert.ErrorIs(t, err, e.ErrUnauthorized)
}

func TestClient_Unavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewClient(&cfg.ShopAPICfg{BaseURL: srv.URL, MaxRetries: 2, RetryBackoff: time.Millisecond, MaxBackoff: time.Millisecond},
		nil, prefixResolver{}, logger.NewNopLogger())

	_, err := c.Products(context.Background())
	assert.ErrorIs(t, err, e.ErrUpstreamUnavailable)
}
