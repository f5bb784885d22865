package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartEventMessage(t *testing.T) {
	now := time.Unix(1700000000, 0)
	ev := cart.Event{
		Kind:      cart.ItemAdded,
		ProductID: "7",
		Quantity:  2,
		Snapshot: cart.Snapshot{
			Lines:      []domain.CartLine{{ProductID: "7", Name: "Shirt", UnitPrice: decimal.RequireFromString("10.50"), Quantity: 2}},
			TotalItems: 2,
			CartTotal:  decimal.RequireFromString("21"),
		},
	}

	msg := newCartEventMessage("s1", ev, now)

	_, err := uuid.Parse(msg.EventID)
	require.NoError(t, err)
	assert.Equal(t, "cart.item_added", msg.EventType)
	assert.Equal(t, now.UnixNano(), msg.Timestamp)
	assert.Equal(t, "21", msg.CartTotal)
	require.Len(t, msg.Items, 1)
	assert.Equal(t, "10.5", msg.Items[0].UnitPrice)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"sessionId":"s1"`)
}

func TestNewCartEventMessage_Cleared(t *testing.T) {
	msg := newCartEventMessage("s1", cart.Event{Kind: cart.CartCleared, Snapshot: cart.Snapshot{CartTotal: decimal.Zero}}, time.Now())

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "productId\":\"\"")
	assert.Contains(t, string(data), `"items":[]`)
	assert.Equal(t, "cart.cart_cleared", msg.EventType)
}

func TestNewOrderPlacedMessage(t *testing.T) {
	conf := &domain.OrderConfirmation{
		OrderNumber: 42,
		Customer:    domain.CheckoutInfo{CustomerName: "Ann", CustomerEmail: "ann@example.com", City: "Springfield", PaymentMethod: "COD"},
		Total:       decimal.RequireFromString("99.90"),
		Date:        time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	msg := newOrderPlacedMessage("s1", conf, time.Now())

	assert.Equal(t, "order.placed", msg.EventType)
	assert.Equal(t, 42, msg.OrderNumber)
	assert.Equal(t, "99.9", msg.Total)
	assert.Equal(t, "2026-01-02T03:04:05Z", msg.Date)

	data, err := json.Marshal(msg)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "ann@example.com")
}
