package kafka

import (
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/google/uuid"
)

const (
	eventTypeCartPrefix  = "cart."
	eventTypeOrderPlaced = "order.placed"
)

type cartEventMessage struct {
	EventID    string            `json:"eventId"`
	EventType  string            `json:"eventType"`
	Timestamp  int64             `json:"timestamp"`
	SessionID  string            `json:"sessionId"`
	ProductID  string            `json:"productId,omitempty"`
	Quantity   int               `json:"quantity,omitempty"`
	TotalItems int               `json:"totalItems"`
	CartTotal  string            `json:"cartTotal"`
	Items      []cartItemMessage `json:"items"`
}

type cartItemMessage struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	UnitPrice string `json:"unitPrice"`
	Quantity  int    `json:"quantity"`
}

type orderPlacedMessage struct {
	EventID     string `json:"eventId"`
	EventType   string `json:"eventType"`
	Timestamp   int64  `json:"timestamp"`
	SessionID   string `json:"sessionId"`
	OrderNumber int    `json:"orderNumber"`
	Total       string `json:"total"`
	Date        string `json:"date"`
	City        string `json:"city"`
	Payment     string `json:"paymentMethod"`
}

func newCartEventMessage(sessionID string, ev cart.Event, now time.Time) cartEventMessage {
	items := make([]cartItemMessage, 0, len(ev.Snapshot.Lines))
	for _, l := range ev.Snapshot.Lines {
		items = append(items, cartItemMessage{
			ProductID: l.ProductID,
			Name:      l.Name,
			UnitPrice: l.UnitPrice.String(),
			Quantity:  l.Quantity,
		})
	}

	return cartEventMessage{
		EventID:    uuid.NewString(),
		EventType:  eventTypeCartPrefix + string(ev.Kind),
		Timestamp:  now.UnixNano(),
		SessionID:  sessionID,
		ProductID:  ev.ProductID,
		Quantity:   ev.Quantity,
		TotalItems: ev.Snapshot.TotalItems,
		CartTotal:  ev.Snapshot.CartTotal.String(),
		Items:      items,
	}
}

// newOrderPlacedMessage не содержит персональных данных покупателя, кроме города.
func newOrderPlacedMessage(sessionID string, c *domain.OrderConfirmation, now time.Time) orderPlacedMessage {
	return orderPlacedMessage{
		EventID:     uuid.NewString(),
		EventType:   eventTypeOrderPlaced,
		Timestamp:   now.UnixNano(),
		SessionID:   sessionID,
		OrderNumber: c.OrderNumber,
		Total:       c.Total.String(),
		Date:        c.Date.UTC().Format(time.RFC3339),
		City:        c.Customer.City,
		Payment:     c.Customer.PaymentMethod,
	}
}
