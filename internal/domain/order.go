package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — статус заказа в API магазина.
type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderConfirmed OrderStatus = "Confirmed"
	OrderDelivered OrderStatus = "Delivered"
	OrderCancelled OrderStatus = "Cancelled"
)

// DefaultPaymentMethod — оплата при получении.
const DefaultPaymentMethod = "COD"

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

// OrderPeriod — окно списка заказов, отсчитываемое назад от текущего момента.
// Пустой период не ограничивает список.
type OrderPeriod string

const (
	PeriodAll   OrderPeriod = ""
	PeriodDay   OrderPeriod = "day"
	PeriodWeek  OrderPeriod = "week"
	PeriodMonth OrderPeriod = "month"
)

const day = 24 * time.Hour

// Window возвращает длину окна. ok == false для неизвестного периода, PeriodAll даёт 0.
func (p OrderPeriod) Window() (window time.Duration, ok bool) {
	switch p {
	case PeriodAll:
		return 0, true
	case PeriodDay:
		return day, true
	case PeriodWeek:
		return 7 * day, true
	case PeriodMonth:
		return 30 * day, true
	default:
		return 0, false
	}
}

// Within сообщает, попадает ли момент t в окно периода, отсчитанное от now.
// Даты из будущего попадают в любое окно.
func (p OrderPeriod) Within(t, now time.Time) bool {
	window, ok := p.Window()
	if !ok {
		return false
	}
	if window == 0 {
		return true
	}

	return now.Sub(t) <= window
}

// CheckoutInfo — данные покупателя и доставки из формы оформления заказа.
type CheckoutInfo struct {
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	City            string
	CustomerAddress string
	PaymentMethod   string
}

// OrderLine — строка заказа, снимок строки корзины.
type OrderLine struct {
	ProductID string
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Order описывает заказ, как его возвращает API магазина.
type Order struct {
	ID       string
	Customer CheckoutInfo
	Status   OrderStatus
	Date     time.Time
	Total    decimal.Decimal
	Products []OrderLine
}

// OrderSubmission — заказ, отправляемый в API магазина при оформлении.
type OrderSubmission struct {
	Customer CheckoutInfo
	Date     time.Time
	Status   OrderStatus
	Products []OrderLine
}

func NewOrderSubmission(info CheckoutInfo, lines []CartLine, now time.Time) *OrderSubmission {
	products := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		products = append(products, OrderLine{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.UnitPrice,
			Quantity:  l.Quantity,
		})
	}

	return &OrderSubmission{
		Customer: info,
		Date:     now.UTC(),
		Status:   OrderPending,
		Products: products,
	}
}

// OrderConfirmation возвращается покупателю после успешного оформления.
type OrderConfirmation struct {
	OrderNumber int
	Customer    CheckoutInfo
	Total       decimal.Decimal
	Date        time.Time
}
