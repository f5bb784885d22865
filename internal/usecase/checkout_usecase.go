package usecase

import (
	"context"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

const maxOrderNumber = 1_000_000

// space — пробельные символы формы, включая NBSP и другие Unicode-пробелы.
const space = `\s\p{Zs}\x{2028}\x{2029}\x{FEFF}`

var (
	nameRegex    = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
	emailRegex   = regexp.MustCompile(`^[^` + space + `@]+@[^` + space + `@]+\.[^` + space + `@]+$`)
	phoneRegex   = regexp.MustCompile(`^[\+]?[0-9][0-9` + space + `\-]{7,15}$`)
	cityRegex    = regexp.MustCompile(`^[a-zA-Z` + space + `]+$`)
	addressRegex = regexp.MustCompile(`^[a-zA-Z0-9` + space + `,.-]+$`)
)

// checkoutRules проверяются по порядку, первая нарушенная побеждает.
var checkoutRules = []struct {
	field   string
	value   func(info *domain.CheckoutInfo) string
	re      *regexp.Regexp
	message string
}{
	{"customerName", func(i *domain.CheckoutInfo) string { return i.CustomerName }, nameRegex, "Enter a valid full name."},
	{"customerEmail", func(i *domain.CheckoutInfo) string { return i.CustomerEmail }, emailRegex, "Enter a valid email address."},
	{"customerPhone", func(i *domain.CheckoutInfo) string { return i.CustomerPhone }, phoneRegex, "Enter a valid phone number."},
	{"city", func(i *domain.CheckoutInfo) string { return i.City }, cityRegex, "Enter a valid city."},
	{"customerAddress", func(i *domain.CheckoutInfo) string { return i.CustomerAddress }, addressRegex, "Enter a valid address."},
}

// CheckoutUseCase оформляет заказ из корзины сессии.
type CheckoutUseCase struct {
	carts       *cart.Manager
	shopAPI     ShopAPI
	publisher   EventPublisher
	logger      logger.Logger
	now         func() time.Time
	orderNumber func() int
}

// NewCheckoutUC создаёт use case оформления. publisher может быть nil.
func NewCheckoutUC(carts *cart.Manager, shopAPI ShopAPI, publisher EventPublisher, logger logger.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{
		carts:       carts,
		shopAPI:     shopAPI,
		publisher:   publisher,
		logger:      logger,
		now:         time.Now,
		orderNumber: func() int { return rand.IntN(maxOrderNumber) },
	}
}

// PlaceOrder валидирует форму, отправляет заказ и очищает корзину.
// При ошибке отправки корзина не меняется.
func (c *CheckoutUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.OrderConfirmation, error) {
	const op = "CheckoutUseCase.PlaceOrder"

	info := req.Info
	if info.PaymentMethod == "" {
		info.PaymentMethod = domain.DefaultPaymentMethod
	}

	if err := ValidateCheckoutInfo(&info); err != nil {
		return nil, e.Wrap(op, err)
	}

	store := c.carts.Cart(ctx, req.SessionID)
	snapshot := store.Snapshot()
	if len(snapshot.Lines) == 0 {
		return nil, e.Wrap(op, e.ErrEmptyCart)
	}

	submission := domain.NewOrderSubmission(info, snapshot.Lines, c.now())
	if err := c.shopAPI.CreateOrder(ctx, submission); err != nil {
		return nil, e.Wrap(op, err)
	}

	store.Clear(ctx)

	confirmation := &domain.OrderConfirmation{
		OrderNumber: c.orderNumber(),
		Customer:    info,
		Total:       snapshot.CartTotal,
		Date:        submission.Date,
	}

	if c.publisher != nil {
		if err := c.publisher.PublishOrderPlaced(ctx, req.SessionID, confirmation); err != nil {
			c.logger.Warnf("failed to publish order placed event: %v", e.Wrap(op, err))
		}
	}

	c.logger.Infof("order #%d placed: %d items, total %s", confirmation.OrderNumber, snapshot.TotalItems, snapshot.CartTotal)

	return confirmation, nil
}

// ValidateCheckoutInfo проверяет поля формы по порядку и возвращает первую ошибку как *e.ValidationError.
func ValidateCheckoutInfo(info *domain.CheckoutInfo) error {
	for _, rule := range checkoutRules {
		v := rule.value(info)
		if strings.TrimSpace(v) == "" || !rule.re.MatchString(v) {
			return e.NewValidationError(rule.field, rule.message)
		}
	}

	return nil
}
