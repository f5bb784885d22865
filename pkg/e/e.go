package e

import (
	"errors"
	"fmt"
)

var (
	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Ошибки внешнего API магазина
	ErrUpstream            = fmt.Errorf("shop api request failed")
	ErrUpstreamUnavailable = fmt.Errorf("shop api is unavailable")

	// Ошибки кэша
	ErrCacheMiss = fmt.Errorf("cache miss")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrInvalidJSON         = fmt.Errorf("invalid json body")
	ErrMissingProductID    = fmt.Errorf("product id is required")
	ErrInvalidQuantity     = fmt.Errorf("quantity must be a positive integer up to 9999")
	ErrInvalidOrderStatus  = fmt.Errorf("invalid order status")
	ErrInvalidOrderPeriod  = fmt.Errorf("invalid order period")
	ErrInvalidCheckoutInfo = fmt.Errorf("invalid checkout info")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")

	// 409 Conflict
	ErrEmptyCart = fmt.Errorf("cart is empty")

	// 401 Unauthorized
	ErrUnauthorized = fmt.Errorf("authorization token is required")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationError описывает ошибку валидации конкретного поля формы.
type ValidationError struct {
	Field   string
	Message string
}

func NewValidationError(field string, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

func (v *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

func (v *ValidationError) Unwrap() error {
	return ErrInvalidCheckoutInfo
}

// AsValidationError извлекает ValidationError из цепочки ошибок.
func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}

	return nil, false
}
