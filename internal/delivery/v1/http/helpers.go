package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/storefront-bff/internal/cart"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
)

const maxJSONBodySize = 1 << 20

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	if vErr, ok := e.AsValidationError(err); ok {
		return http.StatusUnprocessableEntity, vErr.Message
	}

	switch {
	case errors.Is(err, e.ErrInvalidJSON):
		return http.StatusBadRequest, e.ErrInvalidJSON.Error()
	case errors.Is(err, e.ErrMissingProductID):
		return http.StatusBadRequest, e.ErrMissingProductID.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidOrderStatus):
		return http.StatusBadRequest, e.ErrInvalidOrderStatus.Error()
	case errors.Is(err, e.ErrInvalidOrderPeriod):
		return http.StatusBadRequest, e.ErrInvalidOrderPeriod.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrEmptyCart):
		return http.StatusConflict, e.ErrEmptyCart.Error()
	case errors.Is(err, e.ErrUpstreamUnavailable):
		return http.StatusServiceUnavailable, e.ErrUpstreamUnavailable.Error()
	case errors.Is(err, e.ErrUpstream):
		return http.StatusBadGateway, e.ErrUpstream.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	resp := NewErrorResponse(code, msg)
	if vErr, ok := e.AsValidationError(err); ok {
		resp.Field = vErr.Field
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// decodeJSON читает тело запроса в dst. Неизвестные поля допускаются, лишние данные после объекта — нет.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", e.ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: trailing data", e.ErrInvalidJSON)
	}

	return nil
}

// bearerToken достаёт токен из Authorization: Bearer <token>. Токен не проверяется.
func bearerToken(r *http.Request) string {
	const prefix = "bearer "

	h := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(h) <= len(prefix) || !strings.EqualFold(h[:len(prefix)], prefix) {
		return ""
	}

	return strings.TrimSpace(h[len(prefix):])
}

// parseQuantityParam: отсутствие параметра — 0, то есть одна единица. Допустимо от 0 до cart.MaxLineQuantity.
func parseQuantityParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("quantity")
	if raw == "" {
		return 0, nil
	}

	q, err := strconv.Atoi(raw)
	if err != nil || q < 0 || q > cart.MaxLineQuantity {
		return 0, e.ErrInvalidQuantity
	}

	return q, nil
}

// parseBoolParam возвращает def, если параметр не задан.
func parseBoolParam(r *http.Request, name string, def bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseBool(raw)
	if err != nil {
		return def, e.Wrap(name, e.ErrStatusBadRequest)
	}

	return v, nil
}
