package shop_api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/cfg"
	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/DRSN-tech/storefront-bff/pkg/e"
	"github.com/DRSN-tech/storefront-bff/pkg/jitter"
	"github.com/DRSN-tech/storefront-bff/pkg/logger"
)

const maxErrorBody = 4 << 10

// Client — клиент REST API магазина. Все данные нормализуются здесь, выше по стеку уходят только строгие типы.
type Client struct {
	baseURL string
	http    *http.Client
	images  usecase.ImageURLResolver
	retry   jitter.Policy
	logger  logger.Logger
}

func NewClient(config *cfg.ShopAPICfg, httpClient *http.Client, images usecase.ImageURLResolver, logger logger.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: config.Timeout}
	}

	return &Client{
		baseURL: config.BaseURL + "/api",
		http:    httpClient,
		images:  images,
		retry: jitter.Policy{
			Attempts: config.MaxRetries,
			Base:     config.RetryBackoff,
			Max:      config.MaxBackoff,
			Factor:   jitter.DefaultJitter,
		},
		logger: logger,
	}
}

// StatusError — ответ API магазина с кодом вне 2xx.
type StatusError struct {
	Method string
	Path   string
	Code   int
	Body   string
}

func (s *StatusError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", s.Method, s.Path, s.Code, s.Body)
}

func (s *StatusError) Unwrap() error {
	if s.Code == http.StatusUnauthorized || s.Code == http.StatusForbidden {
		return e.ErrUnauthorized
	}

	return e.ErrUpstream
}

// Products возвращает нормализованный список товаров.
func (c *Client) Products(ctx context.Context) ([]domain.CatalogProduct, error) {
	const op = "Client.Products"

	var raw []rawProduct
	if err := c.getJSON(ctx, "/products", &raw); err != nil {
		return nil, e.Wrap(op, err)
	}

	products := make([]domain.CatalogProduct, 0, len(raw))
	for _, r := range raw {
		products = append(products, normalizeProduct(ctx, r, c.images))
	}

	return products, nil
}

// Categories возвращает нормализованный список категорий.
func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "Client.Categories"

	var raw []rawCategory
	if err := c.getJSON(ctx, "/categories", &raw); err != nil {
		return nil, e.Wrap(op, err)
	}

	categories := make([]domain.Category, 0, len(raw))
	for _, r := range raw {
		categories = append(categories, normalizeCategory(ctx, r, c.images))
	}

	return categories, nil
}

// CreateOrder отправляет заказ. Токен администратора сюда не передаётся никогда.
// Повторов нет: POST не идемпотентен.
func (c *Client) CreateOrder(ctx context.Context, order *domain.OrderSubmission) error {
	const op = "Client.CreateOrder"

	body := orderRequest{
		CustomerName:    order.Customer.CustomerName,
		CustomerEmail:   order.Customer.CustomerEmail,
		CustomerPhone:   order.Customer.CustomerPhone,
		City:            order.Customer.City,
		CustomerAddress: order.Customer.CustomerAddress,
		PaymentMethod:   order.Customer.PaymentMethod,
		Date:            order.Date.UTC().Format(time.RFC3339),
		Status:          string(order.Status),
		Products:        make([]orderProductRequest, 0, len(order.Products)),
	}
	for _, p := range order.Products {
		body.Products = append(body.Products, orderProductRequest{
			ID:       p.ProductID,
			Name:     p.Name,
			Price:    json.Number(p.Price.String()),
			Quantity: p.Quantity,
		})
	}

	if err := c.send(ctx, http.MethodPost, "/orders", "", body); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Orders возвращает все заказы. Требует токен администратора.
func (c *Client) Orders(ctx context.Context, token string) ([]domain.Order, error) {
	const op = "Client.Orders"

	var raw []rawOrder
	if err := c.getJSONWithToken(ctx, "/orders", token, &raw); err != nil {
		return nil, e.Wrap(op, err)
	}

	orders := make([]domain.Order, 0, len(raw))
	for _, r := range raw {
		orders = append(orders, normalizeOrder(r))
	}

	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token string, id string, status domain.OrderStatus) error {
	const op = "Client.UpdateOrderStatus"

	path := "/orders/" + url.PathEscape(id) + "/status"
	if err := c.send(ctx, http.MethodPut, path, token, statusRequest{Status: string(status)}); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) DeleteOrder(ctx context.Context, token string, id string) error {
	const op = "Client.DeleteOrder"

	if err := c.send(ctx, http.MethodDelete, "/orders/"+url.PathEscape(id), token, nil); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.getJSONWithToken(ctx, path, "", out)
}

// getJSONWithToken выполняет GET с повторами на сетевых ошибках и 5xx.
func (c *Client) getJSONWithToken(ctx context.Context, path string, token string, out any) error {
	return jitter.Retry(ctx, c.retry,
		func(ctx context.Context) error {
			data, err := c.do(ctx, http.MethodGet, path, token, nil)
			if err != nil {
				return err
			}

			if err := json.Unmarshal(data, out); err != nil {
				return fmt.Errorf("decode %s: %w: %v", path, e.ErrUpstream, err)
			}

			return nil
		},
		isRetryable,
		func(attempt int, wait time.Duration, err error) {
			c.logger.Warnf("shop api GET %s failed, retrying in %v (attempt %d): %v", path, wait, attempt, err)
		},
	)
}

func (c *Client) send(ctx context.Context, method string, path string, token string, body any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	_, err := c.do(ctx, method, path, token, payload)
	return err
}

func (c *Client) do(ctx context.Context, method string, path string, token string, payload []byte) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, e.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(snippet)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w: %v", method, path, e.ErrUpstreamUnavailable, err)
	}

	return data, nil
}

func isRetryable(err error) bool {
	if errors.Is(err, e.ErrUpstreamUnavailable) {
		return true
	}

	var sErr *StatusError
	if errors.As(err, &sErr) {
		return sErr.Code >= http.StatusInternalServerError
	}

	return false
}
