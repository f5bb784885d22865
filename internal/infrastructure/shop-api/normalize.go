package shop_api

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/DRSN-tech/storefront-bff/internal/usecase"
	"github.com/shopspring/decimal"
)

// normalizeProduct приводит сырой товар к строгой модели. Вызывается один раз на границе API.
func normalizeProduct(ctx context.Context, raw rawProduct, images usecase.ImageURLResolver) domain.CatalogProduct {
	p := domain.CatalogProduct{
		ID:          parseID(raw.ID),
		Name:        parseString(raw.Name),
		Price:       parseDecimal(raw.Price),
		Category:    parseCategoryName(raw.Category),
		IsAvailable: parseBoolean(raw.IsAvailable),
		OnPromotion: parseBoolean(raw.OnPromotion),
		Images:      make([]domain.Image, 0, len(raw.Images)),
	}

	if prev, ok := parseOptionalDecimal(raw.PreviousPrice); ok {
		p.PreviousPrice = &prev
	}

	for _, rawImg := range raw.Images {
		img, ok := normalizeImage(ctx, rawImg, images)
		if ok {
			p.Images = append(p.Images, img)
		}
	}

	if path := parseString(raw.Image); path != "" {
		p.Image = images.Resolve(ctx, path)
	}

	return p
}

func normalizeCategory(ctx context.Context, raw rawCategory, images usecase.ImageURLResolver) domain.Category {
	c := domain.Category{
		ID:   parseID(raw.ID),
		Name: parseString(raw.Name),
	}
	if path := parseString(raw.Image); path != "" {
		c.Image = images.Resolve(ctx, path)
	}

	return c
}

func normalizeOrder(raw rawOrder) domain.Order {
	o := domain.Order{
		ID: parseID(raw.ID),
		Customer: domain.CheckoutInfo{
			CustomerName:    parseString(raw.CustomerName),
			CustomerEmail:   parseString(raw.CustomerEmail),
			CustomerPhone:   parseString(raw.CustomerPhone),
			City:            parseString(raw.City),
			CustomerAddress: parseString(raw.CustomerAddress),
			PaymentMethod:   parseString(raw.PaymentMethod),
		},
		Status:   domain.OrderStatus(parseString(raw.Status)),
		Total:    decimal.Zero,
		Products: make([]domain.OrderLine, 0, len(raw.Products)),
	}

	if t, err := time.Parse(time.RFC3339Nano, parseString(raw.Date)); err == nil {
		o.Date = t
	}

	for _, rp := range raw.Products {
		line := domain.OrderLine{
			ProductID: parseID(rp.ID),
			Name:      parseString(rp.Name),
			Price:     parseDecimal(rp.Price),
			Quantity:  int(parseDecimal(rp.Quantity).IntPart()),
		}
		o.Total = o.Total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
		o.Products = append(o.Products, line)
	}

	return o
}

// normalizeImage принимает строку-путь или объект {path|url, blurHash}. Пустая ссылка отбрасывается.
func normalizeImage(ctx context.Context, raw json.RawMessage, images usecase.ImageURLResolver) (domain.Image, bool) {
	var path string
	if err := json.Unmarshal(raw, &path); err == nil {
		url := images.Resolve(ctx, path)
		return domain.NewImage(url, ""), url != ""
	}

	var obj rawImage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return domain.Image{}, false
	}

	src := obj.Path
	if src == "" {
		src = obj.URL
	}

	url := images.Resolve(ctx, src)
	return domain.NewImage(url, obj.BlurHash), url != ""
}

// parseBoolean: false, 0, null, отсутствие поля и строка "false" в любом регистре — false, всё остальное — true.
func parseBoolean(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return false
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}

	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case float64:
		return t != 0
	case string:
		return strings.ToLower(t) != "false"
	default:
		return true
	}
}

// parseDecimal читает число или числовую строку; всё остальное — 0.
func parseDecimal(raw json.RawMessage) decimal.Decimal {
	d, ok := parseOptionalDecimal(raw)
	if !ok {
		return decimal.Zero
	}

	return d
}

func parseOptionalDecimal(raw json.RawMessage) (decimal.Decimal, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return decimal.Decimal{}, false
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		d, err := decimal.NewFromString(strings.TrimSpace(s))
		return d, err == nil
	}

	return decimal.Decimal{}, false
}

// parseID принимает id строкой или числом.
func parseID(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}

	return ""
}

// parseString принимает строку или текст числа и bool. null, массив и объект дают пустую строку.
func parseString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return ""
	}

	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	default:
		return ""
	}
}

// parseCategoryName принимает категорию строкой или объектом с полем name.
func parseCategoryName(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var named rawNamed
	if err := json.Unmarshal(raw, &named); err == nil {
		return parseString(named.Name)
	}

	return ""
}
