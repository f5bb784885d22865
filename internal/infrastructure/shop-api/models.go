package shop_api

import "encoding/json"

// rawProduct — товар в том виде, как его отдаёт API магазина.
// Типы полей не гарантированы: цена и флаги приходят то строкой, то числом, то bool.
// Поэтому все поля читаются как json.RawMessage и приводятся в normalize.go.
type rawProduct struct {
	ID            json.RawMessage   `json:"id"`
	Name          json.RawMessage   `json:"name"`
	Price         json.RawMessage   `json:"price"`
	PreviousPrice json.RawMessage   `json:"previousPrice"`
	Category      json.RawMessage   `json:"category"`
	IsAvailable   json.RawMessage   `json:"isAvailable"`
	OnPromotion   json.RawMessage   `json:"onPromotion"`
	Images        []json.RawMessage `json:"images"`
	Image         json.RawMessage   `json:"image"`
}

// rawImage — объектная форма изображения: {path|url, blurHash}.
type rawImage struct {
	Path     string `json:"path"`
	URL      string `json:"url"`
	BlurHash string `json:"blurHash"`
}

type rawCategory struct {
	ID    json.RawMessage `json:"id"`
	Name  json.RawMessage `json:"name"`
	Image json.RawMessage `json:"image"`
}

type rawNamed struct {
	Name json.RawMessage `json:"name"`
}

type rawOrder struct {
	ID              json.RawMessage   `json:"id"`
	CustomerName    json.RawMessage   `json:"customerName"`
	CustomerEmail   json.RawMessage   `json:"customerEmail"`
	CustomerPhone   json.RawMessage   `json:"customerPhone"`
	City            json.RawMessage   `json:"city"`
	CustomerAddress json.RawMessage   `json:"customerAddress"`
	PaymentMethod   json.RawMessage   `json:"paymentMethod"`
	Status          json.RawMessage   `json:"status"`
	Date            json.RawMessage   `json:"date"`
	Products        []rawOrderProduct `json:"products"`
}

type rawOrderProduct struct {
	ID       json.RawMessage `json:"id"`
	Name     json.RawMessage `json:"name"`
	Price    json.RawMessage `json:"price"`
	Quantity json.RawMessage `json:"quantity"`
}

// orderRequest — тело POST /orders.
type orderRequest struct {
	CustomerName    string                `json:"customerName"`
	CustomerEmail   string                `json:"customerEmail"`
	CustomerPhone   string                `json:"customerPhone"`
	City            string                `json:"city"`
	CustomerAddress string                `json:"customerAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	Date            string                `json:"date"`
	Status          string                `json:"status"`
	Products        []orderProductRequest `json:"products"`
}

type orderProductRequest struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Price    json.Number `json:"price"`
	Quantity int         `json:"quantity"`
}

type statusRequest struct {
	Status string `json:"status"`
}
