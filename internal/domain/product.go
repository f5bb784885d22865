package domain

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// CatalogProduct описывает товар витрины. Данные приходят из API магазина уже нормализованными.
type CatalogProduct struct {
	ID            string
	Name          string
	Price         decimal.Decimal
	PreviousPrice *decimal.Decimal
	Category      string // Название категории
	IsAvailable   bool
	OnPromotion   bool
	Images        []Image
	Image         string // Картинка уровня товара, если API не прислал список
}

// NumericID возвращает id как число. Нечисловой id, NaN и бесконечность считаются нулём.
func (p *CatalogProduct) NumericID() float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(p.ID), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}

	return n
}

// ThumbnailURL возвращает первую картинку товара, затем картинку уровня товара, иначе пустую строку.
func (p *CatalogProduct) ThumbnailURL() string {
	if len(p.Images) > 0 && p.Images[0].URL != "" {
		return p.Images[0].URL
	}

	return p.Image
}
