package domain

import "github.com/shopspring/decimal"

// DefaultProductName подставляется, если у товара нет названия на момент добавления.
const DefaultProductName = "Unnamed Product"

// CartLine — строка корзины, одна на товар.
// Name, UnitPrice и ImageURL фиксируются при добавлении и не синхронизируются с каталогом.
type CartLine struct {
	ProductID string
	Name      string
	UnitPrice decimal.Decimal
	ImageURL  string // Пустая строка — картинки нет
	Quantity  int
}

// Subtotal возвращает UnitPrice × Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// NewCartLine создаёт строку корзины из товара.
func NewCartLine(product *CatalogProduct, quantity int) CartLine {
	name := product.Name
	if name == "" {
		name = DefaultProductName
	}

	return CartLine{
		ProductID: product.ID,
		Name:      name,
		UnitPrice: product.Price,
		ImageURL:  product.ThumbnailURL(),
		Quantity:  quantity,
	}
}
