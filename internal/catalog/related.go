package catalog

import (
	"strings"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
)

// RelatedLimit — сколько похожих товаров показывается на странице товара.
const RelatedLimit = 4

// Related возвращает до limit товаров в наличии из категории product, кроме него самого,
// в порядке каталога. Категории сравниваются без учёта регистра и пробелов по краям.
// Товар без категории похожих не имеет.
func Related(products []domain.CatalogProduct, product domain.CatalogProduct, limit int) []domain.CatalogProduct {
	category := strings.TrimSpace(product.Category)
	out := make([]domain.CatalogProduct, 0, limit)
	if category == "" || limit <= 0 {
		return out
	}

	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID == product.ID || !p.IsAvailable {
			continue
		}
		if !strings.EqualFold(strings.TrimSpace(p.Category), category) {
			continue
		}
		out = append(out, p)
	}

	return out
}
