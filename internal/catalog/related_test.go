package catalog

import (
	"testing"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestRelated(t *testing.T) {
	products := []domain.CatalogProduct{
		product("1", "Linen Shirt", 50, "Shirts", true),
		product("2", "Oxford", 40, " shirts ", true),
		product("3", "Flannel", 30, "SHIRTS", false),
		product("4", "Denim Jacket", 120, "Jackets", true),
		product("5", "Polo", 25, "Shirts", true),
		product("6", "Henley", 35, "Shirts", true),
		product("7", "Tee", 15, "Shirts", true),
		product("8", "Tank", 10, "Shirts", true),
	}

	tests := []struct {
		name    string
		product domain.CatalogProduct
		limit   int
		expect  []string
	}{
		{name: "same category up to limit", product: products[0], limit: RelatedLimit, expect: []string{"2", "5", "6", "7"}},
		{name: "category match ignores case and spaces", product: products[1], limit: 2, expect: []string{"1", "5"}},
		{name: "only the product in category", product: products[3], limit: RelatedLimit, expect: []string{}},
		{name: "no category", product: product("9", "Mystery", 1, "  ", true), limit: RelatedLimit, expect: []string{}},
		{name: "zero limit", product: products[0], limit: 0, expect: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, ids(Related(products, tt.product, tt.limit)))
		})
	}
}
