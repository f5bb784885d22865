// Package catalog превращает список товаров и состояние фильтров в список для показа.
package catalog

import (
	"sort"
	"strings"

	"github.com/DRSN-tech/storefront-bff/internal/domain"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Result — товары для показа и их количество.
type Result struct {
	Products []domain.CatalogProduct
	Count    int
}

// ViewModel применяет фильтры и сортировку. Чистая функция от входа, входной срез не меняется.
type ViewModel struct {
	locale language.Tag
}

// NewViewModel создаёт ViewModel. locale — BCP 47 тег для name_asc; некорректный тег даёт English.
func NewViewModel(locale string) *ViewModel {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}

	return &ViewModel{locale: tag}
}

// Apply фильтрует и сортирует товары в фиксированном порядке:
// наличие, поиск по имени, категория, сортировка.
func (v *ViewModel) Apply(products []domain.CatalogProduct, f Filter) Result {
	out := make([]domain.CatalogProduct, 0, len(products))
	query := strings.ToLower(f.SearchText)

	for _, p := range products {
		if f.AvailableOnly && !p.IsAvailable {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if f.CategoryName != "" && f.CategoryName != AllCategories && p.Category != f.CategoryName {
			continue
		}
		out = append(out, p)
	}

	v.sort(out, f.SortKey)

	return Result{
		Products: out,
		Count:    len(out),
	}
}

func (v *ViewModel) sort(products []domain.CatalogProduct, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortNameAsc:
		// collate.Collator не потокобезопасен, поэтому создаётся на вызов
		c := collate.New(v.locale)
		sort.SliceStable(products, func(i, j int) bool {
			return c.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortNewest:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].NumericID() > products[j].NumericID()
		})
	}
}

// ResolveCategoryName возвращает имя категории с данным id.
// Пустой id, пустой список категорий или отсутствие совпадения дают AllCategories.
func ResolveCategoryName(categoryID string, categories []domain.Category) string {
	if categoryID == "" {
		return AllCategories
	}

	for _, c := range categories {
		if c.ID == categoryID {
			return c.Name
		}
	}

	return AllCategories
}
