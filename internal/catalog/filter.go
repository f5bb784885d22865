package catalog

import "strings"

// AllCategories — служебное значение categoryName: фильтр по категории не применяется.
const AllCategories = "All"

// SortKey — способ сортировки витрины.
type SortKey string

const (
	SortBestMatch SortKey = "best_match"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
)

// ParseSortKey возвращает SortKey; неизвестное значение даёт best_match.
func ParseSortKey(s string) SortKey {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortNewest, SortPriceAsc, SortPriceDesc, SortNameAsc:
		return k
	default:
		return SortBestMatch
	}
}

// Filter — состояние фильтров страницы каталога.
type Filter struct {
	SearchText    string
	CategoryName  string
	SortKey       SortKey
	AvailableOnly bool
}

// DefaultFilter — состояние фильтров при входе на страницу.
func DefaultFilter() Filter {
	return Filter{
		CategoryName:  AllCategories,
		SortKey:       SortBestMatch,
		AvailableOnly: true,
	}
}
