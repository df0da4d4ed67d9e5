package domain

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of the visible product list.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNameAsc   SortKey = "name"
	SortPriceAsc  SortKey = "price-low"
	SortPriceDesc SortKey = "price-high"
)

// ParseSortKey maps a raw string onto a SortKey, defaulting to featured-first.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortNameAsc, SortPriceAsc, SortPriceDesc:
		return SortKey(raw)
	default:
		return SortFeatured
	}
}

// CategoryAll is the sentinel category matching every product.
const CategoryAll = "all"

// FilterState captures the browse controls: search box, category pill, price
// bounds and sort order. It is ephemeral, supplied per request, never persisted.
type FilterState struct {
	Search   string
	Category string
	PriceMin *decimal.Decimal
	PriceMax *decimal.Decimal
	Sort     SortKey
}

// VisibleProducts computes the displayed subset of the catalog for the given
// filter state. The function is pure and deterministic: identical inputs yield
// identical output including tie-break order, and the catalog slice is never
// mutated. An empty result is a valid outcome, not an error.
func VisibleProducts(catalog Catalog, state FilterState) []Product {
	visible := make([]Product, 0, len(catalog))
	search := strings.ToLower(state.Search)
	for _, p := range catalog {
		if state.Category != "" && state.Category != CategoryAll && p.Category != state.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if state.PriceMin != nil && p.Price.LessThan(*state.PriceMin) {
			continue
		}
		if state.PriceMax != nil && p.Price.GreaterThan(*state.PriceMax) {
			continue
		}
		visible = append(visible, p)
	}

	sortProducts(visible, state.Sort)
	return visible
}

// matchesSearch reports whether the lowercased term is a substring of the
// product name, description, or any ingredient.
func matchesSearch(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, ingredient := range p.Ingredients {
		if strings.Contains(strings.ToLower(ingredient), term) {
			return true
		}
	}
	return false
}

func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortNameAsc:
		collator := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(products, func(i, j int) bool {
			return collator.CompareString(products[i].Name, products[j].Name) < 0
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	default:
		// Featured items first, catalog order within each group.
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Featured && !products[j].Featured
		})
	}
}
