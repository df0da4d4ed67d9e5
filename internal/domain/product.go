package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// Product represents a catalog entry. Products are loaded once at startup and
// never mutated afterwards; Quantity is a unit-size label ("1 kg"), not an amount.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Image       string          `json:"image"`
	Description string          `json:"description"`
	Quantity    string          `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Featured    bool            `json:"featured"`
	Ingredients []string        `json:"ingredients"`
	Allergens   []string        `json:"allergens"`
}

// Catalog is the ordered, read-only product list. Order is significant: it is
// the tie-break order for every sort key.
type Catalog []Product

// FindByID returns the product with the given id.
func (c Catalog) FindByID(id int) (Product, error) {
	for _, p := range c {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}

// Categories returns the distinct categories in catalog order.
func (c Catalog) Categories() []string {
	seen := make(map[string]bool, len(c))
	categories := make([]string, 0, len(c))
	for _, p := range c {
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}
	return categories
}

// PriceBounds returns the minimum and maximum catalog price. ok is false for
// an empty catalog.
func (c Catalog) PriceBounds() (min, max decimal.Decimal, ok bool) {
	if len(c) == 0 {
		return decimal.Zero, decimal.Zero, false
	}
	min, max = c[0].Price, c[0].Price
	for _, p := range c[1:] {
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}
	return min, max, true
}
