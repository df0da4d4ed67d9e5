package dto

import (
	"github.com/shopspring/decimal"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// ProductResponse represents a catalog product in API responses
type ProductResponse struct {
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

// ToProductResponse converts a domain Product to ProductResponse
func ToProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Image:       p.Image,
		Description: p.Description,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Category:    p.Category,
		Featured:    p.Featured,
		Ingredients: p.Ingredients,
		Allergens:   p.Allergens,
	}
}

// ToProductResponseList converts a list of domain Products to ProductResponse list
func ToProductResponseList(products []domain.Product) []ProductResponse {
	responses := make([]ProductResponse, len(products))
	for i, p := range products {
		responses[i] = ToProductResponse(p)
	}
	return responses
}

// CategoriesResponse lists the selectable category pills ("all" first) plus
// the catalog price bounds the price slider starts from
type CategoriesResponse struct {
	Categories []string         `json:"categories"`
	PriceMin   *decimal.Decimal `json:"price_min,omitempty"`
	PriceMax   *decimal.Decimal `json:"price_max,omitempty"`
}
