package dto

import (
	"github.com/shopspring/decimal"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// AddCartItemRequest represents the request to add one unit of a product
type AddCartItemRequest struct {
	ProductID int `json:"product_id"`
}

// UpdateCartItemRequest sets an entry's quantity exactly; zero or negative
// values remove the entry
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartItemResponse represents one cart entry with its line total
type CartItemResponse struct {
	ProductResponse
	CartQuantity int             `json:"cartQuantity"`
	LineTotal    decimal.Decimal `json:"line_total"`
}

// CartResponse represents the full cart with derived totals
type CartResponse struct {
	Items     []CartItemResponse `json:"items"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"item_count"`
}

// ToCartResponse converts a cart snapshot plus derived totals to CartResponse
func ToCartResponse(items []domain.CartItem, total decimal.Decimal, itemCount int) CartResponse {
	responses := make([]CartItemResponse, len(items))
	for i, item := range items {
		responses[i] = CartItemResponse{
			ProductResponse: ToProductResponse(item.Product),
			CartQuantity:    item.CartQuantity,
			LineTotal:       item.Price.Mul(decimal.NewFromInt(int64(item.CartQuantity))),
		}
	}
	return CartResponse{
		Items:     responses,
		Total:     total,
		ItemCount: itemCount,
	}
}
