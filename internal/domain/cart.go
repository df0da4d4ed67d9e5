package domain

import "github.com/shopspring/decimal"

// CartItem is a product plus the number of units selected for purchase.
// An item with CartQuantity <= 0 must never exist in a cart; transitions that
// would drive the quantity to zero or below remove the item instead.
type CartItem struct {
	Product
	CartQuantity int `json:"cartQuantity"`
}

// Cart holds the ordered item sequence, unique by product id. Insertion order
// is preserved for display. The type is a pure state machine: no transition
// touches storage, so the semantics are testable without a backend.
type Cart struct {
	items []CartItem
}

// NewCart creates a cart pre-populated with the given items. Used when
// restoring a persisted snapshot.
func NewCart(items []CartItem) *Cart {
	c := &Cart{items: make([]CartItem, 0, len(items))}
	c.items = append(c.items, items...)
	return c
}

// Add increments the quantity of an existing entry by one, or appends a new
// entry with quantity 1.
func (c *Cart) Add(p Product) {
	for i := range c.items {
		if c.items[i].ID == p.ID {
			c.items[i].CartQuantity++
			return
		}
	}
	c.items = append(c.items, CartItem{Product: p, CartQuantity: 1})
}

// Remove deletes the entry with the given product id. Removing an id that is
// not in the cart is a no-op, not an error.
func (c *Cart) Remove(id int) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity sets an entry's quantity exactly. Quantities of zero or below
// remove the entry. Unknown ids are a no-op.
func (c *Cart) SetQuantity(id, quantity int) {
	if quantity <= 0 {
		c.Remove(id)
		return
	}
	for i := range c.items {
		if c.items[i].ID == id {
			c.items[i].CartQuantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.items = c.items[:0]
}

// Total returns the sum of price * quantity over all entries.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.CartQuantity))))
	}
	return total
}

// UnitCount returns the total number of units across all entries, not the
// number of distinct products.
func (c *Cart) UnitCount() int {
	count := 0
	for _, item := range c.items {
		count += item.CartQuantity
	}
	return count
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	return len(c.items)
}

// Items returns a copy of the item sequence in insertion order.
func (c *Cart) Items() []CartItem {
	items := make([]CartItem, len(c.items))
	copy(items, c.items)
	return items
}
