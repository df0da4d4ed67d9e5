package domain

import "context"

// CartStorage persists the full cart snapshot under a single fixed slot.
// Implementations serialize the item sequence as a JSON array; any structurally
// invalid content is reported as an error and treated by callers as an absent
// cart, never as a fatal condition.
type CartStorage interface {
	// Save overwrites the slot with the given snapshot.
	Save(ctx context.Context, items []CartItem) error
	// Load reads the slot. An absent slot yields (nil, nil).
	Load(ctx context.Context) ([]CartItem, error)
}
