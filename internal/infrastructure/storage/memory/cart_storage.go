package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// CartStorage is an in-memory implementation of domain.CartStorage. It keeps
// the serialized snapshot rather than the items so the JSON round trip is
// exercised the same way the durable backends exercise it.
type CartStorage struct {
	mu   sync.RWMutex
	data []byte
}

// NewCartStorage creates an empty in-memory cart slot.
func NewCartStorage() *CartStorage {
	return &CartStorage{}
}

// Save overwrites the slot with the given snapshot.
func (s *CartStorage) Save(_ context.Context, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = data
	return nil
}

// Load reads the slot; an untouched slot yields (nil, nil).
func (s *CartStorage) Load(_ context.Context) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.data == nil {
		return nil, nil
	}
	var items []domain.CartItem
	if err := json.Unmarshal(s.data, &items); err != nil {
		return nil, err
	}
	return items, nil
}
