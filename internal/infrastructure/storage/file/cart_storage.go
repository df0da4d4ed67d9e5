package file

import (
	"context"
	"encoding/json"
	"os"

	"github.com/pkg/errors"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

// CartStorage persists the cart snapshot as a single JSON file on disk, the
// server-side analog of the browser localStorage slot the storefront started
// out with.
type CartStorage struct {
	path string
}

// NewCartStorage creates a file-backed cart slot at the given path.
func NewCartStorage(path string) *CartStorage {
	return &CartStorage{path: path}
}

// Save overwrites the file with the given snapshot.
func (s *CartStorage) Save(_ context.Context, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart snapshot")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "write cart file %q", s.path)
	}
	return nil
}

// Load reads the file. A missing file yields (nil, nil); malformed content is
// an error the caller recovers from with an empty cart.
func (s *CartStorage) Load(_ context.Context) ([]domain.CartItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "read cart file %q", s.path)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "parse cart file %q", s.path)
	}
	return items, nil
}
