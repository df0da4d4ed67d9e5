package redis

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/config"
)

// CartStorage persists the cart snapshot as a single JSON value under a fixed
// redis key.
type CartStorage struct {
	client *redis.Client
	key    string
}

// NewCartStorage creates a redis-backed cart slot under the given key.
func NewCartStorage(cfg config.RedisConfig, key string) *CartStorage {
	return &CartStorage{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		key: key,
	}
}

// Save overwrites the key with the given snapshot. The cart survives restarts,
// so no TTL is set.
func (s *CartStorage) Save(ctx context.Context, items []domain.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return errors.Wrap(err, "marshal cart snapshot")
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Wrapf(err, "set cart key %q", s.key)
	}
	return nil
}

// Load reads the key. A missing key yields (nil, nil).
func (s *CartStorage) Load(ctx context.Context) ([]domain.CartItem, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "get cart key %q", s.key)
	}

	var items []domain.CartItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.Wrapf(err, "parse cart key %q", s.key)
	}
	return items, nil
}

// Close releases the underlying redis connection.
func (s *CartStorage) Close() error {
	return s.client.Close()
}
