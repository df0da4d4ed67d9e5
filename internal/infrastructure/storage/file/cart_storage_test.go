package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

func TestCartStorage_RoundTrip(t *testing.T) {
	storage := NewCartStorage(filepath.Join(t.TempDir(), "cart.json"))

	items := []domain.CartItem{
		{
			Product: domain.Product{
				ID:          1,
				Name:        "Classic Vanilla Cake",
				Price:       decimal.NewFromInt(650),
				Category:    "cakes",
				Featured:    true,
				Ingredients: []string{"flour", "vanilla"},
				Allergens:   []string{"gluten"},
			},
			CartQuantity: 2,
		},
		{
			Product:      domain.Product{ID: 2, Name: "Butter Croissant", Price: decimal.NewFromInt(90)},
			CartQuantity: 1,
		},
	}

	require.NoError(t, storage.Save(context.Background(), items))

	loaded, err := storage.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, 1, loaded[0].ID)
	assert.Equal(t, 2, loaded[0].CartQuantity)
	assert.Equal(t, "650", loaded[0].Price.String())
	assert.Equal(t, []string{"flour", "vanilla"}, loaded[0].Ingredients)
	assert.Equal(t, 2, loaded[1].ID)
}

func TestCartStorage_MissingFileIsAbsent(t *testing.T) {
	storage := NewCartStorage(filepath.Join(t.TempDir(), "does-not-exist.json"))

	items, err := storage.Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCartStorage_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("invalid json"), 0o600))

	_, err := NewCartStorage(path).Load(context.Background())

	assert.Error(t, err)
}

func TestCartStorage_SaveOverwrites(t *testing.T) {
	storage := NewCartStorage(filepath.Join(t.TempDir(), "cart.json"))

	first := []domain.CartItem{{Product: domain.Product{ID: 1}, CartQuantity: 3}}
	require.NoError(t, storage.Save(context.Background(), first))
	require.NoError(t, storage.Save(context.Background(), nil))

	loaded, err := storage.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}
