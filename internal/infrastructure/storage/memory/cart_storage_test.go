package memory

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
)

func TestCartStorage_EmptySlotIsAbsent(t *testing.T) {
	items, err := NewCartStorage().Load(context.Background())

	require.NoError(t, err)
	assert.Nil(t, items)
}

func TestCartStorage_RoundTrip(t *testing.T) {
	storage := NewCartStorage()

	saved := []domain.CartItem{
		{Product: domain.Product{ID: 7, Name: "Strawberry Cupcake", Price: decimal.NewFromInt(240)}, CartQuantity: 4},
	}
	require.NoError(t, storage.Save(context.Background(), saved))

	loaded, err := storage.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, loaded, 1)
	assert.Equal(t, 7, loaded[0].ID)
	assert.Equal(t, 4, loaded[0].CartQuantity)
	assert.Equal(t, "240", loaded[0].Price.String())
}
