package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	filestorage "github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/file"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/memory"
)

func newCartService(t *testing.T, storage domain.CartStorage) *CartService {
	t.Helper()
	tracer, meter, logger := testTelemetry()
	return NewCartService(context.Background(), testCatalog(), storage, tracer, meter, logger)
}

func TestCartService_AddProduct(t *testing.T) {
	svc := newCartService(t, memory.NewCartStorage())

	cart, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)

	cart, err = svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].CartQuantity)
	assert.Equal(t, "1300", cart.Total.String())
}

func TestCartService_AddUnknownProduct(t *testing.T) {
	svc := newCartService(t, memory.NewCartStorage())

	_, err := svc.AddProduct(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, 0, svc.Get(context.Background()).ItemCount)
}

func TestCartService_SetQuantityAndRemove(t *testing.T) {
	svc := newCartService(t, memory.NewCartStorage())
	_, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)

	cart := svc.SetQuantity(context.Background(), 1, 5)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].CartQuantity)

	cart = svc.SetQuantity(context.Background(), 1, 0)
	assert.Empty(t, cart.Items)
}

func TestCartService_UnknownIDMutationsLeaveCartUnchanged(t *testing.T) {
	svc := newCartService(t, memory.NewCartStorage())
	_, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	before := svc.Get(context.Background())

	svc.RemoveItem(context.Background(), 99)
	svc.SetQuantity(context.Background(), 99, 5)

	after := svc.Get(context.Background())
	assert.Equal(t, before.Items, after.Items)
	assert.Equal(t, before.Total.String(), after.Total.String())
}

func TestCartService_Clear(t *testing.T) {
	svc := newCartService(t, memory.NewCartStorage())
	_, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	_, err = svc.AddProduct(context.Background(), 2)
	require.NoError(t, err)

	cart := svc.Clear(context.Background())

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount)
	assert.Equal(t, "0", cart.Total.String())
}

func TestCartService_RoundTripThroughStorage(t *testing.T) {
	storage := memory.NewCartStorage()

	first := newCartService(t, storage)
	_, err := first.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	_, err = first.AddProduct(context.Background(), 2)
	require.NoError(t, err)
	first.SetQuantity(context.Background(), 2, 4)
	want := first.Get(context.Background())

	// A fresh service over the same slot reproduces the identical sequence.
	second := newCartService(t, storage)
	got := second.Get(context.Background())

	assert.Equal(t, want.Items, got.Items)
	assert.Equal(t, want.Total.String(), got.Total.String())
	assert.Equal(t, want.ItemCount, got.ItemCount)
}

func TestCartService_CorruptSlotYieldsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	require.NoError(t, os.WriteFile(path, []byte("invalid json"), 0o600))

	svc := newCartService(t, filestorage.NewCartStorage(path))

	cart := svc.Get(context.Background())
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.ItemCount)
}

func TestCartService_LoadFailureYieldsEmptyCart(t *testing.T) {
	storage := &stubStorage{loadErr: errors.New("slot unavailable")}

	svc := newCartService(t, storage)

	assert.Equal(t, 0, svc.Get(context.Background()).ItemCount)
}

func TestCartService_PersistFailureDoesNotSurface(t *testing.T) {
	storage := &stubStorage{saveErr: errors.New("disk full")}
	svc := newCartService(t, storage)

	cart, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
	assert.Equal(t, 1, storage.saves)
}

func TestCartService_EveryMutationPersists(t *testing.T) {
	storage := &stubStorage{}
	svc := newCartService(t, storage)

	_, err := svc.AddProduct(context.Background(), 1)
	require.NoError(t, err)
	svc.SetQuantity(context.Background(), 1, 3)
	svc.RemoveItem(context.Background(), 1)
	svc.Clear(context.Background())

	assert.Equal(t, 4, storage.saves)
	assert.Empty(t, storage.items)
}
