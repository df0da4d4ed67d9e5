package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/config"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/handler"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/storage/memory"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/telemetry"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	telem := telemetry.NewNoOpTelemetry(&config.OTLPConfig{ServiceName: "storefront-test"})
	tracer := telem.TracerProvider.Tracer("test")
	meter := telem.MeterProvider.Meter("test")
	logger := telem.Logger

	catalog := domain.Catalog{
		{ID: 1, Name: "Classic Vanilla Cake", Category: "cakes", Price: decimal.NewFromInt(650), Featured: true, Ingredients: []string{"flour", "vanilla"}},
		{ID: 2, Name: "Butter Croissant", Category: "pastries", Price: decimal.NewFromInt(90), Ingredients: []string{"flour", "butter"}},
		{ID: 3, Name: "Blueberry Muffin", Category: "muffins", Price: decimal.NewFromInt(200), Ingredients: []string{"blueberry"}},
	}

	business := config.BusinessConfig{
		Name:     "Its Cake Party",
		Currency: "₹",
		Contact: config.ContactConfig{
			PhoneDigits: "919551862527",
			Email:       "itscakeparty@gmail.com",
		},
	}

	catalogService := service.NewCatalogService(catalog, tracer, meter, logger)
	cartService := service.NewCartService(t.Context(), catalog, memory.NewCartStorage(), tracer, meter, logger)
	orderService := service.NewOrderService(cartService, business, tracer, meter, logger)
	favoritesService := service.NewFavoritesService(catalog, tracer, meter, logger)

	return NewServer(&config.ServerConfig{Host: "127.0.0.1", Port: "0"}, Handlers{
		Catalog:   handler.NewCatalogHandler(catalogService, logger),
		Cart:      handler.NewCartHandler(cartService, logger),
		Order:     handler.NewOrderHandler(orderService, logger),
		Favorites: handler.NewFavoritesHandler(favoritesService, logger),
	}, logger, telem)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)
	return rec
}

func TestServer_ListProducts(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 3)
	// Default sort is featured-first.
	assert.Equal(t, 1, products[0].ID)
}

func TestServer_ListProductsFiltered(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products?search=blueberry&category=all", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var products []dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "Blueberry Muffin", products[0].Name)
}

func TestServer_ListProductsBadPriceBound(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products?price_max=abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_GetProduct(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/products/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var product dto.ProductResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
	assert.Equal(t, "Butter Croissant", product.Name)

	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodGet, "/products/99", nil).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, srv, http.MethodGet, "/products/abc", nil).Code)
}

func TestServer_Categories(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var categories dto.CategoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, []string{"all", "cakes", "pastries", "muffins"}, categories.Categories)
	require.NotNil(t, categories.PriceMin)
	require.NotNil(t, categories.PriceMax)
	assert.Equal(t, "90", categories.PriceMin.String())
	assert.Equal(t, "650", categories.PriceMax.String())
}

func TestServer_CartFlow(t *testing.T) {
	srv := newTestServer(t)

	// Add twice, update, remove.
	rec := doJSON(t, srv, http.MethodPost, "/cart/items", dto.AddCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = doJSON(t, srv, http.MethodPost, "/cart/items", dto.AddCartItemRequest{ProductID: 1})
	require.Equal(t, http.StatusCreated, rec.Code)

	var cart dto.CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].CartQuantity)
	assert.Equal(t, "1300", cart.Total.String())

	rec = doJSON(t, srv, http.MethodPut, "/cart/items/1", dto.UpdateCartItemRequest{Quantity: 5})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Equal(t, 5, cart.ItemCount)

	rec = doJSON(t, srv, http.MethodDelete, "/cart/items/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestServer_AddUnknownProductToCart(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/cart/items", dto.AddCartItemRequest{ProductID: 99})

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_Checkout(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusCreated,
		doJSON(t, srv, http.MethodPost, "/cart/items", dto.AddCartItemRequest{ProductID: 2}).Code)

	rec := doJSON(t, srv, http.MethodPost, "/orders", dto.CheckoutRequest{
		Name:  "Priya",
		Email: "priya@example.com",
		Phone: "+91 90000 00000",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var order dto.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.NotEmpty(t, order.Reference)
	assert.Contains(t, order.WhatsAppURL, "wa.me/919551862527")

	// Checkout cleared the cart, so a second attempt conflicts.
	rec = doJSON(t, srv, http.MethodPost, "/orders", dto.CheckoutRequest{
		Name:  "Priya",
		Email: "priya@example.com",
		Phone: "+91 90000 00000",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestServer_CheckoutValidation(t *testing.T) {
	srv := newTestServer(t)
	require.Equal(t, http.StatusCreated,
		doJSON(t, srv, http.MethodPost, "/cart/items", dto.AddCartItemRequest{ProductID: 2}).Code)

	rec := doJSON(t, srv, http.MethodPost, "/orders", dto.CheckoutRequest{Name: "Priya"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Contact(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/contact", dto.ContactRequest{
		Name:    "Arun",
		Email:   "arun@example.com",
		Phone:   "12345",
		Message: "Hello",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var links dto.ContactResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &links))
	assert.Contains(t, links.WhatsAppURL, "wa.me/919551862527")
	assert.Contains(t, links.EmailURL, "mailto:itscakeparty@gmail.com")
}

func TestServer_Favorites(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodPost, "/favorites/2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/favorites", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		ProductIDs []int `json:"product_ids"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, []int{2}, list.ProductIDs)

	assert.Equal(t, http.StatusNotFound, doJSON(t, srv, http.MethodPost, "/favorites/99", nil).Code)
}

func TestServer_Health(t *testing.T) {
	srv := newTestServer(t)

	rec := doJSON(t, srv, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
