package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/response"
)

// CatalogHandler handles HTTP requests for browsing the product catalog
type CatalogHandler struct {
	service *service.CatalogService
	logger  *slog.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(service *service.CatalogService, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{
		service: service,
		logger:  logger,
	}
}

// ListProducts handles GET /products with optional search, category,
// price_min, price_max and sort query parameters.
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	state := domain.FilterState{
		Search:   query.Get("search"),
		Category: query.Get("category"),
		Sort:     domain.ParseSortKey(query.Get("sort")),
	}

	for param, bound := range map[string]**decimal.Decimal{
		"price_min": &state.PriceMin,
		"price_max": &state.PriceMax,
	} {
		raw := query.Get(param)
		if raw == "" {
			continue
		}
		value, err := decimal.NewFromString(raw)
		if err != nil {
			response.Error(w, http.StatusBadRequest, errors.Wrapf(err, "invalid %s", param))
			return
		}
		*bound = &value
	}

	products := h.service.ListProducts(r.Context(), state)
	response.JSON(w, http.StatusOK, products)
}

// GetProduct handles GET /products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, errors.New("product id must be an integer"))
		return
	}

	product, err := h.service.GetProductByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, err)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, product)
}

// ListCategories handles GET /categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Categories(r.Context()))
}
