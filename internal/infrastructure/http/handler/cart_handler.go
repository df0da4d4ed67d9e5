package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/response"
)

// CartHandler handles HTTP requests for the shopping cart
type CartHandler struct {
	service *service.CartService
	logger  *slog.Logger
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *service.CartService, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger,
	}
}

// GetCart handles GET /cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Get(r.Context()))
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req dto.AddCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	cart, err := h.service.AddProduct(r.Context(), req.ProductID)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, err)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusCreated, cart)
}

// UpdateItem handles PUT /cart/items/{id}. Quantities of zero or below remove
// the entry; unknown ids leave the cart unchanged.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, errors.New("product id must be an integer"))
		return
	}

	var req dto.UpdateCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	response.JSON(w, http.StatusOK, h.service.SetQuantity(r.Context(), id, req.Quantity))
}

// RemoveItem handles DELETE /cart/items/{id}. Removing an id that is not in
// the cart is a no-op, not an error.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, errors.New("product id must be an integer"))
		return
	}

	response.JSON(w, http.StatusOK, h.service.RemoveItem(r.Context(), id))
}

// ClearCart handles DELETE /cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.service.Clear(r.Context()))
}
