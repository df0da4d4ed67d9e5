package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/dto"
	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/response"
)

// OrderHandler handles checkout and contact-form submissions
type OrderHandler struct {
	service *service.OrderService
	logger  *slog.Logger
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *service.OrderService, logger *slog.Logger) *OrderHandler {
	return &OrderHandler{
		service: service,
		logger:  logger,
	}
}

// Checkout handles POST /orders
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req dto.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	order, err := h.service.Checkout(r.Context(), req)
	if err != nil {
		switch {
		case isValidationError(err):
			response.Error(w, http.StatusBadRequest, err)
		case errors.Is(err, service.ErrEmptyCart):
			response.Error(w, http.StatusConflict, err)
		default:
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusCreated, order)
}

// Contact handles POST /contact
func (h *OrderHandler) Contact(w http.ResponseWriter, r *http.Request) {
	var req dto.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to decode request body",
			slog.String("error", err.Error()),
		)
		response.Error(w, http.StatusBadRequest, err)
		return
	}

	links, err := h.service.Contact(r.Context(), req)
	if err != nil {
		if isValidationError(err) {
			response.Error(w, http.StatusBadRequest, err)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, links)
}

func isValidationError(err error) bool {
	var verrs validator.ValidationErrors
	return errors.As(err, &verrs)
}
