package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/pkg/errors"

	"github.com/seesamjagan/bakery-storefront-api/internal/app/service"
	"github.com/seesamjagan/bakery-storefront-api/internal/domain"
	"github.com/seesamjagan/bakery-storefront-api/internal/infrastructure/http/response"
)

// FavoritesHandler handles HTTP requests for the session favorites set
type FavoritesHandler struct {
	service *service.FavoritesService
	logger  *slog.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(service *service.FavoritesService, logger *slog.Logger) *FavoritesHandler {
	return &FavoritesHandler{
		service: service,
		logger:  logger,
	}
}

type favoritesListResponse struct {
	ProductIDs []int `json:"product_ids"`
}

type toggleResponse struct {
	ProductID int  `json:"product_id"`
	Favorite  bool `json:"favorite"`
}

// List handles GET /favorites
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, favoritesListResponse{
		ProductIDs: h.service.List(r.Context()),
	})
}

// Toggle handles POST /favorites/{id}
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.Error(w, http.StatusBadRequest, errors.New("product id must be an integer"))
		return
	}

	favorite, err := h.service.Toggle(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			response.Error(w, http.StatusNotFound, err)
		} else {
			response.Error(w, http.StatusInternalServerError, err)
		}
		return
	}

	response.JSON(w, http.StatusOK, toggleResponse{ProductID: id, Favorite: favorite})
}
