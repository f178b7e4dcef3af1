package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/imdova/medicova-store-sub004/pkg/errors"
	"github.com/imdova/medicova-store-sub004/pkg/pagination"
	"github.com/imdova/medicova-store-sub004/pkg/validator"

	"github.com/imdova/medicova-store-sub004/internal/domain"
	"github.com/imdova/medicova-store-sub004/internal/service"
)

// WishlistHandler handles HTTP requests for wishlist endpoints.
type WishlistHandler struct {
	service *service.Storefront
	logger  *slog.Logger
	cart    *CartHandler // shared error writer
}

// NewWishlistHandler creates a wishlist HTTP handler.
func NewWishlistHandler(svc *service.Storefront, logger *slog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: svc,
		logger:  logger,
		cart:    NewCartHandler(svc, logger),
	}
}

// AddWishlistRequest is the JSON request body for saving a product.
type AddWishlistRequest struct {
	ProductID     string   `json:"id" validate:"required"`
	Title         string   `json:"title" validate:"max=500"`
	Brand         string   `json:"brand"`
	Price         float64  `json:"price" validate:"gte=0"`
	DiscountPrice float64  `json:"discountPrice" validate:"gte=0"`
	Images        []string `json:"images"`
	Category      string   `json:"category"`
	Seller        string   `json:"seller"`
}

// List handles GET /api/v1/wishlist
//
// Query parameters: q (substring search), months (recency window), page and
// per_page (pagination).
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.cart.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	query := service.WishlistQuery{
		Search: r.URL.Query().Get("q"),
		Page:   pagination.FromRequest(r),
	}
	if months := r.URL.Query().Get("months"); months != "" {
		if v, err := strconv.Atoi(months); err == nil && v > 0 {
			query.Months = v
		}
	}

	result, err := h.service.Wishlist(r.Context(), userID, query)
	if err != nil {
		h.cart.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: result})
}

// AddItem handles POST /api/v1/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.cart.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	var req AddWishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.cart.writeValidationError(w, err)
		return
	}

	wishlist, err := h.service.AddToWishlist(r.Context(), userID, domain.Product{
		ID:            req.ProductID,
		Title:         req.Title,
		Brand:         req.Brand,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		Images:        req.Images,
		Category:      req.Category,
		Seller:        req.Seller,
	})
	if err != nil {
		h.cart.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: wishlist})
}

// RemoveItem handles DELETE /api/v1/wishlist/items/{productId}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.cart.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	wishlist, err := h.service.RemoveFromWishlist(r.Context(), userID, productID)
	if err != nil {
		h.cart.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: wishlist})
}

// Clear handles DELETE /api/v1/wishlist
func (h *WishlistHandler) Clear(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.cart.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	if err := h.service.ClearWishlist(r.Context(), userID); err != nil {
		h.cart.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "cleared"}})
}
