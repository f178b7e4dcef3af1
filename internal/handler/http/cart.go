package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/imdova/medicova-store-sub004/pkg/errors"
	"github.com/imdova/medicova-store-sub004/pkg/validator"

	"github.com/imdova/medicova-store-sub004/internal/domain"
	"github.com/imdova/medicova-store-sub004/internal/service"
)

// CartHandler handles HTTP requests for cart endpoints.
type CartHandler struct {
	service *service.Storefront
	logger  *slog.Logger
}

// NewCartHandler creates a cart HTTP handler.
func NewCartHandler(svc *service.Storefront, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		service: svc,
		logger:  logger,
	}
}

// AddItemRequest is the JSON request body for adding a line to the cart.
type AddItemRequest struct {
	ProductID      string  `json:"id" validate:"required"`
	Title          string  `json:"title" validate:"max=500"`
	Price          float64 `json:"price" validate:"gte=0"`
	DiscountPrice  float64 `json:"discountPrice" validate:"gte=0"`
	Quantity       int     `json:"quantity" validate:"gte=0"`
	Size           string  `json:"size"`
	Color          string  `json:"color"`
	ShippingFee    float64 `json:"shippingFee" validate:"gte=0"`
	WeightKg       float64 `json:"weightKg" validate:"gte=0"`
	ShippingMethod string  `json:"shippingMethod"`
	DeliveryTime   string  `json:"deliveryTime"`
	Brand          string  `json:"brand"`
	Seller         string  `json:"seller"`
}

// QuantityRequest is the JSON request body for increase/decrease endpoints.
type QuantityRequest struct {
	Amount int `json:"amount" validate:"gte=0"`
}

type response struct {
	Data  any            `json:"data,omitempty"`
	Error *errorResponse `json:"error,omitempty"`
}

type errorResponse struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// GetCart handles GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	cart, err := h.service.GetCart(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// AddItem handles POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
		})
		return
	}

	if err := validator.Validate(req); err != nil {
		h.writeValidationError(w, err)
		return
	}

	cart, err := h.service.AddItem(r.Context(), userID, service.AddItemInput{
		ProductID:      req.ProductID,
		Title:          req.Title,
		Price:          req.Price,
		DiscountPrice:  req.DiscountPrice,
		Quantity:       req.Quantity,
		Size:           req.Size,
		Color:          req.Color,
		ShippingFee:    req.ShippingFee,
		WeightKg:       req.WeightKg,
		ShippingMethod: req.ShippingMethod,
		DeliveryTime:   req.DeliveryTime,
		Brand:          req.Brand,
		Seller:         req.Seller,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// IncreaseQuantity handles POST /api/v1/cart/items/{productId}/increase
func (h *CartHandler) IncreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.adjustQuantity(w, r, h.service.IncreaseQuantity)
}

// DecreaseQuantity handles POST /api/v1/cart/items/{productId}/decrease
func (h *CartHandler) DecreaseQuantity(w http.ResponseWriter, r *http.Request) {
	h.adjustQuantity(w, r, h.service.DecreaseQuantity)
}

// RemoveItem handles DELETE /api/v1/cart/items/{productId}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	cart, err := h.service.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

// ClearCart handles DELETE /api/v1/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	if err := h.service.ClearCart(r.Context(), userID); err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: map[string]string{"status": "cleared"}})
}

func (h *CartHandler) adjustQuantity(
	w http.ResponseWriter,
	r *http.Request,
	adjust func(ctx context.Context, userID, productID string, amount int) (domain.CartState, error),
) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		h.writeError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}

	productID := chi.URLParam(r, "productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{Code: "INVALID_INPUT", Message: "productId is required"},
		})
		return
	}

	amount := 1
	if r.ContentLength > 0 {
		var req QuantityRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, response{
				Error: &errorResponse{Code: "INVALID_INPUT", Message: "invalid request body: " + err.Error()},
			})
			return
		}
		if err := validator.Validate(req); err != nil {
			h.writeValidationError(w, err)
			return
		}
		if req.Amount > 0 {
			amount = req.Amount
		}
	}

	cart, err := adjust(r.Context(), userID, productID, amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, response{Data: cart})
}

func (h *CartHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		writeJSON(w, appErr.Status, response{
			Error: &errorResponse{Code: appErr.Code, Message: appErr.Message},
		})
		return
	}

	status := apperrors.HTTPStatus(err)
	if status == http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "internal error",
			slog.String("error", err.Error()),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		writeJSON(w, status, response{
			Error: &errorResponse{Code: "INTERNAL_ERROR", Message: "an internal error occurred"},
		})
		return
	}

	writeJSON(w, status, response{
		Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
	})
}

func (h *CartHandler) writeValidationError(w http.ResponseWriter, err error) {
	var valErr *validator.ValidationError
	if errors.As(err, &valErr) {
		writeJSON(w, http.StatusBadRequest, response{
			Error: &errorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "request validation failed",
				Fields:  valErr.Fields(),
			},
		})
		return
	}

	writeJSON(w, http.StatusBadRequest, response{
		Error: &errorResponse{Code: "INVALID_INPUT", Message: err.Error()},
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent; nothing useful can be done if encoding fails.
	_ = json.NewEncoder(w).Encode(v)
}
