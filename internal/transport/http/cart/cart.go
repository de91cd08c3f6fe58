package carthandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/mybasket/basket-svc/internal/service/models/cart"
	"github.com/mybasket/basket-svc/internal/service/models/money"
	"github.com/mybasket/basket-svc/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error)
	UpdateItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error)
	RemoveItem(ctx context.Context, userID, productID string) (*cart.Cart, error)
	ClearCart(ctx context.Context, userID string) (*cart.Cart, error)
	GetCart(ctx context.Context, userID string) (*cart.Cart, error)
	GetSummary(ctx context.Context, userID string) (cart.Summary, error)
}

// addItemRequest represents an add item request.
type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// Validate validates the add item request.
func (r *addItemRequest) Validate() error {
	return validator.New().Struct(r)
}

// updateItemRequest represents an update item request. A zero quantity
// removes the item, so the field carries no validation tag.
type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// itemInCartResponse represents an item in a cart response.
type itemInCartResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// cartResponse represents a cart response.
type cartResponse struct {
	UserID      string               `json:"userId"`
	Items       []itemInCartResponse `json:"items"`
	TotalAmount float64              `json:"totalAmount"`
	TotalItems  int                  `json:"totalItems"`
}

// summaryResponse represents a cart summary response.
type summaryResponse struct {
	UserID      string  `json:"userId"`
	TotalAmount float64 `json:"totalAmount"`
	TotalItems  int     `json:"totalItems"`
}

// cartToResponse converts a cart model to a cart response.
func cartToResponse(c *cart.Cart) cartResponse {
	items := make([]itemInCartResponse, len(c.Items))
	for i, item := range c.Items {
		items[i] = itemInCartResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     money.FromCents(item.PriceCents),
			Quantity:  item.Quantity,
		}
	}

	return cartResponse{
		UserID:      c.UserID,
		Items:       items,
		TotalAmount: money.FromCents(c.TotalCents),
		TotalItems:  c.TotalItems,
	}
}

// summaryToResponse converts a cart summary model to a summary response.
func summaryToResponse(s cart.Summary) summaryResponse {
	return summaryResponse{
		UserID:      s.UserID,
		TotalAmount: money.FromCents(s.TotalCents),
		TotalItems:  s.TotalItems,
	}
}

// GetCart handles the get cart request.
func GetCart(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	c, err := service.GetCart(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error getting cart", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, cartToResponse(c))
}

// GetSummary handles the get cart summary request.
func GetSummary(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	summary, err := service.GetSummary(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error getting cart summary", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, summaryToResponse(summary))
}

// AddItem handles the add item request.
func AddItem(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	req := addItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error decoding request body for add item", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error validating request body for add item", "error", err)

		return
	}

	c, err := service.AddItem(r.Context(), userID, req.ProductID, req.Quantity)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error adding item to cart", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, cartToResponse(c))
}

// UpdateItem handles the update item request.
func UpdateItem(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")

	req := updateItemRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error decoding request body for update item", "error", err)

		return
	}

	c, err := service.UpdateItem(r.Context(), userID, productID, req.Quantity)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error updating cart item", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, cartToResponse(c))
}

// RemoveItem handles the remove item request.
func RemoveItem(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")
	productID := chi.URLParam(r, "productId")

	c, err := service.RemoveItem(r.Context(), userID, productID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error removing cart item", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, cartToResponse(c))
}

// ClearCart handles the clear cart request.
func ClearCart(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	c, err := service.ClearCart(r.Context(), userID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error clearing cart", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, cartToResponse(c))
}
