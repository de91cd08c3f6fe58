package orderhandler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/schema"

	"github.com/mybasket/basket-svc/internal/service/models/money"
	"github.com/mybasket/basket-svc/internal/service/models/order"
	"github.com/mybasket/basket-svc/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	CreateOrder(ctx context.Context, model order.CreateOrderModel) (*order.Order, error)
	UpdateOrderStatus(ctx context.Context, userID, orderID, status string) (*order.Order, error)
	GetOrder(ctx context.Context, userID, orderID string) (*order.Order, error)
	ListOrders(ctx context.Context, userID string, filter *order.QueryOrdersModel) ([]order.Order, error)
}

// itemInCreateOrderRequest represents an item in a create order request.
// Price and quantity are left to the integrity check, which verifies
// them against the cart ledger.
type itemInCreateOrderRequest struct {
	ProductID string  `json:"productId" validate:"required"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// toModel converts itemInCreateOrderRequest to order.ItemSubmission.
func (r *itemInCreateOrderRequest) toModel() order.ItemSubmission {
	return order.ItemSubmission{
		ProductID: r.ProductID,
		Price:     r.Price,
		Quantity:  r.Quantity,
	}
}

// addressInOrderRequest represents an address in a create order request.
type addressInOrderRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// toModel converts addressInOrderRequest to order.Address.
func (r *addressInOrderRequest) toModel() order.Address {
	return order.Address{
		Street:     r.Street,
		City:       r.City,
		State:      r.State,
		PostalCode: r.PostalCode,
		Country:    r.Country,
	}
}

// createOrderRequest represents a create order request. An empty item
// list is not rejected here so checkout on an empty cart surfaces as
// the service's empty cart error.
type createOrderRequest struct {
	Items           []itemInCreateOrderRequest `json:"items" validate:"dive"`
	ShippingAddress addressInOrderRequest      `json:"shippingAddress"`
	BillingAddress  addressInOrderRequest      `json:"billingAddress"`
	PaymentMethod   string                     `json:"paymentMethod"`
}

// Validate validates the create order request.
func (r *createOrderRequest) Validate() error {
	return validator.New().Struct(r)
}

// toModel converts createOrderRequest to order.CreateOrderModel.
func (r *createOrderRequest) toModel(userID string) order.CreateOrderModel {
	items := make([]order.ItemSubmission, len(r.Items))
	for i := range r.Items {
		items[i] = r.Items[i].toModel()
	}

	return order.CreateOrderModel{
		UserID:          userID,
		Items:           items,
		ShippingAddress: r.ShippingAddress.toModel(),
		BillingAddress:  r.BillingAddress.toModel(),
		PaymentMethod:   r.PaymentMethod,
	}
}

// updateStatusRequest represents an update order status request.
type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// Validate validates the update status request.
func (r *updateStatusRequest) Validate() error {
	return validator.New().Struct(r)
}

// queryOrdersRequest represents order list filter parameters.
type queryOrdersRequest struct {
	Statuses []string `schema:"status,omitempty"`
	Limit    int      `schema:"limit,omitempty"`
	Offset   int      `schema:"offset,omitempty"`
}

// toModel converts queryOrdersRequest to order.QueryOrdersModel.
func (q *queryOrdersRequest) toModel() (*order.QueryOrdersModel, error) {
	statuses := make([]order.Status, len(q.Statuses))
	for i, s := range q.Statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			return nil, err
		}
		statuses[i] = status
	}

	return &order.QueryOrdersModel{
		Statuses: statuses,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}, nil
}

// itemInOrderResponse represents an item in an order response.
type itemInOrderResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// addressInOrderResponse represents an address in an order response.
type addressInOrderResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// addressToResponse converts an address model to an address response.
func addressToResponse(a order.Address) addressInOrderResponse {
	return addressInOrderResponse{
		Street:     a.Street,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
	}
}

// orderResponse represents an order response.
type orderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"userId"`
	Items           []itemInOrderResponse  `json:"items"`
	TotalAmount     float64                `json:"totalAmount"`
	Status          string                 `json:"status"`
	ShippingAddress addressInOrderResponse `json:"shippingAddress"`
	BillingAddress  addressInOrderResponse `json:"billingAddress"`
	PaymentMethod   string                 `json:"paymentMethod"`
	OrderDate       time.Time              `json:"orderDate"`
	UpdatedAt       time.Time              `json:"updatedAt"`
}

// orderToResponse converts an order model to an order response.
func orderToResponse(o *order.Order) orderResponse {
	items := make([]itemInOrderResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = itemInOrderResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     money.FromCents(item.PriceCents),
			Quantity:  item.Quantity,
		}
	}

	return orderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Items:           items,
		TotalAmount:     money.FromCents(o.TotalCents),
		Status:          o.Status.String(),
		ShippingAddress: addressToResponse(o.ShippingAddress),
		BillingAddress:  addressToResponse(o.BillingAddress),
		PaymentMethod:   o.PaymentMethod,
		OrderDate:       o.OrderDate,
		UpdatedAt:       o.UpdatedAt,
	}
}

// CreateOrder handles the create order request.
func CreateOrder(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	req := createOrderRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error decoding request body for create order", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error validating request body for create order", "error", err)

		return
	}

	o, err := service.CreateOrder(r.Context(), req.toModel(userID))
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error creating order", "error", err)

		return
	}

	respond.JSON(w, http.StatusCreated, orderToResponse(o))
}

// ListOrders handles the list orders request.
func ListOrders(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")

	decoder := schema.NewDecoder()
	query := &queryOrdersRequest{}
	if err := decoder.Decode(query, r.URL.Query()); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error decoding query parameters for list orders", "error", err)

		return
	}

	filter, err := query.toModel()
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error parsing status filter for list orders", "error", err)

		return
	}

	orders, err := service.ListOrders(r.Context(), userID, filter)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error listing orders", "error", err)

		return
	}

	responses := make([]orderResponse, len(orders))
	for i := range orders {
		responses[i] = orderToResponse(&orders[i])
	}

	respond.JSON(w, http.StatusOK, responses)
}

// GetOrder handles the get order request.
func GetOrder(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")
	orderID := chi.URLParam(r, "orderId")

	o, err := service.GetOrder(r.Context(), userID, orderID)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error getting order", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, orderToResponse(o))
}

// UpdateOrderStatus handles the update order status request.
func UpdateOrderStatus(w http.ResponseWriter, r *http.Request, service service) {
	userID := chi.URLParam(r, "userId")
	orderID := chi.URLParam(r, "orderId")

	req := updateStatusRequest{}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error decoding request body for update order status", "error", err)

		return
	}

	if err := req.Validate(); err != nil {
		respond.BadRequest(w, err)
		slog.Error("Error validating request body for update order status", "error", err)

		return
	}

	o, err := service.UpdateOrderStatus(r.Context(), userID, orderID, req.Status)
	if err != nil {
		respond.Error(w, err)
		slog.Error("Error updating order status", "error", err)

		return
	}

	respond.JSON(w, http.StatusOK, orderToResponse(o))
}
