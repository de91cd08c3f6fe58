package orderhandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybasket/basket-svc/internal/service/models/order"
)

// mockOrderService implements the service interface with canned results
// and records the arguments of the last call.
type mockOrderService struct {
	order  *order.Order
	orders []order.Order
	err    error

	gotUserID  string
	gotOrderID string
	gotStatus  string
	gotModel   order.CreateOrderModel
	gotFilter  *order.QueryOrdersModel
}

func (m *mockOrderService) CreateOrder(_ context.Context, model order.CreateOrderModel) (*order.Order, error) {
	m.gotModel = model
	if m.err != nil {
		return nil, m.err
	}

	return m.order, nil
}

func (m *mockOrderService) UpdateOrderStatus(_ context.Context, userID, orderID, status string) (*order.Order, error) {
	m.gotUserID = userID
	m.gotOrderID = orderID
	m.gotStatus = status
	if m.err != nil {
		return nil, m.err
	}

	return m.order, nil
}

func (m *mockOrderService) GetOrder(_ context.Context, userID, orderID string) (*order.Order, error) {
	m.gotUserID = userID
	m.gotOrderID = orderID
	if m.err != nil {
		return nil, m.err
	}

	return m.order, nil
}

func (m *mockOrderService) ListOrders(_ context.Context, userID string, filter *order.QueryOrdersModel) ([]order.Order, error) {
	m.gotUserID = userID
	m.gotFilter = filter
	if m.err != nil {
		return nil, m.err
	}

	return m.orders, nil
}

// newOrderRouter mounts the order handlers the way the transport does.
func newOrderRouter(svc service) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/api/orders/{userId}", func(r chi.Router) {
		r.Post("/", func(w http.ResponseWriter, r *http.Request) {
			CreateOrder(w, r, svc)
		})
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			ListOrders(w, r, svc)
		})
		r.Get("/{orderId}", func(w http.ResponseWriter, r *http.Request) {
			GetOrder(w, r, svc)
		})
		r.Patch("/{orderId}/status", func(w http.ResponseWriter, r *http.Request) {
			UpdateOrderStatus(w, r, svc)
		})
	})

	return router
}
