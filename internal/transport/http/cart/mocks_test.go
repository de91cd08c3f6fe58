package carthandler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mybasket/basket-svc/internal/service/models/cart"
)

// mockCartService implements the service interface with canned results
// and records the arguments of the last call.
type mockCartService struct {
	cart    *cart.Cart
	summary cart.Summary
	err     error

	gotUserID    string
	gotProductID string
	gotQuantity  int
}

func (m *mockCartService) AddItem(_ context.Context, userID, productID string, quantity int) (*cart.Cart, error) {
	m.gotUserID = userID
	m.gotProductID = productID
	m.gotQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}

	return m.cart, nil
}

func (m *mockCartService) UpdateItem(_ context.Context, userID, productID string, quantity int) (*cart.Cart, error) {
	m.gotUserID = userID
	m.gotProductID = productID
	m.gotQuantity = quantity
	if m.err != nil {
		return nil, m.err
	}

	return m.cart, nil
}

func (m *mockCartService) RemoveItem(_ context.Context, userID, productID string) (*cart.Cart, error) {
	m.gotUserID = userID
	m.gotProductID = productID
	if m.err != nil {
		return nil, m.err
	}

	return m.cart, nil
}

func (m *mockCartService) ClearCart(_ context.Context, userID string) (*cart.Cart, error) {
	m.gotUserID = userID
	if m.err != nil {
		return nil, m.err
	}

	return m.cart, nil
}

func (m *mockCartService) GetCart(_ context.Context, userID string) (*cart.Cart, error) {
	m.gotUserID = userID
	if m.err != nil {
		return nil, m.err
	}

	return m.cart, nil
}

func (m *mockCartService) GetSummary(_ context.Context, userID string) (cart.Summary, error) {
	m.gotUserID = userID
	if m.err != nil {
		return cart.Summary{}, m.err
	}

	return m.summary, nil
}

// newCartRouter mounts the cart handlers the way the transport does.
func newCartRouter(svc service) *chi.Mux {
	router := chi.NewRouter()
	router.Route("/api/cart/{userId}", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			GetCart(w, r, svc)
		})
		r.Delete("/", func(w http.ResponseWriter, r *http.Request) {
			ClearCart(w, r, svc)
		})
		r.Get("/summary", func(w http.ResponseWriter, r *http.Request) {
			GetSummary(w, r, svc)
		})
		r.Post("/items", func(w http.ResponseWriter, r *http.Request) {
			AddItem(w, r, svc)
		})
		r.Put("/items/{productId}", func(w http.ResponseWriter, r *http.Request) {
			UpdateItem(w, r, svc)
		})
		r.Delete("/items/{productId}", func(w http.ResponseWriter, r *http.Request) {
			RemoveItem(w, r, svc)
		})
	})

	return router
}
