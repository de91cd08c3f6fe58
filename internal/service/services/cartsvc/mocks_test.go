package cartsvc

import (
	"context"
	"sync/atomic"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	memoryrepo "github.com/mybasket/basket-svc/internal/dal/repositories/cart/memory"
	"github.com/mybasket/basket-svc/internal/service/models/product"
	"github.com/mybasket/basket-svc/pkg/keylock"
)

// mockCatalog implements icatalog.ICatalogLookup for testing.
type mockCatalog struct {
	Products map[string]*product.Product
	Err      error
	Calls    atomic.Int32
}

func (m *mockCatalog) GetProduct(_ context.Context, productID string) (*product.Product, error) {
	m.Calls.Add(1)

	if m.Err != nil {
		return nil, m.Err
	}

	p, ok := m.Products[productID]
	if !ok {
		return nil, icatalog.ErrProductNotFound
	}
	clone := *p

	return &clone, nil
}

// newTestCartService wires a CartService against the real in-memory cart
// store and the given catalog.
func newTestCartService(catalog *mockCatalog) *CartService {
	return MustNewCartService(
		WithCartRepository(memoryrepo.NewMemoryCartRepository()),
		WithCatalog(catalog),
		WithKeyLock(keylock.New()),
	)
}

func demoCatalog() *mockCatalog {
	return &mockCatalog{
		Products: map[string]*product.Product{
			"1": {ID: "1", Name: "Ceramic Mug", PriceCents: 1099, Category: "home"},
			"2": {ID: "2", Name: "Wireless Mouse", PriceCents: 2550, Category: "electronics"},
			"3": {ID: "3", Name: "Bulk Washer", PriceCents: 33, Category: "hardware"},
		},
	}
}
