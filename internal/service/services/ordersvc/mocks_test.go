package ordersvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icartrepo"
	ordermemory "github.com/mybasket/basket-svc/internal/dal/repositories/order/memory"
	"github.com/mybasket/basket-svc/internal/service/models/cart"
	"github.com/mybasket/basket-svc/pkg/keylock"
)

// mockCartRepo implements icartrepo.ICartRepository for testing, with
// injectable failures for the commit saga paths.
type mockCartRepo struct {
	carts     map[string]*cart.Cart
	GetErr    error
	DeleteErr error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: map[string]*cart.Cart{}}
}

func (m *mockCartRepo) Get(_ context.Context, userID string) (*cart.Cart, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	c, ok := m.carts[userID]
	if !ok {
		return nil, icartrepo.ErrCartNotFound
	}

	return c.Clone(), nil
}

func (m *mockCartRepo) Put(_ context.Context, c *cart.Cart) error {
	m.carts[c.UserID] = c.Clone()

	return nil
}

func (m *mockCartRepo) Delete(_ context.Context, userID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.carts, userID)

	return nil
}

// newTestOrderService wires an OrderService against the real in-memory
// order store and the given cart repository.
func newTestOrderService(cartRepo icartrepo.ICartRepository) *OrderService {
	return MustNewOrderService(
		WithOrderRepository(ordermemory.NewMemoryOrderRepository()),
		WithCartRepository(cartRepo),
		WithKeyLock(keylock.New()),
	)
}

// seedCart stores a recalculated cart for the user.
func seedCart(t *testing.T, repo icartrepo.ICartRepository, userID string, items ...cart.Item) {
	t.Helper()

	c := cart.New(userID)
	c.Items = append(c.Items, items...)
	c.Recalculate()
	require.NoError(t, repo.Put(context.Background(), c))
}
