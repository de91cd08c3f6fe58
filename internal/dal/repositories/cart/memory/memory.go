package memoryrepo

import (
	"context"
	"sync"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icartrepo"
	"github.com/mybasket/basket-svc/internal/service/models/cart"
)

// MemoryCartRepository keeps carts in process memory, keyed by user id.
type MemoryCartRepository struct {
	mu    sync.RWMutex
	carts map[string]*cart.Cart
}

// NewMemoryCartRepository creates a new MemoryCartRepository.
func NewMemoryCartRepository() *MemoryCartRepository {
	return &MemoryCartRepository{
		carts: make(map[string]*cart.Cart),
	}
}

// Get retrieves the stored cart of the user. The returned cart is a copy,
// callers never share state with the store.
func (r *MemoryCartRepository) Get(ctx context.Context, userID string) (*cart.Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.carts[userID]
	if !ok {
		return nil, icartrepo.ErrCartNotFound
	}

	return c.Clone(), nil
}

// Put stores a copy of the cart, replacing any previous state for the
// same user.
func (r *MemoryCartRepository) Put(ctx context.Context, c *cart.Cart) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.carts[c.UserID] = c.Clone()

	return nil
}

// Delete drops the stored cart of the user. Deleting an absent cart is
// a no-op.
func (r *MemoryCartRepository) Delete(ctx context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, userID)

	return nil
}
