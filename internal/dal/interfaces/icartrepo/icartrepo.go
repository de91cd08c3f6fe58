package icartrepo

import (
	"context"
	"errors"

	"github.com/mybasket/basket-svc/internal/service/models/cart"
)

// ErrCartNotFound is returned when no cart is stored for a user.
var ErrCartNotFound = errors.New("cart not found")

// ICartRepository is an interface for cart storage keyed by user id.
type ICartRepository interface {
	// Get returns the stored cart of the user.
	Get(ctx context.Context, userID string) (*cart.Cart, error)

	// Put stores the cart, replacing any previous state for the same user.
	Put(ctx context.Context, c *cart.Cart) error

	// Delete drops the stored cart of the user, if any.
	Delete(ctx context.Context, userID string) error
}
