package iorderrepo

import (
	"context"
	"errors"

	"github.com/mybasket/basket-svc/internal/service/models/order"
)

// ErrOrderNotFound is returned when the requested order does not exist.
var ErrOrderNotFound = errors.New("order not found")

// IOrderRepository is an interface for order storage.
type IOrderRepository interface {
	// Insert stores a new order.
	Insert(ctx context.Context, o *order.Order) error

	// GetByID returns the order with the given id.
	GetByID(ctx context.Context, id string) (*order.Order, error)

	// Update replaces the stored order with the same id.
	Update(ctx context.Context, o *order.Order) error

	// Delete removes the order with the given id.
	Delete(ctx context.Context, id string) error

	// Query retrieves orders matching the filter, newest first.
	Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error)
}
