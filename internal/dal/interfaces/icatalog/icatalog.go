package icatalog

import (
	"context"
	"errors"

	"github.com/mybasket/basket-svc/internal/service/models/product"
)

var (
	// ErrProductNotFound is returned when the catalog has no such product.
	ErrProductNotFound = errors.New("product not found")

	// ErrUnavailable is returned when the catalog cannot be reached or
	// answers with a server error. The condition is transient.
	ErrUnavailable = errors.New("catalog unavailable")
)

// ICatalogLookup is an interface for resolving products against the
// catalog of record.
type ICatalogLookup interface {
	GetProduct(ctx context.Context, productID string) (*product.Product, error)
}
