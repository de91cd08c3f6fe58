package cartsvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icartrepo"
	"github.com/mybasket/basket-svc/internal/dal/interfaces/icatalog"
	"github.com/mybasket/basket-svc/internal/service/models/cart"
	"github.com/mybasket/basket-svc/pkg/keylock"
)

var (
	// ErrInvalidQuantity is returned when a quantity is outside the range
	// the operation accepts.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrItemNotFound is returned when the product is not in the cart.
	ErrItemNotFound = errors.New("item not found in cart")
)

// CartService is a service for managing user carts. All mutations of one
// user's cart are serialized through the shared keyed mutex.
type CartService struct {
	cartRepo icartrepo.ICartRepository
	catalog  icatalog.ICatalogLookup
	locks    *keylock.KeyedMutex
}

// option is a function that configures the CartService.
type option func(*CartService)

// MustNewCartService creates a new CartService.
func MustNewCartService(opts ...option) *CartService {
	s := &CartService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithCartRepository sets the cart repository for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartRepository(cartRepo icartrepo.ICartRepository) option {
	return func(s *CartService) {
		s.cartRepo = cartRepo
	}
}

// WithCatalog sets the catalog lookup for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCatalog(catalog icatalog.ICatalogLookup) option {
	return func(s *CartService) {
		s.catalog = catalog
	}
}

// WithKeyLock sets the per-user mutex for the CartService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithKeyLock(locks *keylock.KeyedMutex) option {
	return func(s *CartService) {
		s.locks = locks
	}
}

// AddItem puts quantity units of the product into the user's cart. When
// the product is already present only its quantity grows, the price
// stays pinned to what the catalog reported at first add.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.AddItem")
	defer span.End()

	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if item := c.Find(productID); item != nil {
		item.Quantity += quantity
	} else {
		p, err := s.catalog.GetProduct(ctx, productID)
		if err != nil {
			slog.Error("Failed to resolve product against catalog", "product_id", productID, "error", err)

			return nil, err
		}

		c.Items = append(c.Items, cart.Item{
			ProductID:  p.ID,
			Name:       p.Name,
			PriceCents: p.PriceCents,
			Quantity:   quantity,
		})
	}

	c.Recalculate()

	if err := s.cartRepo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}

	slog.Info("Item added to cart", "user_id", userID, "product_id", productID, "quantity", quantity)

	return c, nil
}

// UpdateItem sets the absolute quantity of a product already in the
// cart. Quantity zero removes the line, negative quantities are
// rejected.
func (s *CartService) UpdateItem(ctx context.Context, userID, productID string, quantity int) (*cart.Cart, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.UpdateItem")
	defer span.End()

	if quantity < 0 {
		return nil, ErrInvalidQuantity
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	item := c.Find(productID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	if quantity == 0 {
		c.Remove(productID)
	} else {
		item.Quantity = quantity
	}

	c.Recalculate()

	if err := s.cartRepo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}

	slog.Info("Cart item updated", "user_id", userID, "product_id", productID, "quantity", quantity)

	return c, nil
}

// RemoveItem deletes the product's line from the cart. Removing a
// product that is not in the cart is a no-op.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*cart.Cart, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.RemoveItem")
	defer span.End()

	unlock := s.locks.Lock(userID)
	defer unlock()

	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !c.Remove(productID) {
		return c, nil
	}

	c.Recalculate()

	if err := s.cartRepo.Put(ctx, c); err != nil {
		return nil, fmt.Errorf("failed to store cart: %w", err)
	}

	slog.Info("Item removed from cart", "user_id", userID, "product_id", productID)

	return c, nil
}

// ClearCart drops every item from the user's cart and returns the empty
// cart shape.
func (s *CartService) ClearCart(ctx context.Context, userID string) (*cart.Cart, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.ClearCart")
	defer span.End()

	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.cartRepo.Delete(ctx, userID); err != nil {
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	slog.Info("Cart cleared", "user_id", userID)

	return cart.New(userID), nil
}

// GetCart returns the user's cart. Users without stored state get the
// empty cart shape, never an error.
func (s *CartService) GetCart(ctx context.Context, userID string) (*cart.Cart, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.GetCart")
	defer span.End()

	return s.loadCart(ctx, userID)
}

// GetSummary returns the totals-only view of the user's cart.
func (s *CartService) GetSummary(ctx context.Context, userID string) (cart.Summary, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "CartService.GetSummary")
	defer span.End()

	c, err := s.loadCart(ctx, userID)
	if err != nil {
		return cart.Summary{}, err
	}

	return c.Summary(), nil
}

// loadCart reads the stored cart, mapping an absent cart to the empty
// cart shape.
func (s *CartService) loadCart(ctx context.Context, userID string) (*cart.Cart, error) {
	c, err := s.cartRepo.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, icartrepo.ErrCartNotFound) {
			return cart.New(userID), nil
		}

		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return c, nil
}
