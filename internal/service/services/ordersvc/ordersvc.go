package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/icartrepo"
	"github.com/mybasket/basket-svc/internal/dal/interfaces/iorderrepo"
	"github.com/mybasket/basket-svc/internal/service/models/cart"
	"github.com/mybasket/basket-svc/internal/service/models/money"
	"github.com/mybasket/basket-svc/internal/service/models/order"
	"github.com/mybasket/basket-svc/internal/service/models/orderitem"
	"github.com/mybasket/basket-svc/pkg/keylock"
)

var (
	// ErrEmptyCart is returned when a commit is attempted with no items
	// in the cart or in the submitted payload.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrCommitFailed is returned when the order was rolled back because
	// the cart could not be cleared after the order was persisted.
	ErrCommitFailed = errors.New("failed to commit order")
)

// DataIntegrityError reports a mismatch between a submitted order and
// the cart ledger it claims to describe.
type DataIntegrityError struct {
	Reason string
}

func (e *DataIntegrityError) Error() string {
	return "Data integrity check failed: " + e.Reason
}

// OrderService is a service for committing and managing orders. A commit
// validates the submitted payload against the live cart under the user's
// lock, persists the order and clears the cart, compensating with an
// order delete when the clear fails.
type OrderService struct {
	orderRepo iorderrepo.IOrderRepository
	cartRepo  icartrepo.ICartRepository
	locks     *keylock.KeyedMutex
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// WithOrderRepository sets the order repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(orderRepo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = orderRepo
	}
}

// WithCartRepository sets the cart repository for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartRepository(cartRepo icartrepo.ICartRepository) option {
	return func(s *OrderService) {
		s.cartRepo = cartRepo
	}
}

// WithKeyLock sets the per-user mutex for the OrderService. It must be
// the same instance the cart service locks on, otherwise a commit can
// interleave with cart mutations.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithKeyLock(locks *keylock.KeyedMutex) option {
	return func(s *OrderService) {
		s.locks = locks
	}
}

// CreateOrder validates the submitted payload against the user's cart
// and commits it as a new pending order, clearing the cart.
func (s *OrderService) CreateOrder(ctx context.Context, model order.CreateOrderModel) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if len(model.Items) == 0 {
		return nil, ErrEmptyCart
	}

	unlock := s.locks.Lock(model.UserID)
	defer unlock()

	snapshot, err := s.cartRepo.Get(ctx, model.UserID)
	if err != nil {
		if errors.Is(err, icartrepo.ErrCartNotFound) {
			return nil, ErrEmptyCart
		}

		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if len(snapshot.Items) == 0 {
		return nil, ErrEmptyCart
	}

	items, totalCents, err := verifyAgainstCart(model.Items, snapshot)
	if err != nil {
		slog.Warn("Order rejected by integrity check", "user_id", model.UserID, "error", err)

		return nil, err
	}

	now := time.Now()
	o := &order.Order{
		ID:              uuid.NewString(),
		UserID:          model.UserID,
		Items:           items,
		TotalCents:      totalCents,
		Status:          order.StatusPending,
		ShippingAddress: model.ShippingAddress,
		BillingAddress:  model.BillingAddress,
		PaymentMethod:   model.PaymentMethod,
		OrderDate:       now,
		UpdatedAt:       now,
	}

	if err := s.orderRepo.Insert(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to persist order: %w", err)
	}

	if err := s.cartRepo.Delete(ctx, model.UserID); err != nil {
		slog.Error("Failed to clear cart after persist, rolling back order",
			"user_id", model.UserID,
			"order_id", o.ID,
			"error", err,
		)

		if delErr := s.orderRepo.Delete(ctx, o.ID); delErr != nil {
			slog.Error("Failed to roll back order", "order_id", o.ID, "error", delErr)
		}

		return nil, fmt.Errorf("%w: %s", ErrCommitFailed, err.Error())
	}

	slog.Info("Order committed", "user_id", model.UserID, "order_id", o.ID, "total_cents", totalCents)

	return o, nil
}

// verifyAgainstCart runs the data integrity check: every submitted line
// must reference a product in the cart, carry a positive quantity, and
// match the pinned price cent for cent. It returns the order lines built
// from the verified cart prices and the authoritative total.
func verifyAgainstCart(submitted []order.ItemSubmission, snapshot *cart.Cart) ([]orderitem.OrderItem, int64, error) {
	items := make([]orderitem.OrderItem, 0, len(submitted))
	var totalCents int64

	for _, sub := range submitted {
		if sub.Quantity <= 0 {
			return nil, 0, &DataIntegrityError{
				Reason: fmt.Sprintf("quantity %d for product %s must be positive", sub.Quantity, sub.ProductID),
			}
		}

		line := snapshot.Find(sub.ProductID)
		if line == nil {
			return nil, 0, &DataIntegrityError{
				Reason: fmt.Sprintf("product %s is not in the cart", sub.ProductID),
			}
		}

		if cents := money.ToCents(sub.Price); cents != line.PriceCents {
			return nil, 0, &DataIntegrityError{
				Reason: fmt.Sprintf("price mismatch for product %s", sub.ProductID),
			}
		}

		items = append(items, orderitem.OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			PriceCents: line.PriceCents,
			Quantity:   sub.Quantity,
		})
		totalCents += line.PriceCents * int64(sub.Quantity)
	}

	return items, totalCents, nil
}

// UpdateOrderStatus moves the order through its lifecycle state machine.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, userID, orderID, status string) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.UpdateOrderStatus")
	defer span.End()

	next, err := order.ParseStatus(status)
	if err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	o, err := s.getOwned(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}

	if !o.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s -> %s", order.ErrInvalidTransition, o.Status, next)
	}

	o.Status = next
	o.UpdatedAt = time.Now()

	if err := s.orderRepo.Update(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}

	slog.Info("Order status updated", "user_id", userID, "order_id", orderID, "status", next)

	return o, nil
}

// GetOrder returns a single order of the user.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.GetOrder")
	defer span.End()

	return s.getOwned(ctx, userID, orderID)
}

// ListOrders returns the user's orders matching the filter, newest
// first. The user scope always comes from userID, a filter can only
// narrow further.
func (s *OrderService) ListOrders(ctx context.Context, userID string, filter *order.QueryOrdersModel) ([]order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.ListOrders")
	defer span.End()

	query := &order.QueryOrdersModel{UserIds: []string{userID}}
	if filter != nil {
		query.Statuses = filter.Statuses
		query.Limit = filter.Limit
		query.Offset = filter.Offset
	}

	orders, err := s.orderRepo.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}

	return orders, nil
}

// getOwned fetches the order and hides other users' orders behind
// iorderrepo.ErrOrderNotFound.
func (s *OrderService) getOwned(ctx context.Context, userID, orderID string) (*order.Order, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if o.UserID != userID {
		return nil, iorderrepo.ErrOrderNotFound
	}

	return o, nil
}
