package memoryrepo

import (
	"context"
	"slices"
	"sort"
	"sync"

	"github.com/mybasket/basket-svc/internal/dal/interfaces/iorderrepo"
	"github.com/mybasket/basket-svc/internal/service/models/order"
)

type orderEntry struct {
	order *order.Order
	seq   int64
}

// MemoryOrderRepository keeps committed orders in process memory.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders map[string]orderEntry
	seq    int64
}

// NewMemoryOrderRepository creates a new MemoryOrderRepository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		orders: make(map[string]orderEntry),
	}
}

// Insert stores a copy of the order.
func (r *MemoryOrderRepository) Insert(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	r.orders[o.ID] = orderEntry{order: o.Clone(), seq: r.seq}

	return nil
}

// GetByID returns a copy of the order with the given id.
func (r *MemoryOrderRepository) GetByID(ctx context.Context, id string) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.orders[id]
	if !ok {
		return nil, iorderrepo.ErrOrderNotFound
	}

	return e.order.Clone(), nil
}

// Update replaces the stored order with the same id, keeping its
// original position in the insertion sequence.
func (r *MemoryOrderRepository) Update(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.orders[o.ID]
	if !ok {
		return iorderrepo.ErrOrderNotFound
	}

	r.orders[o.ID] = orderEntry{order: o.Clone(), seq: e.seq}

	return nil
}

// Delete removes the order with the given id.
func (r *MemoryOrderRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.orders[id]; !ok {
		return iorderrepo.ErrOrderNotFound
	}
	delete(r.orders, id)

	return nil
}

// Query retrieves orders matching the filter, newest first. A nil
// filter matches everything.
func (r *MemoryOrderRepository) Query(ctx context.Context, filter *order.QueryOrdersModel) ([]order.Order, error) {
	if filter == nil {
		filter = &order.QueryOrdersModel{}
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]orderEntry, 0, len(r.orders))
	for _, e := range r.orders {
		if !matches(e.order, filter) {
			continue
		}
		entries = append(entries, e)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].seq > entries[j].seq
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(entries) {
			return []order.Order{}, nil
		}
		entries = entries[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(entries) {
		entries = entries[:filter.Limit]
	}

	result := make([]order.Order, 0, len(entries))
	for _, e := range entries {
		result = append(result, *e.order.Clone())
	}

	return result, nil
}

func matches(o *order.Order, filter *order.QueryOrdersModel) bool {
	if len(filter.Ids) > 0 && !slices.Contains(filter.Ids, o.ID) {
		return false
	}
	if len(filter.UserIds) > 0 && !slices.Contains(filter.UserIds, o.UserID) {
		return false
	}
	if len(filter.Statuses) > 0 && !slices.Contains(filter.Statuses, o.Status) {
		return false
	}

	return true
}
