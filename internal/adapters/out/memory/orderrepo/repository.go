package orderrepo

import (
	"context"
	"fmt"
	"sync"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/ports"
	"butchermarket/internal/pkg/errs"
)

// MemoryOrderRepository implements OrderRepository on a process-local map.
//
// The collection is volatile: it lives and dies with the process, which is the
// operating mode of the shop dashboard. A mutex guards the map and the
// insertion sequence, so the repository is safe to share across HTTP handlers
// and background jobs.
type MemoryOrderRepository struct {
	mu   sync.RWMutex
	byID map[kernel.OrderID]*order.Order
	seq  []kernel.OrderID
}

// NewMemoryOrderRepository creates an empty in-memory order repository.
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{
		byID: make(map[kernel.OrderID]*order.Order),
	}
}

var _ ports.OrderRepository = (*MemoryOrderRepository)(nil)

// Add stores a new order. Fails when the id is already taken: identifiers are
// unique across the live collection and Add never overwrites.
func (r *MemoryOrderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.byID[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("orderId",
			fmt.Errorf("%s is already taken", id))
	}

	r.byID[id] = aggregate
	r.seq = append(r.seq, id)
	return nil
}

// Update replaces the stored order carrying the same id as a whole value.
// Fails with an ObjectNotFoundError when the id is not in the collection.
func (r *MemoryOrderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.byID[id]; !exists {
		return errs.NewObjectNotFoundError("orderId", id.String())
	}

	r.byID[id] = aggregate
	return nil
}

// Get returns the order stored under id, or an ObjectNotFoundError.
func (r *MemoryOrderRepository) Get(_ context.Context, id kernel.OrderID) (*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("orderId", id.String())
	}
	return aggregate, nil
}

// GetAll returns every stored order in insertion order. The slice is freshly
// allocated on each call; callers may filter and sort it freely.
func (r *MemoryOrderRepository) GetAll(_ context.Context) ([]*order.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*order.Order, 0, len(r.seq))
	for _, id := range r.seq {
		all = append(all, r.byID[id])
	}
	return all, nil
}

// ExistingIDs returns the set of identifiers currently in use, for the
// collision check during id generation.
func (r *MemoryOrderRepository) ExistingIDs(_ context.Context) (map[kernel.OrderID]struct{}, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	existing := make(map[kernel.OrderID]struct{}, len(r.byID))
	for id := range r.byID {
		existing[id] = struct{}{}
	}
	return existing, nil
}
