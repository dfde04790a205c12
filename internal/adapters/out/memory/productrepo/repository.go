package productrepo

import (
	"context"
	"fmt"
	"sync"

	"butchermarket/internal/core/domain/model/product"
	"butchermarket/internal/core/ports"
	"butchermarket/internal/pkg/errs"
)

// MemoryProductRepository implements ProductRepository on a process-local map.
//
// Same volatile operating mode as the order collection; a mutex guards the
// catalog against concurrent handler access.
type MemoryProductRepository struct {
	mu   sync.RWMutex
	byID map[int]*product.Product
	seq  []int
}

// NewMemoryProductRepository creates an empty in-memory catalog.
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{
		byID: make(map[int]*product.Product),
	}
}

var _ ports.ProductRepository = (*MemoryProductRepository)(nil)

// Add stores a new product. Fails when the id is already taken.
func (r *MemoryProductRepository) Add(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.byID[id]; exists {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is already taken", id))
	}

	r.byID[id] = aggregate
	r.seq = append(r.seq, id)
	return nil
}

// Update replaces the stored product carrying the same id.
func (r *MemoryProductRepository) Update(_ context.Context, aggregate *product.Product) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID()
	if _, exists := r.byID[id]; !exists {
		return errs.NewObjectNotFoundError("productId", id)
	}

	r.byID[id] = aggregate
	return nil
}

// Remove deletes a product from the catalog. Orders keep their snapshotted
// item data, so removing a product never changes existing orders.
func (r *MemoryProductRepository) Remove(_ context.Context, id int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return errs.NewObjectNotFoundError("productId", id)
	}

	delete(r.byID, id)
	for i, existing := range r.seq {
		if existing == id {
			r.seq = append(r.seq[:i], r.seq[i+1:]...)
			break
		}
	}
	return nil
}

// Get returns the product stored under id, or an ObjectNotFoundError.
func (r *MemoryProductRepository) Get(_ context.Context, id int) (*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	aggregate, exists := r.byID[id]
	if !exists {
		return nil, errs.NewObjectNotFoundError("productId", id)
	}
	return aggregate, nil
}

// GetAll returns every catalog product in insertion order.
func (r *MemoryProductRepository) GetAll(_ context.Context) ([]*product.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*product.Product, 0, len(r.seq))
	for _, id := range r.seq {
		all = append(all, r.byID[id])
	}
	return all, nil
}

// NextID returns the smallest identifier greater than every id in the
// catalog, starting from 1 on an empty catalog.
func (r *MemoryProductRepository) NextID(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	next := 1
	for id := range r.byID {
		if id >= next {
			next = id + 1
		}
	}
	return next, nil
}
