package ports

import (
	"context"

	"butchermarket/internal/core/domain/model/product"
)

// ProductRepository defines the storage contract for the product catalog.
//
// The catalog is a collaborator of the order core: the order factory consumes
// Get for price/name lookup at order-build time. The remaining methods serve
// the admin catalog screen; products carry no invariant beyond id uniqueness.
type ProductRepository interface {
	// Add inserts a new product. Fails when the id is already taken.
	Add(ctx context.Context, p *product.Product) error

	// Update replaces the stored product carrying the same id.
	Update(ctx context.Context, p *product.Product) error

	// Remove deletes a product by id. Past orders keep their snapshots.
	Remove(ctx context.Context, id int) error

	// Get retrieves a product by its catalog id.
	Get(ctx context.Context, id int) (*product.Product, error)

	// GetAll returns the full catalog in insertion order.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// NextID returns the next free catalog id for a newly added product.
	NextID(ctx context.Context) (int, error)
}
