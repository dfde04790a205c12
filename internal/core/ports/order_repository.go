package ports

import (
	"context"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
)

// OrderRepository defines the storage contract for the order collection.
//
// The order book is process-wide state: seeded once at startup, held for the
// lifetime of the process, and discarded on shutdown. Core components never
// reach into ambient state; they receive a repository and work against it.
// Mutations are whole-value: Update replaces the stored order under the same
// id rather than patching fields in place.
type OrderRepository interface {
	// Add appends a new order to the collection.
	// Fails when an order with the same id already exists.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update replaces the stored order carrying the same id.
	// Fails when no order with that id exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAll returns the full, unfiltered order collection in insertion order.
	// Query pipelines and aggregate counts always start from this snapshot.
	GetAll(ctx context.Context) ([]*order.Order, error)

	// ExistingIDs returns the set of identifiers currently in use.
	// The id generator draws against this set to keep ids unique.
	ExistingIDs(ctx context.Context) (map[kernel.OrderID]struct{}, error)
}
