package queries

import (
	"context"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/ports"
)

// GetOrderQueryHandler fetches one order for tracking and detail views.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. Fails with an ObjectNotFoundError when no order
// carries the requested id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.orders.Get(ctx, query.OrderID())
}
