package commands

import (
	"context"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/ports"
)

// ChangeOrderStatusCommandHandler handles the business logic for status updates.
//
// It loads the referenced order, derives a new order value carrying the
// target status, and commits that value as a whole-value replacement under
// the same id. All non-status fields are preserved unchanged.
type ChangeOrderStatusCommandHandler struct {
	orders ports.OrderRepository
}

// NewChangeOrderStatusCommandHandler creates a handler for status update operations.
func NewChangeOrderStatusCommandHandler(orders ports.OrderRepository) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{orders: orders}
}

// Handle processes the status change command.
//
// The loaded order is never touched: ChangeStatus derives a fresh value with
// the new status, and only Update publishes it. Readers holding the previous
// value keep seeing it unchanged until the replacement lands.
//
// Returns the updated order on success. Fails with an ObjectNotFoundError when
// the referenced order id does not exist in the collection.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	updated, err := aggregate.ChangeStatus(cmd.NewStatus())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Update(ctx, updated); err != nil {
		return nil, err
	}

	return updated, nil
}
