package commands

import (
	"errors"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a staff request to move an order to a
// new delivery status. Any member of the status enumeration is a valid target;
// the permissive transition policy lives on the aggregate.
//
// Example:
//
//	id, _ := kernel.OrderIDFromString("BM-171700")
//	cmd, err := NewChangeOrderStatusCommand(id, order.Delivered)
//	if err != nil {
//	    return err
//	}
//	updated, err := handler.Handle(ctx, cmd)
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.OrderID
	newStatus order.Status

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
// Validates that the order id is constructed and the target status is a member
// of the enumeration.
func NewChangeOrderStatusCommand(orderID kernel.OrderID, newStatus order.Status) (ChangeOrderStatusCommand, error) {
	statusCommand := ChangeOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		statusCommand.setOrderID(orderID),
		statusCommand.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return statusCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeOrderStatusCommandIsNotConstructed if validation fails.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c ChangeOrderStatusCommand) OrderID() kernel.OrderID {
	return c.orderID
}

// NewStatus returns the target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	c.newStatus = newStatus
	return nil
}
