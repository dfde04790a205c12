package commands

import (
	"context"
	"time"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/domain/services"
	"butchermarket/internal/core/ports"
)

// Clock supplies the current time to command handlers. Injecting it keeps the
// single-clock-reading rule for createdAt testable.
type Clock func() time.Time

// PlaceOrderCommandHandler handles the business logic for order creation.
//
// It resolves each cart line against the catalog, snapshots the product name
// and per-kg price into order items, obtains a fresh unique id from the
// generator, computes the total, and appends the new order to the order book
// in Confirmed status.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(orders, products, generator, time.Now)
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("order %s placed, total %s", created.ID(), created.TotalAmount())
type PlaceOrderCommandHandler struct {
	orders    ports.OrderRepository
	products  ports.ProductRepository
	generator services.OrderIDGenerator
	clock     Clock
}

// NewPlaceOrderCommandHandler creates a handler for order creation operations.
// A nil clock defaults to time.Now.
func NewPlaceOrderCommandHandler(
	orders ports.OrderRepository,
	products ports.ProductRepository,
	generator services.OrderIDGenerator,
	clock Clock,
) PlaceOrderCommandHandler {
	if clock == nil {
		clock = time.Now
	}
	return PlaceOrderCommandHandler{
		orders:    orders,
		products:  products,
		generator: generator,
		clock:     clock,
	}
}

// Handle processes the order creation command.
//
// Returns the created order on success. Fails with an ObjectNotFoundError when
// a cart line references a product missing from the catalog, and with
// services.ErrGenerationExhausted when no unique id could be drawn. Nothing is
// appended to the order book unless every step succeeds.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Lines()
	items := make([]order.Item, 0, len(lines))
	for _, line := range lines {
		p, err := h.products.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(p.ID(), p.Name(), line.Quantity, p.PricePerKg())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	existing, err := h.orders.ExistingIDs(ctx)
	if err != nil {
		return nil, err
	}

	id, err := h.generator.Generate(existing)
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(
		cmd.CustomerName(),
		cmd.CustomerPhone(),
		cmd.AlternatePhone(),
		cmd.CustomerAddress(),
		cmd.Landmark(),
	)
	if err != nil {
		return nil, err
	}

	created, err := order.NewOrder(id, customer, items, cmd.PaymentMethod(), h.clock())
	if err != nil {
		return nil, err
	}

	if err = h.orders.Add(ctx, created); err != nil {
		return nil, err
	}

	return created, nil
}
