package order

import (
	"errors"
	"slices"
	"time"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order represents a customer's confirmed purchase in the system. It is the
// aggregate root that manages the order lifecycle from creation through delivery.
//
// Order follows these invariants:
//   - Must have a valid unique "BM-######" identifier
//   - Must have validated customer details
//   - Must carry at least one item
//   - totalAmount always equals the sum of item subtotals: items are immutable
//     after construction, so the equality holds for the object's entire lifetime
//   - createdAt is set once, at construction, and never updated
//   - Can only be created through NewOrder or RestoreOrder
//
// After construction an order is mutated only through ChangeStatus; every other
// field is fixed for life.
type Order struct {
	// id is the unique human-readable invoice identifier
	id kernel.OrderID

	// customer holds the snapshot of customer details taken at order time
	customer Customer

	// items is the non-empty, cart-ordered sequence of product snapshots
	items []Item

	// totalAmount is the sum of item subtotals, computed once at construction
	totalAmount decimal.Decimal

	// status is the current state in the delivery lifecycle
	status Status

	// createdAt is the construction timestamp from a single clock reading
	createdAt time.Time

	// paymentMethod records how the customer settles the order
	paymentMethod PaymentMethod

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// NewOrder creates a new Order in Confirmed status with validation. The total
// amount is computed from the items in exact decimal arithmetic.
//
// Parameters:
//   - id: unique "BM-######" identifier obtained from the id generator
//   - customer: validated customer details
//   - items: non-empty, cart-ordered product snapshots
//   - paymentMethod: Cash or InstaPay
//   - createdAt: the single clock reading for the order's creation time
//
// Returns the created order, or a validation error if any parameter is invalid.
func NewOrder(
	id kernel.OrderID,
	customer Customer,
	items []Item,
	paymentMethod PaymentMethod,
	createdAt time.Time,
) (*Order, error) {
	return construct(id, customer, items, paymentMethod, Confirmed, createdAt)
}

// RestoreOrder reconstructs an Order that already progressed past creation,
// for example seed data or snapshots captured by an external store. Unlike
// NewOrder it accepts an explicit status; all other invariants are enforced
// identically.
func RestoreOrder(
	id kernel.OrderID,
	customer Customer,
	items []Item,
	paymentMethod PaymentMethod,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	return construct(id, customer, items, paymentMethod, status, createdAt)
}

func construct(
	id kernel.OrderID,
	customer Customer,
	items []Item,
	paymentMethod PaymentMethod,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        status,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomer(customer),
		order.setItems(items),
		order.setPaymentMethod(paymentMethod),
		order.setCreatedAt(createdAt),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	order.totalAmount = totalOf(order.items)
	return order, nil
}

// totalOf sums unitPrice × quantity over all items.
func totalOf(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// Validate ensures the Order instance was properly constructed through a factory method.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
// Orders are considered equal if they have the same ID.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Customer returns the customer details captured at order time.
func (o *Order) Customer() Customer {
	return o.customer
}

// CustomerName returns the customer's name.
func (o *Order) CustomerName() string {
	return o.customer.Name()
}

// CustomerPhone returns the customer's primary phone number.
func (o *Order) CustomerPhone() string {
	return o.customer.Phone()
}

// Items returns a copy of the order's item sequence in cart entry order.
// The copy keeps the aggregate's items immutable from the outside.
func (o *Order) Items() []Item {
	return slices.Clone(o.items)
}

// TotalAmount returns the order total, equal to the sum of item subtotals.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's immutable creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PaymentMethod returns how the customer settles the order.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// ChangeStatus returns a copy of the order carrying newStatus. The receiver
// is never mutated: stored orders are shared between concurrent readers, so a
// status change produces a fresh value that the caller publishes through the
// store as a whole-value replacement.
//
// The contract is intentionally permissive: any member of the status
// enumeration is accepted regardless of the current value, including moving
// backward or skipping steps. The observed staff workflow reassigns statuses
// freely, so no transition table is enforced here.
//
// Returns an error when newStatus is not a member of the enumeration or the
// receiver was not constructed. All other fields carry over unchanged.
func (o *Order) ChangeStatus(newStatus Status) (*Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := newStatus.Validate(); err != nil {
		return nil, err
	}

	replacement := *o
	replacement.items = slices.Clone(o.items)
	replacement.status = newStatus
	return &replacement, nil
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = slices.Clone(items)
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}
