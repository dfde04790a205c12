package order

import (
	"errors"
	"fmt"
	"strings"

	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is a line entry of an order: a snapshot of a catalog product's name and
// per-kg price taken at order-creation time, together with the requested
// quantity in kilograms.
//
// The snapshot is by value: the productID is a weak reference back to the
// catalog, so later catalog edits or deletions never alter the item. Quantities
// are positive decimals; the shop sells in 0.5 kg steps but the domain only
// requires quantity > 0.
type Item struct {
	productID int
	name      string
	quantity  decimal.Decimal
	unitPrice decimal.Decimal

	isConstructed bool
}

// NewItem creates a validated order item.
//
// Parameters:
//   - productID: the catalog id of the snapshotted product (must be positive)
//   - name: the product name at order time (must be non-blank)
//   - quantity: requested kilograms (must be greater than 0)
//   - unitPrice: price per kg at order time (must not be negative)
func NewItem(productID int, name string, quantity, unitPrice decimal.Decimal) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the catalog id the snapshot was taken from.
func (i Item) ProductID() int {
	return i.productID
}

// Name returns the product name captured at order time.
func (i Item) Name() string {
	return i.name
}

// Quantity returns the requested quantity in kilograms.
func (i Item) Quantity() decimal.Decimal {
	return i.quantity
}

// UnitPrice returns the per-kg price captured at order time.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns unitPrice × quantity in exact decimal arithmetic.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(i.quantity)
}

func (i *Item) setProductID(productID int) error {
	if productID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("productId",
			fmt.Errorf("%d is not a positive product id", productID))
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%s is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
