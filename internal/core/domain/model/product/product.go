package product

import (
	"errors"
	"fmt"
	"strings"

	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrProductIsNotConstructed is returned when a Product instance was not created
// through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry: a cut of meat sold by the kilogram.
//
// Products have a simple lifecycle (create/update/delete by id) with no
// invariant beyond id uniqueness. Orders reference products only by weak
// id reference and snapshot the name and price at order time, so editing or
// deleting a product never retroactively alters past orders.
type Product struct {
	// id is the unique catalog identifier
	id int

	// name is the display name of the cut
	name string

	// pricePerKg is the current price per kilogram
	pricePerKg decimal.Decimal

	// isConstructed ensures the product was created via NewProduct
	isConstructed bool
}

// NewProduct creates a new catalog entry with validation.
//
// Parameters:
//   - id: unique catalog identifier (must be positive)
//   - name: display name (must be non-blank)
//   - pricePerKg: price per kilogram (must not be negative)
func NewProduct(id int, name string, pricePerKg decimal.Decimal) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setPricePerKg(pricePerKg),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product instance was properly constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// IsEqual compares two products by their unique identifiers.
func (p *Product) IsEqual(other *Product) bool {
	return other != nil && p.id == other.id
}

// ID returns the product's unique catalog identifier.
func (p *Product) ID() int {
	return p.id
}

// Name returns the product's display name.
func (p *Product) Name() string {
	return p.name
}

// PricePerKg returns the current price per kilogram.
func (p *Product) PricePerKg() decimal.Decimal {
	return p.pricePerKg
}

func (p *Product) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id",
			fmt.Errorf("%d is not a positive id", id))
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPricePerKg(pricePerKg decimal.Decimal) error {
	if pricePerKg.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("pricePerKg",
			fmt.Errorf("%s is negative", pricePerKg))
	}
	p.pricePerKg = pricePerKg
	return nil
}
