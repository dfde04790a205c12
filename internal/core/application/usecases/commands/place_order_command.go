package commands

import (
	"errors"
	"slices"
	"strings"

	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/errs"
	"butchermarket/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// Field messages reported by the intake validation.
const (
	msgNameRequired         = "name is required"
	msgPhoneRequired        = "phone is required"
	msgPhoneInvalid         = "phone must be an 11-digit Egyptian mobile number starting with 01"
	msgAddressRequired      = "address is required"
	msgPaymentMethodInvalid = "payment method must be Cash or InstaPay"
	msgItemsRequired        = "at least one item with a positive quantity is required"
)

// CartLine is one entry of the caller-supplied cart: a product reference and a
// requested quantity in kilograms. Line order reflects cart entry order and is
// preserved into the created order's item sequence.
type CartLine struct {
	ProductID int
	Quantity  decimal.Decimal
}

// PlaceOrderCommand represents a request to create a new customer order.
//
// Construction performs the complete intake validation accumulatively: every
// rule is checked and all violations are reported together as a single
// errs.ValidationError mapping field name to message. Cart lines with a
// non-positive quantity are dropped (not reported) before the non-empty check.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    "Ahmed", "01234567890", "", "123 Example St, Cairo", "", "Cash",
//	    []CartLine{{ProductID: 11, Quantity: decimal.NewFromInt(2)}},
//	)
//	if err != nil {
//	    var validationErr *errs.ValidationError
//	    if errors.As(err, &validationErr) {
//	        // render validationErr.Fields to the user
//	    }
//	    return err
//	}
type PlaceOrderCommand struct {
	customerName    string
	customerPhone   string
	alternatePhone  string
	customerAddress string
	landmark        string
	paymentMethod   order.PaymentMethod
	lines           []CartLine

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the raw order intake and creates the command.
//
// Rules:
//   - name: required, non-blank
//   - phone: required; must be a valid Egyptian mobile number
//   - alternatePhone: optional; same pattern when non-blank
//   - address: required, non-blank
//   - paymentMethod: must be "Cash" or "InstaPay"
//   - cart: must contain at least one line after dropping quantities <= 0
//
// On any violation the command is not created and an *errs.ValidationError
// carrying every broken rule is returned.
func NewPlaceOrderCommand(
	customerName, customerPhone, alternatePhone, customerAddress, landmark, paymentMethod string,
	cart []CartLine,
) (PlaceOrderCommand, error) {
	fields := make(map[string]string)

	if strings.TrimSpace(customerName) == "" {
		fields["name"] = msgNameRequired
	}

	if strings.TrimSpace(customerPhone) == "" {
		fields["phone"] = msgPhoneRequired
	} else if _, err := kernel.NewPhone(customerPhone); err != nil {
		fields["phone"] = msgPhoneInvalid
	}

	if strings.TrimSpace(alternatePhone) != "" {
		if _, err := kernel.NewPhone(alternatePhone); err != nil {
			fields["alternatePhone"] = msgPhoneInvalid
		}
	}

	if strings.TrimSpace(customerAddress) == "" {
		fields["address"] = msgAddressRequired
	}

	method, err := order.PaymentMethodFromString(paymentMethod)
	if err != nil {
		fields["paymentMethod"] = msgPaymentMethodInvalid
	}

	lines := make([]CartLine, 0, len(cart))
	for _, line := range cart {
		if line.Quantity.GreaterThan(decimal.Zero) {
			lines = append(lines, line)
		}
	}
	if len(lines) == 0 {
		fields["items"] = msgItemsRequired
	}

	if len(fields) > 0 {
		return PlaceOrderCommand{}, errs.NewValidationError(fields)
	}

	return PlaceOrderCommand{
		customerName:    customerName,
		customerPhone:   customerPhone,
		alternatePhone:  alternatePhone,
		customerAddress: customerAddress,
		landmark:        landmark,
		paymentMethod:   method,
		lines:           lines,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerName returns the customer's name as entered.
func (c PlaceOrderCommand) CustomerName() string {
	return c.customerName
}

// CustomerPhone returns the validated primary phone number.
func (c PlaceOrderCommand) CustomerPhone() string {
	return c.customerPhone
}

// AlternatePhone returns the optional alternate phone number, or "" when absent.
func (c PlaceOrderCommand) AlternatePhone() string {
	return c.alternatePhone
}

// CustomerAddress returns the delivery address as entered.
func (c PlaceOrderCommand) CustomerAddress() string {
	return c.customerAddress
}

// Landmark returns the optional delivery landmark, or "" when absent.
func (c PlaceOrderCommand) Landmark() string {
	return c.landmark
}

// PaymentMethod returns the parsed payment method.
func (c PlaceOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// Lines returns the cart lines that survived the quantity filter, in cart
// entry order.
func (c PlaceOrderCommand) Lines() []CartLine {
	return slices.Clone(c.lines)
}
