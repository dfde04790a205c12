package kernel

import (
	"fmt"
	"regexp"

	"butchermarket/internal/pkg/errs"
)

// Serial bounds for the numeric part of an order identifier. Serials are drawn
// uniformly from this range, so every identifier has exactly six decimal digits.
const (
	MinOrderSerial = 100000
	MaxOrderSerial = 999999
)

// orderIDPrefix is the invoice prefix shared by every order identifier.
const orderIDPrefix = "BM-"

var orderIDPattern = regexp.MustCompile(`^BM-[0-9]{6}$`)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not properly initialized
// through one of the constructor functions. This error is returned when validating
// a zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via OrderIDFromSerial or OrderIDFromString",
)

// OrderID is a value object representing a human-readable order identifier in the
// form "BM-######", where ###### is a six-digit serial. It is the identity of an
// order aggregate and is globally unique across the live order collection.
//
// The zero value of OrderID is invalid and must be constructed using
// OrderIDFromSerial or OrderIDFromString.
//
// OrderID is immutable and safe to copy.
type OrderID struct {
	value string
}

// OrderIDFromSerial builds an OrderID from a numeric serial.
// The serial must lie within [MinOrderSerial, MaxOrderSerial] so the rendered
// identifier always carries exactly six digits.
//
// Example:
//
//	id, err := kernel.OrderIDFromSerial(171700)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id.String()) // "BM-171700"
func OrderIDFromSerial(serial int) (OrderID, error) {
	if serial < MinOrderSerial || serial > MaxOrderSerial {
		return OrderID{}, errs.NewValueIsOutOfRangeError("serial", serial, MinOrderSerial, MaxOrderSerial)
	}
	return OrderID{value: fmt.Sprintf("%s%d", orderIDPrefix, serial)}, nil
}

// OrderIDFromString parses an OrderID from its string representation.
// The string must match the "BM-######" format exactly; parsing is used when
// identifiers arrive from external callers such as the staff tooling.
func OrderIDFromString(s string) (OrderID, error) {
	if !orderIDPattern.MatchString(s) {
		return OrderID{}, errs.NewValueIsInvalidErrorWithCause(
			"orderId",
			fmt.Errorf("%q does not match the BM-###### format", s),
		)
	}
	return OrderID{value: s}, nil
}

// String returns the identifier in its canonical "BM-######" form.
func (id OrderID) String() string {
	return id.value
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id.value == other.value
}

// Validate checks that the OrderID was created through a constructor.
// Returns ErrOrderIDIsNotConstructed for the zero value.
func (id OrderID) Validate() error {
	if id.value == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
