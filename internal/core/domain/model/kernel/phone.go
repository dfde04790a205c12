package kernel

import (
	"fmt"
	"regexp"

	"butchermarket/internal/pkg/errs"
)

// phonePattern matches Egyptian mobile numbers: exactly 11 digits, starting with
// "01" followed by one of 0, 1, 2, 5 and eight more digits.
var phonePattern = regexp.MustCompile(`^01[0125][0-9]{8}$`)

// ErrPhoneIsNotConstructed indicates that a Phone was not properly initialized
// through the NewPhone constructor. This error is returned when validating a
// zero-value Phone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("Phone must be created via NewPhone")

// Phone is a value object representing a customer's Egyptian mobile number.
// Numbers are stored exactly as entered (digits only, no normalization), so
// substring search over the order book sees the same text the customer typed.
//
// The zero value of Phone is invalid and must be constructed using NewPhone.
type Phone struct {
	value string
}

// NewPhone validates and creates a Phone from its string representation.
// The input must be an 11-digit local mobile number matching 01[0125]########.
//
// Example:
//
//	phone, err := kernel.NewPhone("01234567890")
//	if err != nil {
//	    return err
//	}
func NewPhone(s string) (Phone, error) {
	if !phonePattern.MatchString(s) {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause(
			"phone",
			fmt.Errorf("%q is not an 11-digit mobile number starting with 01[0125]", s),
		)
	}
	return Phone{value: s}, nil
}

// String returns the phone number exactly as it was entered.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two phone numbers for equality.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}

// Validate checks that the Phone was created through NewPhone.
// Returns ErrPhoneIsNotConstructed for the zero value.
func (p Phone) Validate() error {
	if p.value == "" {
		return ErrPhoneIsNotConstructed
	}
	return nil
}
