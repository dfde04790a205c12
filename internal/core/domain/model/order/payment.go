package order

import (
	"fmt"

	"butchermarket/internal/pkg/errs"
)

// PaymentMethod represents how the customer settles the order on delivery.
type PaymentMethod int

const (
	// PaymentUnknown represents an invalid or undefined payment method.
	PaymentUnknown PaymentMethod = iota

	// Cash is payment in cash on delivery.
	Cash

	// InstaPay is payment through an InstaPay transfer.
	InstaPay
)

func getPaymentMethodStrings() map[PaymentMethod]string {
	return map[PaymentMethod]string{
		PaymentUnknown: "Unknown",
		Cash:           "Cash",
		InstaPay:       "InstaPay",
	}
}

func getValidPaymentMethodStrings() map[PaymentMethod]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentMethod]string{
		Cash:     "Cash",
		InstaPay: "InstaPay",
	}
}

// PaymentMethodFromString parses a payment method from its string representation.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	for method, str := range getValidPaymentMethodStrings() {
		if str == s {
			return method, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause(
		"paymentMethod",
		fmt.Errorf("%q is not a valid payment method", s),
	)
}

// Validate checks if the PaymentMethod value is a member of the enumeration.
func (m PaymentMethod) Validate() error {
	if _, ok := getValidPaymentMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod",
			fmt.Errorf("%d is not a valid payment method", m),
		)
	}
	return nil
}

// String returns the human-readable name of the payment method.
// Returns "Unknown" for invalid values. Implements the fmt.Stringer interface.
func (m PaymentMethod) String() string {
	if str, ok := getPaymentMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}
