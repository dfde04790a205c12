package order

import (
	"errors"
	"strings"

	"butchermarket/internal/pkg/errs"
)

// ErrCustomerIsNotConstructed is returned when a Customer instance was not
// created through the NewCustomer factory method.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer holds the customer details captured on an order: name, contact
// numbers and delivery address. The phone format rules (11-digit Egyptian
// mobile) belong to the order intake validation; the domain only requires the
// mandatory fields to be non-blank, so historical orders captured before the
// stricter intake rules still reconstruct.
type Customer struct {
	name           string
	phone          string
	alternatePhone string
	address        string
	landmark       string

	isConstructed bool
}

// NewCustomer creates validated customer details.
//
// Name, phone and address are required and must be non-blank. AlternatePhone
// and landmark are optional free-text fields.
func NewCustomer(name, phone, alternatePhone, address, landmark string) (Customer, error) {
	customer := Customer{
		alternatePhone: alternatePhone,
		landmark:       landmark,
		isConstructed:  true,
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setPhone(phone),
		customer.setAddress(address),
	); err != nil {
		return Customer{}, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed through NewCustomer.
func (c Customer) Validate() error {
	if !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the customer's primary phone number.
func (c Customer) Phone() string {
	return c.phone
}

// AlternatePhone returns the optional alternate phone number, or "" when absent.
func (c Customer) AlternatePhone() string {
	return c.alternatePhone
}

// Address returns the delivery address.
func (c Customer) Address() string {
	return c.address
}

// Landmark returns the optional delivery landmark, or "" when absent.
func (c Customer) Landmark() string {
	return c.landmark
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	if strings.TrimSpace(phone) == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}
