// Package guard provides a defensive-programming primitive that ensures domain
// objects are only created through their constructors. Embedding a ConstructorGuard
// in a struct makes the zero value detectable: a guard obtained from
// NewConstructorGuard validates successfully, while a zero-value guard does not.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero value
// and the caller did not supply a more specific error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks objects that were created through a constructor function.
// The zero value is invalid; obtain a guard with NewConstructorGuard.
//
// Example:
//
//	type PlaceOrderCommand struct {
//	    customerName string
//	    guard        guard.ConstructorGuard
//	}
//
//	func (c PlaceOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a properly constructed guard. For a zero-value guard it
// returns notConstructedErr, or ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
