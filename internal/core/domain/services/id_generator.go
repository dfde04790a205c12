package services

import (
	"errors"
	"math/rand/v2"

	"butchermarket/internal/core/domain/model/kernel"
)

// maxGenerationAttempts bounds the redraw loop. The serial space holds 900000
// values, far more than any realistic order book, so hitting the bound means
// the existing-id set is close to saturated.
const maxGenerationAttempts = 10

// ErrGenerationExhausted is returned when every drawn identifier collided with
// the existing set. Callers must treat this as a hard failure: returning a
// duplicate would break the order uniqueness invariant and corrupt id lookups.
var ErrGenerationExhausted = errors.New("order id generation exhausted after repeated collisions")

// OrderIDGenerator produces unique human-readable order identifiers.
//
// Generate draws a serial uniformly from the six-digit space and retries on
// collision with the supplied existing-id set, up to a small bounded number of
// attempts.
type OrderIDGenerator interface {
	Generate(existing map[kernel.OrderID]struct{}) (kernel.OrderID, error)
}

type orderIDGenerator struct{}

// NewOrderIDGenerator creates the default generator backed by the process-wide
// random source.
func NewOrderIDGenerator() OrderIDGenerator {
	return orderIDGenerator{}
}

// Generate returns a fresh OrderID not present in existing.
// On collision it redraws; after maxGenerationAttempts collisions it fails
// with ErrGenerationExhausted rather than silently returning a duplicate.
func (orderIDGenerator) Generate(existing map[kernel.OrderID]struct{}) (kernel.OrderID, error) {
	for range maxGenerationAttempts {
		serial := rand.IntN(kernel.MaxOrderSerial-kernel.MinOrderSerial+1) + kernel.MinOrderSerial

		id, err := kernel.OrderIDFromSerial(serial)
		if err != nil {
			return kernel.OrderID{}, err
		}

		if _, taken := existing[id]; !taken {
			return id, nil
		}
	}

	return kernel.OrderID{}, ErrGenerationExhausted
}
