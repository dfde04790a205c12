// Package commands contains business operations that modify the order book.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation at construction, then a
// handler that loads state from the repositories, applies domain behavior, and
// commits the resulting aggregate back.
//
// PlaceOrderCommand performs the accumulative intake validation: every rule is
// checked and every violation reported together in a single ValidationError,
// so the caller can render all field errors at once.
package commands
