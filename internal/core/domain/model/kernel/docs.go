// Package kernel provides core domain primitives for the butcher market order system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - OrderID: A value object for human-readable "BM-######" order identifiers
//   - Phone: A value object for Egyptian mobile numbers with format validation
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
