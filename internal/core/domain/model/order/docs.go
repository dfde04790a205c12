// Package order implements the order aggregate for the butcher market system.
// It contains the Order aggregate root together with its value objects:
// Item (a by-value snapshot of a catalog product plus a quantity in kg),
// Customer (the contact and address details captured at order time),
// Status (the delivery lifecycle enumeration with tracker-step derivation),
// and PaymentMethod.
//
// An order is created once, in Confirmed status, with its total computed from
// the item snapshots in exact decimal arithmetic. Existing values are never
// mutated: a status change derives a replacement order carrying the new
// status, and items, total, customer details and the creation timestamp are
// fixed for the aggregate's entire lifetime.
package order
