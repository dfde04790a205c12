// Package product implements the catalog entity for the butcher market system.
// The catalog is a collaborator of the order core: the order factory looks up a
// product's name and per-kg price at order-build time and snapshots them into
// the order's items.
package product
