// Package services contains domain services for the butcher market system.
// Domain services hold business logic that does not naturally belong to a
// single aggregate; here, the generation of unique order identifiers against
// the live order collection.
package services
