// Package queries implements the read side of the application layer.
//
// Each query is a validated parameter object paired with a handler that reads
// from the order collection and shapes the result, following CQRS. Queries
// never mutate state: the list pipeline filters, searches and sorts a copy of
// the collection, and the summary aggregates counts without touching the
// stored aggregates.
//
// Query objects use the constructor guard pattern so handlers can reject
// zero-value instances that bypassed validation.
package queries
