package queries

import (
	"errors"
	"fmt"
	"strings"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/guard"
)

// ErrInvalidQuery is the sentinel wrapped by every query-construction failure.
// Callers translate it to a client error rather than a server fault.
var ErrInvalidQuery = errors.New("invalid query")

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// SortKey identifies the order attribute a listing is sorted by.
type SortKey int

const (
	// SortKeyUnknown represents an invalid or undefined sort key.
	SortKeyUnknown SortKey = iota

	// SortByID sorts by the "BM-######" identifier string.
	SortByID

	// SortByDate sorts by creation time.
	SortByDate

	// SortByTotalAmount sorts by the order total.
	SortByTotalAmount

	// SortByStatus sorts by the delivery-progress stage.
	SortByStatus

	// SortByCustomerName sorts by customer name, case-insensitively.
	SortByCustomerName
)

func getSortKeyStrings() map[SortKey]string {
	return map[SortKey]string{
		SortKeyUnknown:     "Unknown",
		SortByID:           "id",
		SortByDate:         "date",
		SortByTotalAmount:  "totalAmount",
		SortByStatus:       "status",
		SortByCustomerName: "customerName",
	}
}

func getValidSortKeyStrings() map[SortKey]string {
	//nolint:exhaustive // SortKeyUnknown is intentionally excluded as it's invalid
	return map[SortKey]string{
		SortByID:           "id",
		SortByDate:         "date",
		SortByTotalAmount:  "totalAmount",
		SortByStatus:       "status",
		SortByCustomerName: "customerName",
	}
}

// SortKeyFromString parses a sort key from its wire representation.
// Fails with ErrInvalidQuery for anything outside the five known keys.
func SortKeyFromString(s string) (SortKey, error) {
	for key, name := range getValidSortKeyStrings() {
		if name == s {
			return key, nil
		}
	}
	return SortKeyUnknown, fmt.Errorf("%w: %q is not a sort key", ErrInvalidQuery, s)
}

// Validate checks if the SortKey value is a member of the enumeration.
func (k SortKey) Validate() error {
	if _, ok := getValidSortKeyStrings()[k]; !ok {
		return fmt.Errorf("%w: %d is not a sort key", ErrInvalidQuery, k)
	}
	return nil
}

// String returns the wire name of the sort key.
func (k SortKey) String() string {
	if name, ok := getSortKeyStrings()[k]; ok {
		return name
	}
	return fmt.Sprintf("SortKey(%d)", int(k))
}

// SortDirection is the orientation of a sorted listing.
type SortDirection int

const (
	// DirectionUnknown represents an invalid or undefined direction.
	DirectionUnknown SortDirection = iota

	// Ascending sorts smallest first.
	Ascending

	// Descending sorts largest first.
	Descending
)

func getSortDirectionStrings() map[SortDirection]string {
	return map[SortDirection]string{
		DirectionUnknown: "Unknown",
		Ascending:        "asc",
		Descending:       "desc",
	}
}

// SortDirectionFromString parses a direction from its wire representation.
func SortDirectionFromString(s string) (SortDirection, error) {
	switch s {
	case "asc":
		return Ascending, nil
	case "desc":
		return Descending, nil
	default:
		return DirectionUnknown, fmt.Errorf("%w: %q is not a sort direction", ErrInvalidQuery, s)
	}
}

// Validate checks if the SortDirection value is a member of the enumeration.
func (d SortDirection) Validate() error {
	if d != Ascending && d != Descending {
		return fmt.Errorf("%w: %d is not a sort direction", ErrInvalidQuery, d)
	}
	return nil
}

// String returns the wire name of the direction.
func (d SortDirection) String() string {
	if name, ok := getSortDirectionStrings()[d]; ok {
		return name
	}
	return fmt.Sprintf("SortDirection(%d)", int(d))
}

// ListOrdersQuery describes one read of the order listing: an optional status
// filter, an optional free-text search term, and a sort key with direction.
//
// A nil status filter means "all statuses". The search term is matched as a
// trimmed, case-insensitive substring against customer name, customer phone
// and the order id; a blank term matches everything.
//
// Example:
//
//	query, err := NewListOrdersQuery(nil, "bm-1717", SortByDate, Descending)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statusFilter  *order.Status
	searchTerm    string
	sortKey       SortKey
	sortDirection SortDirection

	guard guard.ConstructorGuard
}

// NewListOrdersQuery creates a validated listing query.
//
// Parameters:
//   - statusFilter: restrict results to one status, or nil for all
//   - searchTerm: free-text term, matched after trimming; may be blank
//   - sortKey: one of the five listing sort keys
//   - sortDirection: Ascending or Descending
func NewListOrdersQuery(
	statusFilter *order.Status,
	searchTerm string,
	sortKey SortKey,
	sortDirection SortDirection,
) (ListOrdersQuery, error) {
	query := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		query.setStatusFilter(statusFilter),
		query.setSortKey(sortKey),
		query.setSortDirection(sortDirection),
	); err != nil {
		return ListOrdersQuery{}, err
	}

	query.searchTerm = strings.TrimSpace(searchTerm)
	return query, nil
}

// NewDefaultListOrdersQuery creates the listing the dashboard opens with:
// every status, no search, newest orders first.
func NewDefaultListOrdersQuery() ListOrdersQuery {
	query, err := NewListOrdersQuery(nil, "", SortByDate, Descending)
	if err != nil {
		panic(err) // parameters are compile-time constants
	}
	return query
}

// WithSortToggled derives a new query from q the way a column-header click
// does: re-selecting the current sort key flips the direction, selecting a
// different key switches to it in ascending order. Filter and search term
// carry over unchanged.
func (q ListOrdersQuery) WithSortToggled(key SortKey) (ListOrdersQuery, error) {
	if err := key.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}

	direction := Ascending
	if key == q.sortKey && q.sortDirection == Ascending {
		direction = Descending
	}
	return NewListOrdersQuery(q.statusFilter, q.searchTerm, key, direction)
}

// Validate ensures the query was created through the constructor.
// Returns ErrListOrdersQueryIsNotConstructed if validation fails.
func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// StatusFilter returns the status restriction, or nil when listing all.
func (q ListOrdersQuery) StatusFilter() *order.Status {
	if q.statusFilter == nil {
		return nil
	}
	filter := *q.statusFilter
	return &filter
}

// SearchTerm returns the trimmed search term; blank means no search.
func (q ListOrdersQuery) SearchTerm() string {
	return q.searchTerm
}

// SortKey returns the attribute the listing is sorted by.
func (q ListOrdersQuery) SortKey() SortKey {
	return q.sortKey
}

// SortDirection returns the sort orientation.
func (q ListOrdersQuery) SortDirection() SortDirection {
	return q.sortDirection
}

func (q *ListOrdersQuery) setStatusFilter(statusFilter *order.Status) error {
	if statusFilter == nil {
		return nil
	}
	if err := statusFilter.Validate(); err != nil {
		return fmt.Errorf("%w: status filter: %d is not a status", ErrInvalidQuery, *statusFilter)
	}
	filter := *statusFilter
	q.statusFilter = &filter
	return nil
}

func (q *ListOrdersQuery) setSortKey(sortKey SortKey) error {
	if err := sortKey.Validate(); err != nil {
		return err
	}
	q.sortKey = sortKey
	return nil
}

func (q *ListOrdersQuery) setSortDirection(sortDirection SortDirection) error {
	if err := sortDirection.Validate(); err != nil {
		return err
	}
	q.sortDirection = sortDirection
	return nil
}
