package queries

import (
	"context"
	"slices"
	"strings"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/ports"
)

// ListOrdersQueryHandler runs the listing pipeline over the order collection.
//
// The pipeline is filter, then search, then a stable sort. Stability matters:
// orders that compare equal under the chosen key keep their insertion order,
// so repeated reads of the same listing never reshuffle.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewListOrdersQueryHandler creates a handler for order listing queries.
func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

// Handle executes the listing query.
//
// Returns the matching orders, sorted as requested. An empty result is a
// normal outcome, not an error. The returned slice is freshly allocated;
// reordering it does not disturb the stored collection.
func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	matched := make([]*order.Order, 0, len(all))
	filter := query.StatusFilter()
	term := strings.ToLower(query.SearchTerm())

	for _, candidate := range all {
		if filter != nil && candidate.Status() != *filter {
			continue
		}
		if term != "" && !matchesSearch(candidate, term) {
			continue
		}
		matched = append(matched, candidate)
	}

	compare := comparatorFor(query.SortKey())
	if query.SortDirection() == Descending {
		inner := compare
		compare = func(a, b *order.Order) int { return -inner(a, b) }
	}
	slices.SortStableFunc(matched, compare)

	return matched, nil
}

// matchesSearch reports whether the lowercased term occurs in the order's
// customer name, customer phone or id.
func matchesSearch(candidate *order.Order, term string) bool {
	return strings.Contains(strings.ToLower(candidate.CustomerName()), term) ||
		strings.Contains(strings.ToLower(candidate.CustomerPhone()), term) ||
		strings.Contains(strings.ToLower(candidate.ID().String()), term)
}

func comparatorFor(key SortKey) func(a, b *order.Order) int {
	switch key {
	case SortByID:
		return func(a, b *order.Order) int {
			return strings.Compare(a.ID().String(), b.ID().String())
		}
	case SortByTotalAmount:
		return func(a, b *order.Order) int {
			return a.TotalAmount().Cmp(b.TotalAmount())
		}
	case SortByStatus:
		return func(a, b *order.Order) int {
			return int(a.Status()) - int(b.Status())
		}
	case SortByCustomerName:
		return func(a, b *order.Order) int {
			return strings.Compare(
				strings.ToLower(a.CustomerName()),
				strings.ToLower(b.CustomerName()),
			)
		}
	default: // SortByDate, also the fallback for a key that slipped validation
		return func(a, b *order.Order) int {
			return a.CreatedAt().Compare(b.CreatedAt())
		}
	}
}
