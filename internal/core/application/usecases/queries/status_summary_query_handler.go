package queries

import (
	"context"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/ports"
)

// StatusSummaryQueryHandler aggregates per-status counts over the whole
// order collection.
type StatusSummaryQueryHandler struct {
	orders ports.OrderRepository
}

// NewStatusSummaryQueryHandler creates a handler for the dashboard counters.
func NewStatusSummaryQueryHandler(orders ports.OrderRepository) StatusSummaryQueryHandler {
	return StatusSummaryQueryHandler{orders: orders}
}

// Handle executes the aggregation. Every status appears in the response even
// with a zero count, so the dashboard renders a stable set of counters.
func (h StatusSummaryQueryHandler) Handle(
	ctx context.Context,
	query StatusSummaryQuery,
) (StatusSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return StatusSummaryResponse{}, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return StatusSummaryResponse{}, err
	}

	counts := make(map[order.Status]int, len(order.AllStatuses()))
	for _, status := range order.AllStatuses() {
		counts[status] = 0
	}
	for _, stored := range all {
		counts[stored.Status()]++
	}

	return StatusSummaryResponse{Counts: counts, Total: len(all)}, nil
}
