package queries

import (
	"errors"

	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/pkg/guard"
)

var ErrStatusSummaryQueryIsNotConstructed = errors.New(
	"StatusSummaryQuery must be created via NewStatusSummaryQuery constructor",
)

// StatusSummaryQuery asks for the per-status order counts shown on the
// dashboard header. This is a parameterless query over the whole collection:
// the counts never depend on any listing filter or search that happens to be
// active.
type StatusSummaryQuery struct {
	guard guard.ConstructorGuard
}

// NewStatusSummaryQuery creates a query for the dashboard counters.
func NewStatusSummaryQuery() StatusSummaryQuery {
	return StatusSummaryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrStatusSummaryQueryIsNotConstructed if validation fails.
func (q StatusSummaryQuery) Validate() error {
	return q.guard.Validate(ErrStatusSummaryQueryIsNotConstructed)
}

// StatusSummaryResponse carries one counter per status plus the overall total.
// Counts always has an entry for every member of the status enumeration, even
// when its count is zero.
type StatusSummaryResponse struct {
	Counts map[order.Status]int
	Total  int
}
