package order

import (
	"fmt"

	"butchermarket/internal/pkg/errs"
)

// Status represents the delivery lifecycle state of an order.
//
// Statuses are declared in display/progress order:
//
//	Confirmed ──> Preparing ──> Ready ──> Delivered
//
// The declaration order drives the customer-facing progress tracker and the
// enum-rank sort used by the staff order book. The mutation contract itself is
// intentionally permissive: staff may move an order to any member status,
// including backward or skipping steps (see Order.ChangeStatus).
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Confirmed is the initial status assigned when an order is created.
	Confirmed

	// Preparing indicates the staff are preparing the order.
	Preparing

	// Ready indicates the order is prepared and waiting for the delivery courier.
	Ready

	// Delivered indicates the order reached the customer.
	// It is the last step of the tracker but not a terminal state: the
	// permissive contract still allows moving back.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Confirmed: "Confirmed",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
	}
}

// AllStatuses returns the four member statuses in display/progress order.
// The slice is freshly allocated on each call and safe to modify.
func AllStatuses() []Status {
	return []Status{Confirmed, Preparing, Ready, Delivered}
}

// StatusFromString parses a status from its string representation.
// Returns an error for anything outside the four member values; "Unknown" is
// not accepted.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks if the Status value is a member of the enumeration.
//
// Valid statuses are: Confirmed, Preparing, Ready, Delivered.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Unknown" for invalid status values, so it is safe to call on any
// Status value. Implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StepState describes how a tracker step relates to the order's current status.
type StepState int

const (
	// StepPending marks a step that comes after the current status.
	StepPending StepState = iota

	// StepActive marks the step matching the current status.
	StepActive

	// StepCompleted marks a step that comes before the current status.
	StepCompleted
)

// String returns the lowercase name of the step state.
func (s StepState) String() string {
	switch s {
	case StepActive:
		return "active"
	case StepCompleted:
		return "completed"
	default:
		return "pending"
	}
}

// ProgressStep pairs a tracker step with its state relative to the current status.
type ProgressStep struct {
	Status Status
	State  StepState
}

// ProgressFor derives the tracker view for the given current status: steps
// before the current one are completed, the current one is active, later
// steps are pending. Returns an error when current is not a member status.
func ProgressFor(current Status) ([]ProgressStep, error) {
	if err := current.Validate(); err != nil {
		return nil, err
	}

	statuses := AllStatuses()
	steps := make([]ProgressStep, 0, len(statuses))
	for _, status := range statuses {
		state := StepPending
		switch {
		case status < current:
			state = StepCompleted
		case status == current:
			state = StepActive
		}
		steps = append(steps, ProgressStep{Status: status, State: state})
	}
	return steps, nil
}
