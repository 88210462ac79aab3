package order

import (
	"fmt"

	"planner/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Created ──┬──> Planned ──┬──> Completed
//	          │     │  │
//	          │     └──┘ (replanning allowed)
//	          │     │
//	          └─────┴──> Canceled
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status when an order is first registered.
	// Orders in this status are waiting to be included in a plan.
	Created

	// Planned indicates the order is held by a rider in the current plan.
	// Orders can move between riders while in this status.
	Planned

	// Completed indicates the order has been successfully delivered.
	// This is a final state with no further transitions allowed.
	Completed

	// Canceled indicates the order was withdrawn before delivery.
	// This is a final state with no further transitions allowed.
	Canceled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Planned:   "Planned",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Planned:   "Planned",
		Completed: "Completed",
		Canceled:  "Canceled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Created, Planned, Completed, Canceled.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer
// and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ValidatePlan checks if the status allows planning without performing the transition.
//
// Valid statuses for planning:
//   - Created (first inclusion in a plan)
//   - Planned (inclusion in a rebuilt plan)
//
// Completed and Canceled orders can never re-enter a plan.
func (s Status) ValidatePlan() error {
	if s != Created && s != Planned {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to plan", s.String()),
		)
	}
	return nil
}

// Plan transitions the status to Planned.
//
// Valid transitions:
//   - Created -> Planned (first plan build including this order)
//   - Planned -> Planned (plan rebuild or relocation)
//
// Returns (0, error) if the transition is not allowed from the current status.
func (s Status) Plan() (Status, error) {
	if err := s.ValidatePlan(); err != nil {
		return 0, err
	}

	return Planned, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - Planned -> Completed (order delivered)
//
// An order must be in a plan before it can be delivered; Created,
// Canceled, and already Completed orders cannot complete.
func (s Status) Complete() (Status, error) {
	if s != Planned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Completed, nil
}

// Cancel transitions the status to Canceled.
//
// Valid transitions:
//   - Created -> Canceled (withdrawn before planning)
//   - Planned -> Canceled (withdrawn while assigned)
//
// Completed orders cannot be canceled, and canceling twice is invalid.
func (s Status) Cancel() (Status, error) {
	if s != Created && s != Planned {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Canceled, nil
}
