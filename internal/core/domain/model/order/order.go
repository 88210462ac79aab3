package order

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created through
// the NewOrder factory method. This ensures all orders are properly validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents a delivery order in the system. It is the aggregate root that
// manages the order lifecycle from registration through planning to completion
// or cancellation.
//
// Order follows these invariants:
//   - Must have a valid positive integer identifier
//   - Status transitions follow defined business rules
//   - Can only be created through the NewOrder constructor
//
// Which rider currently holds the order is not stored here: that assignment
// belongs to the Plan aggregate, which owns the rider/order mapping.
type Order struct {
	// id is the unique identifier for the order
	id kernel.OrderID

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via NewOrder
	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all business invariants are maintained.
//
// The order starts in Created status, waiting to be included in a plan.
//
// Parameters:
//   - id: Unique identifier for the order (must be a positive integer)
//
// Returns:
//   - *Order: The created order if validation passes
//   - error: Validation error if the identifier is invalid
func NewOrder(id kernel.OrderID) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        Created,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence with an explicit status.
// Unlike NewOrder it accepts any valid status, allowing repositories to
// rebuild aggregates without replaying their lifecycle.
func RestoreOrder(id kernel.OrderID, status Status) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		status:        status,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder
// or RestoreOrder. This prevents bypassing validation by directly instantiating
// the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsActive reports whether the order can still appear in a plan.
// Created and Planned orders are active; Completed and Canceled are not.
func (o *Order) IsActive() bool {
	return o.status == Created || o.status == Planned
}

// Plan marks the order as included in the current plan.
//
// This method enforces the following business rules:
//   - The order must be in Created or Planned status
//   - Replanning is allowed (from Planned to Planned)
//
// After successful planning, the order's status becomes Planned.
func (o *Order) Plan() error {
	newStatus, err := o.status.Plan()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as completed (delivered).
//
// This method enforces the following business rules:
//   - The order must be in Planned status
//   - Completed is a final state with no further transitions
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel marks the order as withdrawn.
//
// This method enforces the following business rules:
//   - The order must be in Created or Planned status
//   - Canceled is a final state with no further transitions
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
