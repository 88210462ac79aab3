package kernel

import (
	"fmt"

	"planner/internal/pkg/errs"
)

// RiderID is a value object identifying a rider. Rider identifiers are
// positive integers assigned by the upstream fleet system; the zero value
// is invalid and must never appear in a constructed domain object.
//
// RiderID is immutable and safe for use as a map key.
//
// Example usage:
//
//	id, err := kernel.NewRiderID(42)
//	if err != nil {
//	    // handle invalid identifier
//	}
type RiderID int64

// NewRiderID creates a RiderID from its integer value.
//
// Returns an error if the value is not positive. Uniqueness across a rider
// collection is a caller responsibility, not validated here.
func NewRiderID(value int64) (RiderID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("riderID",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return RiderID(value), nil
}

// Int64 returns the underlying integer value.
func (id RiderID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id RiderID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// IsEqual compares two rider identifiers for equality.
func (id RiderID) IsEqual(other RiderID) bool {
	return id == other
}

// Validate checks that the identifier was created through NewRiderID.
// The zero value fails validation.
func (id RiderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("riderID")
	}
	return nil
}

// OrderID is a value object identifying a delivery order. Order identifiers
// are positive integers; the zero value is invalid.
//
// OrderID is immutable and safe for use as a map key.
type OrderID int64

// NewOrderID creates an OrderID from its integer value.
//
// Returns an error if the value is not positive. Uniqueness across an order
// collection is a caller responsibility, not validated here.
func NewOrderID(value int64) (OrderID, error) {
	if value <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("orderID",
			fmt.Errorf("%d is not a positive identifier", value))
	}
	return OrderID(value), nil
}

// Int64 returns the underlying integer value.
func (id OrderID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation of the identifier.
func (id OrderID) String() string {
	return fmt.Sprintf("%d", int64(id))
}

// IsEqual compares two order identifiers for equality.
func (id OrderID) IsEqual(other OrderID) bool {
	return id == other
}

// Validate checks that the identifier was created through NewOrderID.
// The zero value fails validation.
func (id OrderID) Validate() error {
	if id <= 0 {
		return errs.NewValueIsRequiredError("orderID")
	}
	return nil
}
