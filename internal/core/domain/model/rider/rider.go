package rider

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
)

// ErrRiderIsNotConstructed is returned when a Rider instance was not created
// through the NewRider factory method. This ensures all riders are properly validated.
var ErrRiderIsNotConstructed = errors.New("Rider must be created via NewRider constructor")

// Rider represents a delivery rider available for order assignments.
//
// Rider follows these invariants:
//   - Must have a valid positive integer identifier
//   - Must have a non-empty display name
//   - Can only be created through the NewRider constructor
//
// A rider carries no routing attributes: the planning domain only decides
// which rider holds which orders, never how the rider travels.
type Rider struct {
	// id is the unique identifier for the rider
	id kernel.RiderID

	// name is the rider's display name
	name string

	// isConstructed ensures the rider was created via NewRider
	isConstructed bool
}

// NewRider creates a new Rider instance with validation. This is the only way
// to create a valid Rider, ensuring all invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the rider (must be a positive integer)
//   - name: Display name (must be non-empty)
//
// Returns:
//   - *Rider: The created rider if all validations pass
//   - error: Validation error if any parameter is invalid
func NewRider(id kernel.RiderID, name string) (*Rider, error) {
	rider := &Rider{
		isConstructed: true,
	}

	if err := errors.Join(
		rider.setID(id),
		rider.setName(name),
	); err != nil {
		return nil, err
	}

	return rider, nil
}

// Validate ensures the Rider instance was properly constructed through NewRider.
// This prevents bypassing validation by directly instantiating the struct.
func (r *Rider) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRiderIsNotConstructed
	}

	return nil
}

// IsEqual compares two riders by their unique identifiers.
func (r *Rider) IsEqual(other *Rider) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.RiderID {
	return r.id
}

// Name returns the rider's display name.
func (r *Rider) Name() string {
	return r.name
}

// setID validates and sets the rider's unique identifier.
// This is a private method used only during construction.
func (r *Rider) setID(id kernel.RiderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// setName validates and sets the rider's display name.
// This is a private method used only during construction.
func (r *Rider) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	r.name = name
	return nil
}
