package services

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/model/rider"
)

// ErrEmptyRiderSet is returned when a plan build is requested without any
// riders. The check runs before the distribution loop: round robin over an
// empty rider collection would otherwise never advance.
var ErrEmptyRiderSet = errors.New("rider set is empty")

// PlanBuilder is a domain service that produces the initial fair assignment
// of orders to riders.
//
// Algorithm — strict round robin: the i-th order (in input order) goes to
// the rider at input position i mod |riders|, appended to that rider's
// sequence. Every rider therefore receives either ⌊|orders|/|riders|⌋
// orders or one more, which guarantees the fairness invariant by
// construction: no two riders' sequence lengths differ by more than one.
//
// Preconditions assumed, not validated: rider and order ids are unique
// within their input collections. Duplicate ids collapse under mapping
// semantics and yield undefined grouping.
//
// If there are fewer orders than riders, the tail riders receive empty
// sequences; this is legitimate output, not an error.
//
// Example usage:
//
//	builder := services.NewPlanBuilder()
//	assignment, err := builder.Build(riders, orders)
//	if errors.Is(err, services.ErrEmptyRiderSet) {
//	    // Caller must supply at least one rider
//	    return
//	}
type PlanBuilder struct{}

// NewPlanBuilder creates a new PlanBuilder instance.
func NewPlanBuilder() PlanBuilder {
	return PlanBuilder{}
}

// Build produces a plan assigning every order to a rider via strict round
// robin over the input rider order.
//
// Parameters:
//   - riders: Riders to distribute over, in input order (must be non-empty)
//   - orders: Orders to assign, in input order
//
// Returns:
//   - *plan.Plan: The assignment, with every input rider as a key
//   - error: ErrEmptyRiderSet if riders is empty, or validation errors
//
// Build is a pure function of its inputs: no side effects, no mutation of
// the input aggregates.
func (b PlanBuilder) Build(riders []*rider.Rider, orders []*order.Order) (*plan.Plan, error) {
	if len(riders) == 0 {
		return nil, ErrEmptyRiderSet
	}

	assignments := make(map[kernel.RiderID][]kernel.OrderID, len(riders))
	for _, r := range riders {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		assignments[r.ID()] = make([]kernel.OrderID, 0)
	}

	for i, o := range orders {
		if err := o.Validate(); err != nil {
			return nil, err
		}

		target := riders[i%len(riders)].ID()
		assignments[target] = append(assignments[target], o.ID())
	}

	return plan.NewPlan(assignments)
}
