package plan

import (
	"errors"
	"fmt"
	"sort"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/errs"
)

var (
	// ErrPlanIsNotConstructed is returned when a Plan instance was not created
	// through NewPlan or RestorePlan. This ensures all plans are properly validated.
	ErrPlanIsNotConstructed = errors.New("Plan must be created via NewPlan or RestorePlan constructor")

	// ErrOrderAlreadyAssigned is returned when an order id would appear in more
	// than one rider's sequence, violating the conservation invariant.
	ErrOrderAlreadyAssigned = errors.New("order is already assigned to a rider")

	// ErrRiderNotInPlan is returned when an operation references a rider id
	// that is not a key of the plan.
	ErrRiderNotInPlan = errors.New("rider is not part of the plan")
)

// Plan is the aggregate root for the current assignment of orders to riders.
// It maps each rider id to the ordered sequence of order ids that rider
// holds; the sequence order is the delivery order.
//
// Plan enforces these invariants:
//   - Every order id appears in at most one rider's sequence (conservation)
//   - Keys are exactly the riders known to the plan
//   - Can only be created through NewPlan or RestorePlan
//
// Plan values are immutable: every mutating operation returns a new Plan
// carrying a fresh snapshot identity and leaves the receiver untouched.
// Callers never observe a partially mutated plan.
//
// Selection logic must never depend on Go map iteration order; Riders()
// exposes the sorted view all deterministic decisions are made from.
type Plan struct {
	// id identifies this plan snapshot for persistence and auditing
	id kernel.UUID

	// assignments maps each rider to its ordered order sequence
	assignments map[kernel.RiderID][]kernel.OrderID

	// isConstructed ensures the plan was created via a constructor
	isConstructed bool
}

// NewPlan creates a Plan from a rider-to-orders mapping, minting a fresh
// snapshot identity. The input mapping is deep-copied; the caller may reuse it.
//
// Returns an error if any id is invalid or if an order id appears in more
// than one rider's sequence.
func NewPlan(assignments map[kernel.RiderID][]kernel.OrderID) (*Plan, error) {
	return RestorePlan(kernel.NewUUID(), assignments)
}

// RestorePlan reconstructs a Plan with an explicit snapshot identity.
// Used by repositories when loading a persisted plan.
//
// Returns an error if the identity or any rider/order id is invalid, or if
// an order id appears in more than one rider's sequence.
func RestorePlan(id kernel.UUID, assignments map[kernel.RiderID][]kernel.OrderID) (*Plan, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	copied := make(map[kernel.RiderID][]kernel.OrderID, len(assignments))
	seen := make(map[kernel.OrderID]kernel.RiderID, len(assignments))

	for riderID, sequence := range assignments {
		if err := riderID.Validate(); err != nil {
			return nil, err
		}

		orders := make([]kernel.OrderID, 0, len(sequence))
		for _, orderID := range sequence {
			if err := orderID.Validate(); err != nil {
				return nil, err
			}
			if holder, ok := seen[orderID]; ok {
				return nil, errs.NewValueIsInvalidErrorWithCause(
					"assignments",
					fmt.Errorf("order %s held by riders %s and %s: %w", orderID, holder, riderID, ErrOrderAlreadyAssigned),
				)
			}
			seen[orderID] = riderID
			orders = append(orders, orderID)
		}

		copied[riderID] = orders
	}

	return &Plan{
		id:            id,
		assignments:   copied,
		isConstructed: true,
	}, nil
}

// Validate ensures the Plan instance was properly constructed through a
// constructor. This prevents bypassing invariant checks by directly
// instantiating the struct.
func (p *Plan) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPlanIsNotConstructed
	}

	return nil
}

// ID returns the snapshot identity of this plan.
func (p *Plan) ID() kernel.UUID {
	return p.id
}

// Riders returns the plan's rider ids sorted ascending.
// This is the deterministic view all selection logic iterates; map order
// is never exposed.
func (p *Plan) Riders() []kernel.RiderID {
	riders := make([]kernel.RiderID, 0, len(p.assignments))
	for riderID := range p.assignments {
		riders = append(riders, riderID)
	}
	sort.Slice(riders, func(i, j int) bool { return riders[i] < riders[j] })
	return riders
}

// HasRider reports whether the rider id is a key of the plan.
func (p *Plan) HasRider(riderID kernel.RiderID) bool {
	_, ok := p.assignments[riderID]
	return ok
}

// Sequence returns a copy of the rider's ordered order sequence.
// Returns nil if the rider is not part of the plan.
func (p *Plan) Sequence(riderID kernel.RiderID) []kernel.OrderID {
	sequence, ok := p.assignments[riderID]
	if !ok {
		return nil
	}

	return append([]kernel.OrderID(nil), sequence...)
}

// Load returns the number of orders the rider currently holds.
// Returns zero for riders not in the plan.
func (p *Plan) Load(riderID kernel.RiderID) int {
	return len(p.assignments[riderID])
}

// Holds reports whether the given rider's sequence contains the order.
func (p *Plan) Holds(riderID kernel.RiderID, orderID kernel.OrderID) bool {
	for _, id := range p.assignments[riderID] {
		if id.IsEqual(orderID) {
			return true
		}
	}
	return false
}

// Holder returns the rider currently holding the order.
// The boolean is false when no rider holds it. The scan runs over the
// sorted rider view for deterministic behavior, although the conservation
// invariant guarantees at most one holder.
func (p *Plan) Holder(orderID kernel.OrderID) (kernel.RiderID, bool) {
	for _, riderID := range p.Riders() {
		if p.Holds(riderID, orderID) {
			return riderID, true
		}
	}
	return 0, false
}

// Orders returns every order id in the plan, sorted ascending.
func (p *Plan) Orders() []kernel.OrderID {
	orders := make([]kernel.OrderID, 0)
	for _, sequence := range p.assignments {
		orders = append(orders, sequence...)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i] < orders[j] })
	return orders
}

// TotalOrders returns the number of orders across all rider sequences.
func (p *Plan) TotalOrders() int {
	total := 0
	for _, sequence := range p.assignments {
		total += len(sequence)
	}
	return total
}

// Relocate moves an order from one rider's sequence to the end of another's,
// returning the resulting plan as a new snapshot.
//
// Business rules:
//   - Both riders must be keys of the plan
//   - The source rider must currently hold the order
//   - Source and target must differ
//
// The receiver is never modified; on error it remains the authoritative plan.
func (p *Plan) Relocate(from, to kernel.RiderID, orderID kernel.OrderID) (*Plan, error) {
	if !p.HasRider(from) {
		return nil, fmt.Errorf("rider %s: %w", from, ErrRiderNotInPlan)
	}
	if !p.HasRider(to) {
		return nil, fmt.Errorf("rider %s: %w", to, ErrRiderNotInPlan)
	}
	if from.IsEqual(to) {
		return nil, errs.NewValueIsInvalidError("relocation target equals source")
	}
	if !p.Holds(from, orderID) {
		return nil, errs.NewObjectNotFoundError("orderID", orderID.String())
	}

	assignments := p.copyAssignments()
	assignments[from] = removeOrder(assignments[from], orderID)
	assignments[to] = append(assignments[to], orderID)

	return NewPlan(assignments)
}

// WithoutOrder returns a plan with the order removed from whichever rider
// sequence holds it. Returns the receiver unchanged when no rider holds the
// order: absence is tolerated, not an error.
func (p *Plan) WithoutOrder(orderID kernel.OrderID) (*Plan, error) {
	holder, ok := p.Holder(orderID)
	if !ok {
		return p, nil
	}

	assignments := p.copyAssignments()
	assignments[holder] = removeOrder(assignments[holder], orderID)

	return NewPlan(assignments)
}

// copyAssignments deep-copies the assignment map for copy-on-write mutation.
func (p *Plan) copyAssignments() map[kernel.RiderID][]kernel.OrderID {
	assignments := make(map[kernel.RiderID][]kernel.OrderID, len(p.assignments))
	for riderID, sequence := range p.assignments {
		assignments[riderID] = append([]kernel.OrderID(nil), sequence...)
	}
	return assignments
}

// removeOrder returns the sequence without the first occurrence of orderID,
// preserving the order of the remaining elements.
func removeOrder(sequence []kernel.OrderID, orderID kernel.OrderID) []kernel.OrderID {
	result := make([]kernel.OrderID, 0, len(sequence))
	for _, id := range sequence {
		if !id.IsEqual(orderID) {
			result = append(result, id)
		}
	}
	return result
}
