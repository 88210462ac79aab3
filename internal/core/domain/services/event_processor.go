package services

import (
	"errors"
	"fmt"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/plan"
)

// ErrNoAlternateRider is returned when a rejected order cannot be relocated
// because the rejecting rider is the only rider in the plan. Silently
// dropping the order would violate conservation, so this is surfaced as an
// error rather than a no-op.
var ErrNoAlternateRider = errors.New("no alternate rider available")

// EventProcessor is a domain service that applies a single runtime event to
// a plan, producing the updated plan.
//
// Key responsibilities:
//   - Relocating rejected orders to the least-loaded alternate rider
//   - Removing canceled orders from the plan
//   - Tolerating mismatched events (unknown rider, absent order) as no-ops
//
// Business rules:
//   - The multiset of order ids is preserved on rejection and shrinks by
//     exactly the canceled order on cancellation
//   - Relocation targets the rider with the fewest held orders; ties break
//     toward the smallest rider id
//   - The rider set is never changed by an event
//   - Each call either returns a fully consistent new plan or an error
//     leaving the prior plan authoritative
//
// Relocation deliberately uses an explicit least-loaded policy computed
// over the plan's sorted rider view. Picking "whatever other rider an
// iteration finds first" would depend on unspecified map order and is not
// reproducible.
//
// Example usage:
//
//	processor := services.NewEventProcessor()
//	event, _ := plan.NewRiderRejected(riderID, orderID)
//
//	updated, err := processor.Apply(current, event)
//	if errors.Is(err, services.ErrNoAlternateRider) {
//	    // Rejection cannot be honored; current stays in force
//	    return
//	}
type EventProcessor struct{}

// NewEventProcessor creates a new EventProcessor instance.
func NewEventProcessor() EventProcessor {
	return EventProcessor{}
}

// Apply processes one event against the plan and returns the updated plan.
//
// Parameters:
//   - p: The current plan (must be constructed)
//   - event: A RiderRejected or OrderCanceled event
//
// Returns:
//   - *plan.Plan: The updated plan; may be p itself when the event is a no-op
//   - error: ErrNoAlternateRider if a rejection cannot be relocated, or
//     validation errors
//
// Apply is pure and total over a single event: no batching, no I/O, no
// mutation of the input plan.
func (ep EventProcessor) Apply(p *plan.Plan, event plan.Event) (*plan.Plan, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	switch e := event.(type) {
	case plan.RiderRejected:
		return ep.applyRejection(p, e.RiderID(), e.OrderID())
	case plan.OrderCanceled:
		return p.WithoutOrder(e.OrderID())
	default:
		return nil, fmt.Errorf("unsupported event type %T", event)
	}
}

// applyRejection relocates the order from the rejecting rider to the
// least-loaded alternate rider.
//
// Mismatched events (rider not in the plan, or order not held by that
// rider) return the plan unchanged: out-of-sync event sources are
// tolerated. A rejection by the only rider in the plan returns
// ErrNoAlternateRider.
func (ep EventProcessor) applyRejection(p *plan.Plan, riderID kernel.RiderID, orderID kernel.OrderID) (*plan.Plan, error) {
	if !p.HasRider(riderID) || !p.Holds(riderID, orderID) {
		return p, nil
	}

	target, err := ep.findLeastLoadedRider(p, riderID)
	if err != nil {
		return nil, err
	}

	return p.Relocate(riderID, target, orderID)
}

// findLeastLoadedRider selects the relocation target among all riders other
// than the excluded one: fewest currently-held orders, ties broken by
// smallest rider id.
//
// The scan iterates the plan's sorted rider view, so the strict less-than
// comparison lands on the smallest id among equally loaded riders.
func (ep EventProcessor) findLeastLoadedRider(p *plan.Plan, exclude kernel.RiderID) (kernel.RiderID, error) {
	var (
		target   kernel.RiderID
		found    bool
		bestLoad int
	)

	for _, riderID := range p.Riders() {
		if riderID.IsEqual(exclude) {
			continue
		}

		load := p.Load(riderID)
		if !found || load < bestLoad {
			target = riderID
			bestLoad = load
			found = true
		}
	}

	if !found {
		return 0, ErrNoAlternateRider
	}

	return target, nil
}
