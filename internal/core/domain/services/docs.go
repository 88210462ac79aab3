// Package services contains the planning domain services: PlanBuilder, which
// produces the initial fair round-robin assignment of orders to riders, and
// EventProcessor, which applies runtime events (rider rejections, order
// cancellations) to a plan while preserving conservation and fairness.
//
// Both services are stateless, synchronous, and side-effect free. Each call
// consumes a plan value and produces a new one; callers embedding them in an
// event stream must apply one event fully before starting the next, because
// the invariants depend on a consistent global view of the plan.
package services
