// Package order contains the Order aggregate and its lifecycle state machine.
// An order is registered (Created), enters the current plan (Planned), and
// terminates either delivered (Completed) or withdrawn (Canceled).
//
// The order aggregate deliberately does not know which rider holds it; that
// mapping is owned by the plan aggregate so that fairness and conservation
// invariants can be enforced in one place.
package order
