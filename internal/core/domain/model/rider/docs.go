// Package rider contains the Rider aggregate: a delivery rider that can be
// assigned orders by the planning services. Riders are registered once and
// never mutated by plan events; the set of riders known to a plan changes
// only when a new plan is built.
package rider
