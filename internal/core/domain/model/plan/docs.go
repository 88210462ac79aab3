// Package plan contains the Plan aggregate: the current mapping from rider
// ids to their ordered sequences of assigned order ids, together with the
// runtime events (rider rejection, order cancellation) that drive plan
// updates.
//
// The aggregate owns the conservation invariant (no order id appears in more
// than one sequence) and exposes only sorted, deterministic views for
// selection logic. Plans are immutable values: mutating operations return a
// new snapshot and leave the receiver untouched.
package plan
