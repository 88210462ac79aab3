// Package kernel contains shared value objects used across the planner
// domain model: the integer identifiers of riders and orders, and the UUID
// identity attached to plan snapshots.
//
// All types in this package are immutable value objects. Their zero values
// are invalid and must be created through the provided constructor
// functions, which enforce the domain's identifier rules.
package kernel
