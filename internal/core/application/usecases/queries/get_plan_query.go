// Package queries contains read-only operations over the planner's data.
// Implements the Query side of the CQRS architecture: handlers read the
// database directly with raw SQL for optimal read performance, bypassing
// the domain aggregates.
package queries

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrGetPlanQueryIsNotConstructed = errors.New(
	"GetPlanQuery must be created via NewGetPlanQuery constructor",
)

// GetPlanQuery retrieves the current delivery plan: every rider with its
// ordered sequence of assigned order ids.
//
// Example:
//
//	query := NewGetPlanQuery()
//	handler := NewGetPlanQueryHandler(db)
//
//	assignments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get plan: %w", err)
//	}
//
//	for _, entry := range assignments {
//	    fmt.Printf("Rider %d holds %v\n", entry.RiderID, entry.OrderIDs)
//	}
type GetPlanQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPlanQuery creates a query to retrieve the current plan.
// This is a parameterless query.
func NewGetPlanQuery() GetPlanQuery {
	return GetPlanQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetPlanQueryIsNotConstructed if validation fails.
func (q GetPlanQuery) Validate() error {
	return q.guard.Validate(ErrGetPlanQueryIsNotConstructed)
}

// GetPlanQueryResponse represents one rider's entry in the current plan.
// OrderIDs are in delivery order; riders without orders have an empty slice.
type GetPlanQueryResponse struct {
	RiderID  int64
	OrderIDs []int64
}
