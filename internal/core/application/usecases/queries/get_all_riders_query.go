package queries

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrGetAllRidersQueryIsNotConstructed = errors.New(
	"GetAllRidersQuery must be created via NewGetAllRidersQuery constructor",
)

// GetAllRidersQuery retrieves every registered rider together with the
// number of orders it holds in the current plan.
type GetAllRidersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRidersQuery creates a query to retrieve all riders.
func NewGetAllRidersQuery() GetAllRidersQuery {
	return GetAllRidersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllRidersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRidersQueryIsNotConstructed)
}

// GetAllRidersQueryResponse represents a single rider in the read model.
// Load is zero when no plan exists or the rider holds no orders.
type GetAllRidersQueryResponse struct {
	ID   int64
	Name string
	Load int64
}
