package ports

import (
	"context"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders based on
// their lifecycle status.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetAllActive retrieves all orders still eligible for planning
	// (Created or Planned status), ordered by ascending id. Stable
	// ordering keeps plan builds deterministic.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// HasCreated reports whether any order is waiting in Created status.
	// Used by the rebuild job to decide whether a new plan is needed.
	HasCreated(ctx context.Context) (bool, error)
}
