package ports

import (
	"context"

	"planner/internal/core/domain/model/plan"
)

// PlanRepository defines the persistence contract for plan snapshots.
// The repository keeps the current plan; historical snapshots may be
// retained but only the newest one is authoritative.
type PlanRepository interface {
	// Save persists a plan snapshot and makes it the current plan.
	Save(ctx context.Context, aggregate *plan.Plan) error

	// GetCurrent retrieves the current (newest) plan.
	// Returns errs.ErrObjectNotFound when no plan has been built yet.
	GetCurrent(ctx context.Context) (*plan.Plan, error)
}
