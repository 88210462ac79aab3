package ports

import (
	"context"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
type RiderRepository interface {
	// Add persists a new rider aggregate to storage.
	// The rider must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *rider.Rider) error

	// Get retrieves a rider aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.RiderID) (*rider.Rider, error)

	// GetAll retrieves every registered rider, ordered by ascending id.
	// The input order of the rider set drives round-robin distribution,
	// so a stable ordering is part of the contract.
	GetAll(ctx context.Context) ([]*rider.Rider, error)
}
