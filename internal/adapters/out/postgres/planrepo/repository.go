package planrepo

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/plan"
	"planner/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlanRepository implements PlanRepository using GORM.
type GormPlanRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(key string, aggregate any)
}

// NewGormPlanRepository creates a new GORM plan repository.
func NewGormPlanRepository(db *gorm.DB, tracker aggregateTracker) *GormPlanRepository {
	return &GormPlanRepository{
		db:      db,
		tracker: tracker,
	}
}

// Save persists a plan snapshot and makes it the current plan.
// Snapshots are immutable: every save inserts a fresh header with its rider
// and assignment rows, it never updates an existing snapshot.
func (r *GormPlanRepository) Save(ctx context.Context, aggregate *plan.Plan) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID().String(), aggregate)
	return nil
}

// GetCurrent retrieves the newest plan snapshot.
// Returns errs.ErrObjectNotFound when no plan has been built yet.
func (r *GormPlanRepository) GetCurrent(ctx context.Context) (*plan.Plan, error) {
	var dto PlanDTO
	if err := r.db.WithContext(ctx).
		Preload("Riders").
		Preload("Assignments").
		Order("created_at DESC, id").
		First(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("plan", nil)
		}
		return nil, err
	}

	return toDomain(dto)
}
