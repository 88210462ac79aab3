// Package planrepo provides data transfer objects and mapping functions for plan persistence.
// A plan is stored as an immutable snapshot: a header row, one row per rider
// in the plan, and one row per assignment with its position inside the
// rider's sequence. The newest snapshot is the current plan.
package planrepo

import (
	"sort"
	"time"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/plan"

	"github.com/google/uuid"
)

// PlanDTO represents the database structure for persisting plan snapshots.
type PlanDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time       `gorm:"not null;index"`
	Riders      []PlanRiderDTO  `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
	Assignments []AssignmentDTO `gorm:"foreignKey:PlanID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for plan snapshots.
// Overrides GORM's default naming convention to use "plans" instead of "plan_dtos".
func (PlanDTO) TableName() string {
	return "plans"
}

// PlanRiderDTO records that a rider belongs to a plan snapshot.
// Needed separately from assignments so riders with empty sequences
// survive a round trip through the database.
type PlanRiderDTO struct {
	PlanID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	RiderID int64     `gorm:"type:bigint;primaryKey"`
}

// TableName specifies the database table name for plan rider membership.
func (PlanRiderDTO) TableName() string {
	return "plan_riders"
}

// AssignmentDTO represents one order held by one rider within a plan
// snapshot. Position is the zero-based index inside the rider's sequence.
type AssignmentDTO struct {
	PlanID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID  int64     `gorm:"type:bigint;primaryKey"`
	RiderID  int64     `gorm:"type:bigint;not null;index"`
	Position int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for plan assignments.
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts a plan domain aggregate to its database representation.
func fromDomain(aggregate *plan.Plan) PlanDTO {
	planID := aggregate.ID().Bytes()

	riders := make([]PlanRiderDTO, 0, len(aggregate.Riders()))
	assignments := make([]AssignmentDTO, 0, aggregate.TotalOrders())
	for _, riderID := range aggregate.Riders() {
		riders = append(riders, PlanRiderDTO{
			PlanID:  planID,
			RiderID: riderID.Int64(),
		})

		for position, orderID := range aggregate.Sequence(riderID) {
			assignments = append(assignments, AssignmentDTO{
				PlanID:   planID,
				OrderID:  orderID.Int64(),
				RiderID:  riderID.Int64(),
				Position: position,
			})
		}
	}

	return PlanDTO{
		ID:          planID,
		CreatedAt:   time.Now().UTC(),
		Riders:      riders,
		Assignments: assignments,
	}
}

// toDomain converts a database DTO to a plan domain aggregate.
// Sequences are rebuilt from assignment positions; riders without
// assignments get an empty sequence.
func toDomain(dto PlanDTO) (*plan.Plan, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignments := make(map[kernel.RiderID][]kernel.OrderID, len(dto.Riders))
	for _, riderDTO := range dto.Riders {
		riderID, riderErr := kernel.NewRiderID(riderDTO.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		assignments[riderID] = []kernel.OrderID{}
	}

	sorted := make([]AssignmentDTO, len(dto.Assignments))
	copy(sorted, dto.Assignments)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].RiderID != sorted[j].RiderID {
			return sorted[i].RiderID < sorted[j].RiderID
		}
		return sorted[i].Position < sorted[j].Position
	})

	for _, assignmentDTO := range sorted {
		riderID, riderErr := kernel.NewRiderID(assignmentDTO.RiderID)
		if riderErr != nil {
			return nil, riderErr
		}
		orderID, orderErr := kernel.NewOrderID(assignmentDTO.OrderID)
		if orderErr != nil {
			return nil, orderErr
		}
		assignments[riderID] = append(assignments[riderID], orderID)
	}

	return plan.RestorePlan(id, assignments)
}
