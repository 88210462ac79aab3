// Package riderrepo provides data transfer objects and mapping functions for rider persistence.
// This package implements the repository pattern for the rider domain aggregate, handling
// the conversion between domain entities and database representations.
package riderrepo

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/rider"
)

// RiderDTO represents the database structure for persisting rider aggregates.
// Rider ids come from the upstream dispatch system, so the primary key is
// externally assigned rather than generated.
type RiderDTO struct {
	ID   int64  `gorm:"type:bigint;primaryKey"`
	Name string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the database table name for rider entities.
// Overrides GORM's default naming convention to use "riders" instead of "rider_dtos".
func (RiderDTO) TableName() string {
	return "riders"
}

// fromDomain converts a rider domain aggregate to its database representation.
func fromDomain(aggregate *rider.Rider) RiderDTO {
	return RiderDTO{
		ID:   aggregate.ID().Int64(),
		Name: aggregate.Name(),
	}
}

// toDomain converts a database DTO to a rider domain aggregate.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.NewRiderID(dto.ID)
	if err != nil {
		return nil, err
	}

	return rider.NewRider(id, dto.Name)
}
