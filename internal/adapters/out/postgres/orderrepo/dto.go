// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"planner/internal/core/domain/model/kernel"
	"planner/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Order ids come from the upstream intake system, so the primary key is
// externally assigned rather than generated. Status is stored as the raw
// integer value of the domain Status type.
type OrderDTO struct {
	ID     int64 `gorm:"type:bigint;primaryKey"`
	Status int   `gorm:"type:int;not null;index"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders" instead of "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:     aggregate.ID().Int64(),
		Status: int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Uses RestoreOrder to reconstruct the aggregate with its persisted status.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewOrderID(dto.ID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, order.Status(dto.Status))
}
