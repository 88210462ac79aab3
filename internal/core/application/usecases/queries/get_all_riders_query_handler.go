package queries

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"planner/internal/pkg/errs"
)

var ErrGetAllRidersQueryHandlerIsNotConstructed = errors.New(
	"GetAllRidersQueryHandler must be created via NewGetAllRidersQueryHandler constructor",
)

// GetAllRidersQueryHandler processes GetAllRidersQuery requests with a
// single raw SQL read that joins riders against the newest plan's
// assignments to compute per-rider load.
type GetAllRidersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRidersQueryHandler creates a handler with the given database
// connection.
//
// Errors:
//   - ErrValueIsRequired: if db is nil.
func NewGetAllRidersQueryHandler(db *gorm.DB) (GetAllRidersQueryHandler, error) {
	if db == nil {
		return GetAllRidersQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return GetAllRidersQueryHandler{db: db}, nil
}

// Validate ensures the handler was created through the constructor.
func (h GetAllRidersQueryHandler) Validate() error {
	if h.db == nil {
		return ErrGetAllRidersQueryHandlerIsNotConstructed
	}
	return nil
}

// Handle retrieves all riders with their current plan load, ordered by id.
// Returns an empty slice when no riders are registered.
func (h GetAllRidersQueryHandler) Handle(ctx context.Context, query GetAllRidersQuery) ([]GetAllRidersQueryResponse, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT riders.id, riders.name, COUNT(a.order_id)
		FROM riders
		LEFT JOIN assignments a
		    ON a.rider_id = riders.id
		   AND a.plan_id = (SELECT id FROM plans ORDER BY created_at DESC, id LIMIT 1)
		GROUP BY riders.id, riders.name
		ORDER BY riders.id`,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query riders: %w", err)
	}
	defer rows.Close()

	responses := []GetAllRidersQueryResponse{}
	for rows.Next() {
		var response GetAllRidersQueryResponse
		if err := rows.Scan(&response.ID, &response.Name, &response.Load); err != nil {
			return nil, fmt.Errorf("failed to scan rider: %w", err)
		}
		responses = append(responses, response)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate riders: %w", err)
	}

	return responses, nil
}
