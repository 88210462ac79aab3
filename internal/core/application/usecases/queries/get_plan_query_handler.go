package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"planner/internal/pkg/errs"
)

var ErrGetPlanQueryHandlerIsNotConstructed = errors.New(
	"GetPlanQueryHandler must be created via NewGetPlanQueryHandler constructor",
)

// GetPlanQueryHandler processes GetPlanQuery requests by reading the
// newest plan snapshot directly with raw SQL. Riders that belong to the
// plan but currently hold no orders are included with an empty sequence.
type GetPlanQueryHandler struct {
	db *gorm.DB
}

// NewGetPlanQueryHandler creates a handler with the given database connection.
//
// Parameters:
//   - db: GORM database connection for read operations. Must not be nil.
//
// Errors:
//   - ErrValueIsRequired: if db is nil.
func NewGetPlanQueryHandler(db *gorm.DB) (GetPlanQueryHandler, error) {
	if db == nil {
		return GetPlanQueryHandler{}, errs.NewValueIsRequiredError("db")
	}
	return GetPlanQueryHandler{db: db}, nil
}

// Validate ensures the handler was created through the constructor.
func (h GetPlanQueryHandler) Validate() error {
	if h.db == nil {
		return ErrGetPlanQueryHandlerIsNotConstructed
	}
	return nil
}

// Handle retrieves the current plan grouped by rider.
//
// Returns:
//   - []GetPlanQueryResponse: one entry per rider in the plan, ordered by
//     rider id; each sequence preserves assignment positions.
//   - error: ErrObjectNotFound if no plan has been built yet.
func (h GetPlanQueryHandler) Handle(ctx context.Context, query GetPlanQuery) ([]GetPlanQueryResponse, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var planID uuid.UUID
	result := h.db.WithContext(ctx).Raw(
		"SELECT id FROM plans ORDER BY created_at DESC, id LIMIT 1",
	).Scan(&planID)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to query current plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, errs.NewObjectNotFoundError("plan", nil)
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT pr.rider_id, a.order_id
		FROM plan_riders pr
		LEFT JOIN assignments a
		    ON a.plan_id = pr.plan_id AND a.rider_id = pr.rider_id
		WHERE pr.plan_id = ?
		ORDER BY pr.rider_id, a.position`,
		planID,
	).Rows()
	if err != nil {
		return nil, fmt.Errorf("failed to query plan assignments: %w", err)
	}
	defer rows.Close()

	var responses []GetPlanQueryResponse
	for rows.Next() {
		var riderID int64
		var orderID sql.NullInt64
		if err := rows.Scan(&riderID, &orderID); err != nil {
			return nil, fmt.Errorf("failed to scan plan assignment: %w", err)
		}

		if len(responses) == 0 || responses[len(responses)-1].RiderID != riderID {
			responses = append(responses, GetPlanQueryResponse{RiderID: riderID, OrderIDs: []int64{}})
		}
		if orderID.Valid {
			last := &responses[len(responses)-1]
			last.OrderIDs = append(last.OrderIDs, orderID.Int64)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate plan assignments: %w", err)
	}

	return responses, nil
}
