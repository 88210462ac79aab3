package commands

import (
	"context"

	"planner/internal/core/domain/model/rider"
)

// CreateRiderCommandHandler handles the business logic for rider registration.
//
// Example:
//
//	handler := NewCreateRiderCommandHandler(uowFactory)
//	cmd, _ := NewCreateRiderCommand(riderID, "Alice")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("rider registration failed: %w", err)
//	}
type CreateRiderCommandHandler struct {
	uowFactory RiderUoWFactory
}

// NewCreateRiderCommandHandler creates a handler for rider registration operations.
// Requires a RiderUoWFactory for transactional persistence.
func NewCreateRiderCommandHandler(uowFactory RiderUoWFactory) CreateRiderCommandHandler {
	return CreateRiderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rider registration command.
// Creates the rider aggregate and persists it within a transaction.
func (h CreateRiderCommandHandler) Handle(ctx context.Context, cmd CreateRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := rider.NewRider(cmd.RiderID(), cmd.Name())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.RiderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
