package commands

import (
	"context"
	"errors"

	"planner/internal/core/domain/services"
)

// ErrNoRidersFound is returned when a plan build is requested before any
// rider has been registered. Distribution requires at least one rider.
var ErrNoRidersFound = errors.New("no riders found")

// BuildPlanCommandHandler orchestrates the plan build process.
// Loads all riders and active orders, runs the PlanBuilder domain service,
// persists the resulting plan as current, and marks the orders as Planned —
// all within a single transaction.
//
// Example:
//
//	handler := NewBuildPlanCommandHandler(uowFactory)
//	cmd := NewBuildPlanCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoRidersFound):
//	    log.Println("Register riders before building a plan")
//	case err != nil:
//	    log.Printf("Plan build failed: %v", err)
//	}
type BuildPlanCommandHandler struct {
	uowFactory UoWFactory
}

// NewBuildPlanCommandHandler creates a handler for plan build operations.
// Requires a UoWFactory for coordinating transactional updates across
// rider, order, and plan repositories.
func NewBuildPlanCommandHandler(uowFactory UoWFactory) BuildPlanCommandHandler {
	return BuildPlanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the plan build command.
// Returns ErrNoRidersFound when no riders are registered. Building with
// zero active orders is valid and yields a plan of empty sequences.
func (h BuildPlanCommandHandler) Handle(ctx context.Context, command BuildPlanCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	riders, err := uow.RiderRepository().GetAll(ctx)
	if err != nil {
		return err
	}
	if len(riders) == 0 {
		return ErrNoRidersFound
	}

	orders, err := uow.OrderRepository().GetAllActive(ctx)
	if err != nil {
		return err
	}

	assignment, err := services.NewPlanBuilder().Build(riders, orders)
	if err != nil {
		return err
	}

	if err = uow.PlanRepository().Save(ctx, assignment); err != nil {
		return err
	}

	for _, o := range orders {
		if err = o.Plan(); err != nil {
			return err
		}
		if err = uow.OrderRepository().Update(ctx, o); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
