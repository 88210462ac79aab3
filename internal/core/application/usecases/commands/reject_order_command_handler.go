package commands

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"
)

// ErrPlanNotFound is returned when an event arrives before any plan has
// been built. There is nothing to apply the event to.
var ErrPlanNotFound = errors.New("no plan found")

// RejectOrderCommandHandler applies a rider rejection to the current plan.
// Loads the current plan, runs the EventProcessor domain service, and
// persists the updated plan within a single transaction.
//
// Mismatched rejections (unknown rider, order not held) are tolerated: the
// plan is left as is and no error is returned.
//
// Example:
//
//	handler := NewRejectOrderCommandHandler(uowFactory)
//	cmd, _ := NewRejectOrderCommand(riderID, orderID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrPlanNotFound):
//	    log.Println("No plan built yet")
//	case errors.Is(err, services.ErrNoAlternateRider):
//	    log.Println("Rejection cannot be honored: only one rider")
//	case err != nil:
//	    log.Printf("Rejection failed: %v", err)
//	}
type RejectOrderCommandHandler struct {
	uowFactory PlanUoWFactory
}

// NewRejectOrderCommandHandler creates a handler for rejection events.
// Requires a PlanUoWFactory for transactional plan updates.
func NewRejectOrderCommandHandler(uowFactory PlanUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// Returns ErrPlanNotFound when no plan exists, and passes through
// services.ErrNoAlternateRider when relocation is impossible.
func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	event, err := plan.NewRiderRejected(cmd.RiderID(), cmd.OrderID())
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

	current, err := uow.PlanRepository().GetCurrent(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrPlanNotFound
	}
	if err != nil {
		return err
	}

	updated, err := services.NewEventProcessor().Apply(current, event)
	if err != nil {
		return err
	}

	if updated == current {
		// Mismatched event: nothing changed, nothing to persist.
		return uow.Commit(ctx)
	}

	if err = uow.PlanRepository().Save(ctx, updated); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
