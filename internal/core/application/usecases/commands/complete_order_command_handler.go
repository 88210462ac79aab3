package commands

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"
)

// CompleteOrderCommandHandler processes order deliveries.
// Marks the order Completed and removes it from the current plan within a
// single transaction. Removal reuses the cancellation event semantics: the
// order vanishes from whichever rider sequence holds it, and all other
// assignments stay untouched.
type CompleteOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order deliveries.
// Requires a UoWFactory for coordinating order and plan updates.
func NewCompleteOrderCommandHandler(uowFactory UoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
// Returns ErrOrderNotFound for unregistered orders; completing an order
// that was never planned surfaces as a validation error.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrOrderNotFound
	}
	if err != nil {
		return err
	}

	if err = aggregate.Complete(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	current, err := uow.PlanRepository().GetCurrent(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return uow.Commit(ctx)
	}
	if err != nil {
		return err
	}

	event, err := plan.NewOrderCanceled(cmd.OrderID())
	if err != nil {
		return err
	}

	updated, err := services.NewEventProcessor().Apply(current, event)
	if err != nil {
		return err
	}

	if updated != current {
		if err = uow.PlanRepository().Save(ctx, updated); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
