package commands

import (
	"context"
	"errors"

	"planner/internal/core/domain/model/plan"
	"planner/internal/core/domain/services"
	"planner/internal/pkg/errs"
)

// ErrOrderNotFound is returned when a command references an order that was
// never registered.
var ErrOrderNotFound = errors.New("no order found")

// CancelOrderCommandHandler processes order withdrawals.
// Marks the order Canceled and applies an OrderCanceled event to the
// current plan, all within a single transaction. If no plan exists yet the
// status change alone is persisted; if the plan does not hold the order the
// plan is left unchanged (tolerated, not an error).
//
// Example:
//
//	handler := NewCancelOrderCommandHandler(uowFactory)
//	cmd, _ := NewCancelOrderCommand(orderID)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderNotFound) {
//	    log.Println("Unknown order")
//	}
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order withdrawals.
// Requires a UoWFactory for coordinating order and plan updates.
func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
// Returns ErrOrderNotFound for unregistered orders; invalid lifecycle
// transitions (canceling a completed order) surface as validation errors.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = h.removeFromCurrentPlan(ctx, uow, cmd); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// removeFromCurrentPlan applies the cancellation event to the current plan.
// A missing plan is fine: the order was never distributed.
func (h CancelOrderCommandHandler) removeFromCurrentPlan(ctx context.Context, uow UoW, cmd CancelOrderCommand) error {
	current, err := uow.PlanRepository().GetCurrent(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil
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

	if updated == current {
		return nil
	}

	return uow.PlanRepository().Save(ctx, updated)
}
