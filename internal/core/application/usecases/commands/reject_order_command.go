package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a rider declining an order it currently
// holds. Processing relocates the order to the least-loaded other rider.
//
// Example:
//
//	cmd, err := NewRejectOrderCommand(riderID, orderID)
//	if err != nil {
//	    return fmt.Errorf("invalid rejection: %w", err)
//	}
//
//	handler := NewRejectOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to process rejection: %w", err)
//	}
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.RiderID
	orderID kernel.OrderID

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command recording a rider's rejection of
// an order. Validates both identifiers; whether the rider actually holds
// the order is decided at processing time.
func NewRejectOrderCommand(riderID kernel.RiderID, orderID kernel.OrderID) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setOrderID(orderID),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// RiderID returns the rejecting rider's identifier.
func (c RejectOrderCommand) RiderID() kernel.RiderID {
	return c.riderID
}

// OrderID returns the rejected order's identifier.
func (c RejectOrderCommand) OrderID() kernel.OrderID {
	return c.orderID
}

func (c *RejectOrderCommand) setRiderID(riderID kernel.RiderID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *RejectOrderCommand) setOrderID(orderID kernel.OrderID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
