package commands

import (
	"errors"

	"planner/internal/core/domain/model/kernel"
	"planner/internal/pkg/guard"
)

var (
	ErrCreateRiderCommandIsNotConstructed = errors.New(
		"CreateRiderCommand must be created via NewCreateRiderCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
)

// CreateRiderCommand represents a request to register a new delivery rider.
//
// Example:
//
//	riderID, _ := kernel.NewRiderID(42)
//	cmd, err := NewCreateRiderCommand(riderID, "Alice")
//	if err != nil {
//	    return fmt.Errorf("invalid rider data: %w", err)
//	}
//
//	handler := NewCreateRiderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register rider: %w", err)
//	}
type CreateRiderCommand struct { //nolint:recvcheck //using for validation
	riderID kernel.RiderID
	name    string

	guard guard.ConstructorGuard
}

// NewCreateRiderCommand creates a command to register a new rider.
// Validates that the rider id is a positive integer and the name is not empty.
func NewCreateRiderCommand(riderID kernel.RiderID, name string) (CreateRiderCommand, error) {
	command := CreateRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRiderID(riderID),
		command.setName(name),
	); err != nil {
		return CreateRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRiderCommandIsNotConstructed if validation fails.
func (c CreateRiderCommand) Validate() error {
	return c.guard.Validate(ErrCreateRiderCommandIsNotConstructed)
}

// RiderID returns the unique identifier for the rider.
func (c CreateRiderCommand) RiderID() kernel.RiderID {
	return c.riderID
}

// Name returns the rider's display name.
func (c CreateRiderCommand) Name() string {
	return c.name
}

func (c *CreateRiderCommand) setRiderID(riderID kernel.RiderID) error {
	if err := riderID.Validate(); err != nil {
		return err
	}

	c.riderID = riderID
	return nil
}

func (c *CreateRiderCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
