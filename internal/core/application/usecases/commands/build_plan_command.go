package commands

import (
	"errors"

	"planner/internal/pkg/guard"
)

var ErrBuildPlanCommandIsNotConstructed = errors.New(
	"BuildPlanCommand must be created via NewBuildPlanCommand constructor",
)

// BuildPlanCommand triggers a full rebuild of the delivery plan.
// All active orders are redistributed over all registered riders with
// strict round robin, replacing the previous plan.
//
// Example:
//
//	cmd := NewBuildPlanCommand()
//	handler := NewBuildPlanCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoRidersFound) {
//	    log.Println("No riders registered yet")
//	}
type BuildPlanCommand struct {
	guard guard.ConstructorGuard
}

// NewBuildPlanCommand creates a command to trigger a plan rebuild.
// This is a parameterless command that initiates order distribution.
func NewBuildPlanCommand() BuildPlanCommand {
	return BuildPlanCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrBuildPlanCommandIsNotConstructed if validation fails.
func (c BuildPlanCommand) Validate() error {
	return c.guard.Validate(ErrBuildPlanCommandIsNotConstructed)
}
