package commands

import (
	"errors"

	"zonedelivery/internal/pkg/guard"
)

var ErrAutoAssignCouriersCommandIsNotConstructed = errors.New(
	"AutoAssignCouriersCommand must be created via NewAutoAssignCouriersCommand constructor",
)

// AutoAssignCouriersCommand places every unassigned courier with a known
// position into the active zone that contains it.
//
// Example:
//
//	cmd := NewAutoAssignCouriersCommand()
//	assigned, err := handler.Handle(ctx, cmd)
type AutoAssignCouriersCommand struct {
	guard guard.ConstructorGuard
}

func NewAutoAssignCouriersCommand() AutoAssignCouriersCommand {
	return AutoAssignCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c AutoAssignCouriersCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignCouriersCommandIsNotConstructed)
}
