package commands

import (
	"errors"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/guard"
)

var ErrRemoveCourierFromZoneCommandIsNotConstructed = errors.New(
	"RemoveCourierFromZoneCommand must be created via NewRemoveCourierFromZoneCommand constructor",
)

// RemoveCourierFromZoneCommand clears a courier's zone assignment.
type RemoveCourierFromZoneCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewRemoveCourierFromZoneCommand(courierID kernel.UUID) (RemoveCourierFromZoneCommand, error) {
	command := RemoveCourierFromZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCourierID(courierID); err != nil {
		return RemoveCourierFromZoneCommand{}, err
	}

	return command, nil
}

func (c RemoveCourierFromZoneCommand) Validate() error {
	return c.guard.Validate(ErrRemoveCourierFromZoneCommandIsNotConstructed)
}

func (c RemoveCourierFromZoneCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *RemoveCourierFromZoneCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
