package commands

import (
	"errors"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/guard"
)

var ErrAssignCourierToZoneCommandIsNotConstructed = errors.New(
	"AssignCourierToZoneCommand must be created via NewAssignCourierToZoneCommand constructor",
)

// AssignCourierToZoneCommand moves a courier into a zone.
type AssignCourierToZoneCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	zoneID    kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignCourierToZoneCommand(courierID, zoneID kernel.UUID) (AssignCourierToZoneCommand, error) {
	command := AssignCourierToZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setZoneID(zoneID),
	); err != nil {
		return AssignCourierToZoneCommand{}, err
	}

	return command, nil
}

func (c AssignCourierToZoneCommand) Validate() error {
	return c.guard.Validate(ErrAssignCourierToZoneCommandIsNotConstructed)
}

func (c AssignCourierToZoneCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c AssignCourierToZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *AssignCourierToZoneCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *AssignCourierToZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}
