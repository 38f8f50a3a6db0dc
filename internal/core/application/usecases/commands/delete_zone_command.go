package commands

import (
	"errors"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/guard"
)

var ErrDeleteZoneCommandIsNotConstructed = errors.New(
	"DeleteZoneCommand must be created via NewDeleteZoneCommand constructor",
)

// DeleteZoneCommand removes a zone that no courier is assigned to.
type DeleteZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteZoneCommand(zoneID kernel.UUID) (DeleteZoneCommand, error) {
	command := DeleteZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setZoneID(zoneID); err != nil {
		return DeleteZoneCommand{}, err
	}

	return command, nil
}

func (c DeleteZoneCommand) Validate() error {
	return c.guard.Validate(ErrDeleteZoneCommandIsNotConstructed)
}

func (c DeleteZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c *DeleteZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}
