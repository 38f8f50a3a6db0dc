package commands

import (
	"errors"

	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/guard"
)

var ErrUpdateZoneCommandIsNotConstructed = errors.New(
	"UpdateZoneCommand must be created via NewUpdateZoneCommand constructor",
)

// ZonePatch lists the zone fields to change. Nil fields are left untouched.
type ZonePatch struct {
	Name        *string
	Description *string
	Boundary    *kernel.Polygon
	BaseTariff  *decimal.Decimal
	Active      *bool
}

// IsEmpty reports whether the patch changes nothing.
func (p ZonePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Boundary == nil && p.BaseTariff == nil && p.Active == nil
}

// UpdateZoneCommand applies a partial update to an existing zone.
type UpdateZoneCommand struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID
	patch  ZonePatch

	guard guard.ConstructorGuard
}

// NewUpdateZoneCommand checks the zone ID and the shape of the patch. Business
// rules on the new values are enforced by the zone itself.
func NewUpdateZoneCommand(zoneID kernel.UUID, patch ZonePatch) (UpdateZoneCommand, error) {
	command := UpdateZoneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setZoneID(zoneID),
		command.setPatch(patch),
	); err != nil {
		return UpdateZoneCommand{}, err
	}

	return command, nil
}

func (c UpdateZoneCommand) Validate() error {
	return c.guard.Validate(ErrUpdateZoneCommandIsNotConstructed)
}

func (c UpdateZoneCommand) ZoneID() kernel.UUID {
	return c.zoneID
}

func (c UpdateZoneCommand) Patch() ZonePatch {
	return c.patch
}

func (c *UpdateZoneCommand) setZoneID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.zoneID = id
	return nil
}

func (c *UpdateZoneCommand) setPatch(patch ZonePatch) error {
	if patch.Boundary != nil {
		if err := patch.Boundary.Validate(); err != nil {
			return err
		}
	}

	c.patch = patch
	return nil
}
