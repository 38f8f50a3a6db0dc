package commands

import (
	"context"

	"zonedelivery/internal/core/ports"
)

// AssignCourierToZoneCommandHandler assigns a courier to a zone.
//
// The zone row is read with a share lock and the courier row with an update
// lock in the same transaction. Deleting the zone needs an exclusive lock, so
// the two operations serialize; two assignments of the same courier serialize
// on the courier row and the last one wins.
//
// Re-assigning a courier to its current zone succeeds without writing.
//
// Example:
//
//	cmd, _ := NewAssignCourierToZoneCommand(courierID, zoneID)
//	err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindNotFound:
//	    // courier or zone does not exist
//	case errs.KindConflict:
//	    // zone is inactive
//	}
type AssignCourierToZoneCommandHandler struct {
	uowFactory UoWFactory
}

func NewAssignCourierToZoneCommandHandler(uowFactory UoWFactory) AssignCourierToZoneCommandHandler {
	return AssignCourierToZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AssignCourierToZoneCommandHandler) Handle(ctx context.Context, cmd AssignCourierToZoneCommand) error {
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

	z, err := uow.ZoneRepository().Lock(ctx, cmd.ZoneID(), ports.LockShare)
	if err != nil {
		return err
	}

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	changed, err := c.AssignTo(z)
	if err != nil {
		return err
	}

	if changed {
		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
