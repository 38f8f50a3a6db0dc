package commands

import (
	"context"

	"zonedelivery/internal/core/ports"
	"zonedelivery/internal/pkg/errs"
)

// DeleteZoneCommandHandler deletes a zone inside one transaction:
// the zone row is locked exclusively, assigned couriers are counted and only
// an empty zone is removed. Assignments take a share lock on the same row, so
// a concurrent assignment either finishes first and blocks the delete, or
// waits and then finds the zone gone.
type DeleteZoneCommandHandler struct {
	uowFactory UoWFactory
}

func NewDeleteZoneCommandHandler(uowFactory UoWFactory) DeleteZoneCommandHandler {
	return DeleteZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteZoneCommandHandler) Handle(ctx context.Context, cmd DeleteZoneCommand) error {
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

	zoneRepo := uow.ZoneRepository()

	z, err := zoneRepo.Lock(ctx, cmd.ZoneID(), ports.LockExclusive)
	if err != nil {
		return err
	}

	assigned, err := uow.CourierRepository().CountAssignedTo(ctx, z.ID())
	if err != nil {
		return err
	}
	if assigned > 0 {
		return errs.NewConflictError("zone", z.ID().String(), "couriers are still assigned")
	}

	if err = zoneRepo.Delete(ctx, z.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
