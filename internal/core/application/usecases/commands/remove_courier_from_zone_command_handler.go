package commands

import (
	"context"
)

// RemoveCourierFromZoneCommandHandler clears the zone of a courier. Removing
// an unassigned courier succeeds without writing.
type RemoveCourierFromZoneCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewRemoveCourierFromZoneCommandHandler(uowFactory CourierUoWFactory) RemoveCourierFromZoneCommandHandler {
	return RemoveCourierFromZoneCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RemoveCourierFromZoneCommandHandler) Handle(ctx context.Context, cmd RemoveCourierFromZoneCommand) error {
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

	courierRepo := uow.CourierRepository()

	c, err := courierRepo.GetForUpdate(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if c.Unassign() {
		if err = courierRepo.Update(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
