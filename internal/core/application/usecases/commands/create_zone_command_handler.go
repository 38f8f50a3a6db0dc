package commands

import (
	"context"

	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/pkg/errs"
)

// CreateZoneCommandHandler persists new zones. Names are unique: a taken
// name is reported before the insert, and the unique index catches the race
// between two concurrent creates.
type CreateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	now        Clock
}

func NewCreateZoneCommandHandler(uowFactory ZoneUoWFactory, now Clock) CreateZoneCommandHandler {
	return CreateZoneCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h CreateZoneCommandHandler) Handle(ctx context.Context, cmd CreateZoneCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	z, err := zone.NewZone(
		cmd.ZoneID(),
		cmd.Name(),
		cmd.Description(),
		cmd.Boundary(),
		cmd.BaseTariff(),
		cmd.Active(),
		h.now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()

	taken, err := zoneRepo.NameTaken(ctx, z.Name(), z.ID())
	if err != nil {
		return err
	}
	if taken {
		return errs.NewConflictError("zone name", z.Name(), "name is already taken")
	}

	if err = zoneRepo.Add(ctx, z); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
