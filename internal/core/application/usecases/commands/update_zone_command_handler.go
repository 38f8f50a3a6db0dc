package commands

import (
	"context"
	"errors"

	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/ports"
	"zonedelivery/internal/pkg/errs"
)

// UpdateZoneCommandHandler locks the zone row, applies the patch and writes
// every mutable column back. An empty patch still fails with NotFound for a
// missing zone but writes nothing.
type UpdateZoneCommandHandler struct {
	uowFactory ZoneUoWFactory
	now        Clock
}

func NewUpdateZoneCommandHandler(uowFactory ZoneUoWFactory, now Clock) UpdateZoneCommandHandler {
	return UpdateZoneCommandHandler{
		uowFactory: uowFactory,
		now:        now,
	}
}

func (h UpdateZoneCommandHandler) Handle(ctx context.Context, cmd UpdateZoneCommand) error {
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

	patch := cmd.Patch()
	if patch.IsEmpty() {
		return uow.Commit(ctx)
	}

	if err = applyPatch(z, patch); err != nil {
		return err
	}

	if patch.Name != nil {
		taken, nameErr := zoneRepo.NameTaken(ctx, z.Name(), z.ID())
		if nameErr != nil {
			return nameErr
		}
		if taken {
			return errs.NewConflictError("zone name", z.Name(), "name is already taken")
		}
	}

	z.Touch(h.now())

	if err = zoneRepo.Update(ctx, z); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func applyPatch(z *zone.Zone, patch ZonePatch) error {
	var fieldErrs []error

	if patch.Name != nil {
		fieldErrs = append(fieldErrs, z.Rename(*patch.Name))
	}
	if patch.Description != nil {
		z.ChangeDescription(*patch.Description)
	}
	if patch.Boundary != nil {
		fieldErrs = append(fieldErrs, z.ChangeBoundary(*patch.Boundary))
	}
	if patch.BaseTariff != nil {
		fieldErrs = append(fieldErrs, z.ChangeBaseTariff(*patch.BaseTariff))
	}
	if patch.Active != nil {
		if *patch.Active {
			z.Activate()
		} else {
			z.Deactivate()
		}
	}

	return errors.Join(fieldErrs...)
}
