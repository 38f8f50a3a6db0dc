package commands

import (
	"context"
	"errors"

	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/core/ports"
	"zonedelivery/internal/pkg/errs"
)

// AutoAssignCouriersCommandHandler runs one auto-assignment pass in a single
// transaction and reports how many couriers were assigned.
//
// Zones are matched in name order, the same order FindZoneForCoordinate uses.
// Couriers outside every active zone stay unassigned. A matched zone is
// re-read with a share lock before the courier is assigned; if it was deleted
// or deactivated meanwhile the courier is skipped.
type AutoAssignCouriersCommandHandler struct {
	uowFactory UoWFactory
	locator    services.ZoneLocator
}

func NewAutoAssignCouriersCommandHandler(uowFactory UoWFactory) AutoAssignCouriersCommandHandler {
	return AutoAssignCouriersCommandHandler{
		uowFactory: uowFactory,
		locator:    services.NewZoneLocator(),
	}
}

func (h AutoAssignCouriersCommandHandler) Handle(ctx context.Context, cmd AutoAssignCouriersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	zoneRepo := uow.ZoneRepository()
	courierRepo := uow.CourierRepository()

	couriers, err := courierRepo.ListUnassignedWithPosition(ctx)
	if err != nil {
		return 0, err
	}
	if len(couriers) == 0 {
		return 0, nil
	}

	zones, err := zoneRepo.List(ctx, true)
	if err != nil {
		return 0, err
	}

	assigned := 0
	for _, candidate := range couriers {
		loc, ok := candidate.Location()
		if !ok {
			continue
		}

		match := h.locator.Locate(loc, zones)
		if match == nil {
			continue
		}

		z, lockErr := zoneRepo.Lock(ctx, match.ID(), ports.LockShare)
		if errors.Is(lockErr, errs.ErrObjectNotFound) {
			continue
		}
		if lockErr != nil {
			return 0, lockErr
		}

		c, getErr := courierRepo.GetForUpdate(ctx, candidate.ID())
		if getErr != nil {
			return 0, getErr
		}
		if _, taken := c.AssignedZoneID(); taken {
			continue
		}

		changed, assignErr := c.AssignTo(z)
		if errors.Is(assignErr, errs.ErrConflict) {
			continue
		}
		if assignErr != nil {
			return 0, assignErr
		}
		if !changed {
			continue
		}

		if err = courierRepo.Update(ctx, c); err != nil {
			return 0, err
		}
		assigned++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return assigned, nil
}
