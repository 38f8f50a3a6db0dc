// Package commands contains the operations that change zones and courier
// assignments. Every handler validates its command, opens one unit of work and
// commits only when all writes succeeded.
package commands

import (
	"context"
	"time"

	"zonedelivery/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	ZoneRepoFactory interface {
		ZoneRepository() ports.ZoneRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// ZoneUoW is used by commands that only change zones.
	ZoneUoW interface {
		TxManager
		ZoneRepoFactory
	}

	ZoneUoWFactory interface {
		Create() ZoneUoW
	}

	// CourierUoW is used by commands that only change couriers.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans zones and couriers, for commands that lock both.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   z, err := uow.ZoneRepository().Lock(ctx, zoneID, ports.LockShare)
	//   c, err := uow.CourierRepository().GetForUpdate(ctx, courierID)
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		ZoneRepoFactory
		CourierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// Clock returns the current time. Handlers take it as a dependency so tests
// can pin timestamps.
type Clock func() time.Time
