package ports

import (
	"context"

	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
)

// CourierRepository is the vendor directory. Couriers are registered and
// positioned elsewhere; this service reads them and changes their zone.
type CourierRepository interface {
	// Get retrieves a courier by id or fails with NotFound.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetForUpdate retrieves a courier and locks its row until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// Update persists the courier's zone assignment.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// CountAssignedTo counts couriers currently assigned to zoneID.
	CountAssignedTo(ctx context.Context, zoneID kernel.UUID) (int64, error)

	// ListUnassignedWithPosition returns couriers without a zone that have
	// reported a position, ordered by id.
	ListUnassignedWithPosition(ctx context.Context) ([]*courier.Courier, error)
}
