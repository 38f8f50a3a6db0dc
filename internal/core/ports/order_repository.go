package ports

import (
	"context"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
)

// OrderRepository exposes the delivery coordinates and weight of orders.
type OrderRepository interface {
	// GetDeliveryPoints resolves every id to a delivery point, preserving the
	// order of ids. If any id is unknown the whole call fails with NotFound.
	GetDeliveryPoints(ctx context.Context, ids []kernel.UUID) ([]route.DeliveryPoint, error)
}
