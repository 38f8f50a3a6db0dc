// Package queries contains the read operations. Zone listings and courier
// listings read tables directly through GORM; computations that need domain
// objects read them through the narrow reader interfaces declared here.
package queries

import (
	"context"

	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/core/domain/model/zone"
)

type (
	// ZoneReader loads zone aggregates.
	ZoneReader interface {
		Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error)
		List(ctx context.Context, activeOnly bool) ([]*zone.Zone, error)
	}

	// CourierReader loads couriers with their last known position.
	CourierReader interface {
		Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)
	}

	// OrderReader resolves orders to delivery points.
	OrderReader interface {
		GetDeliveryPoints(ctx context.Context, ids []kernel.UUID) ([]route.DeliveryPoint, error)
	}
)
