// Package orderrepo reads delivery coordinates and parcel weight from the
// orders table owned by the order service.
package orderrepo

import (
	"github.com/google/uuid"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
)

// OrderDTO holds the order columns route planning needs.
type OrderDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryLatitude  float64   `gorm:"type:double precision;not null"`
	DeliveryLongitude float64   `gorm:"type:double precision;not null"`
	WeightGrams       int       `gorm:"type:int;not null;default:0"`
}

// TableName overrides GORM's default "order_dtos".
func (OrderDTO) TableName() string {
	return "orders"
}

func toDomain(dto OrderDTO) (route.DeliveryPoint, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return route.DeliveryPoint{}, err
	}

	loc, err := kernel.NewLocation(dto.DeliveryLatitude, dto.DeliveryLongitude)
	if err != nil {
		return route.DeliveryPoint{}, err
	}

	return route.NewDeliveryPoint(id, loc, dto.WeightGrams)
}
