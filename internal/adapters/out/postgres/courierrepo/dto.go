// Package courierrepo reads couriers from the vendor directory table and
// persists their zone assignment.
package courierrepo

import (
	"github.com/google/uuid"

	"zonedelivery/internal/adapters/out/postgres/zonerepo"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
)

// CourierDTO is the couriers table row. Position columns are NULL until the
// courier reports a location. The zone foreign key restricts deleting a zone
// that still has couriers.
type CourierDTO struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey"`
	Name      string            `gorm:"type:varchar(255);not null"`
	Latitude  *float64          `gorm:"type:double precision"`
	Longitude *float64          `gorm:"type:double precision"`
	Rating    float64           `gorm:"type:double precision;not null"`
	ZoneID    *uuid.UUID        `gorm:"type:uuid;index"`
	Zone      *zonerepo.ZoneDTO `gorm:"foreignKey:ZoneID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

// TableName overrides GORM's default "courier_dtos".
func (CourierDTO) TableName() string {
	return "couriers"
}

// FromDomain maps a courier to its row. Seeding code and tests use it to
// register couriers on behalf of the vendor directory.
func FromDomain(c *courier.Courier) CourierDTO {
	dto := CourierDTO{
		ID:     c.ID().Bytes(),
		Name:   c.Name(),
		Rating: c.Rating(),
	}

	if loc, ok := c.Location(); ok {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	if zoneID, ok := c.AssignedZoneID(); ok {
		raw := zoneID.Bytes()
		dto.ZoneID = &raw
	}

	return dto
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.Location
	if dto.Latitude != nil && dto.Longitude != nil {
		loc, locErr := kernel.NewLocation(*dto.Latitude, *dto.Longitude)
		if locErr != nil {
			return nil, locErr
		}
		location = &loc
	}

	var zoneID *kernel.UUID
	if dto.ZoneID != nil {
		zID, zoneErr := kernel.UUIDFromBytes((*dto.ZoneID)[:])
		if zoneErr != nil {
			return nil, zoneErr
		}
		zoneID = &zID
	}

	return courier.RestoreCourier(id, dto.Name, location, dto.Rating, zoneID)
}
