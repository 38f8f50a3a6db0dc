// Package zonerepo persists zone aggregates in the zones table.
package zonerepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
)

// ZoneDTO is the zones table row. The boundary is stored as a jsonb array of
// vertices so a zone is loaded in a single read.
type ZoneDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_zones_name"`
	Description string          `gorm:"type:text;not null"`
	Boundary    []VertexDTO     `gorm:"type:jsonb;serializer:json;not null"`
	BaseTariff  decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Active      bool            `gorm:"not null;index"`
	CreatedAt   time.Time       `gorm:"not null;autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"not null;autoUpdateTime:false"`
}

// TableName overrides GORM's default "zone_dtos".
func (ZoneDTO) TableName() string {
	return "zones"
}

// VertexDTO is one boundary vertex inside the jsonb column.
type VertexDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func fromDomain(z *zone.Zone) ZoneDTO {
	vertices := z.Boundary().Vertices()
	boundary := make([]VertexDTO, 0, len(vertices))
	for _, v := range vertices {
		boundary = append(boundary, VertexDTO{Latitude: v.Latitude(), Longitude: v.Longitude()})
	}

	return ZoneDTO{
		ID:          z.ID().Bytes(),
		Name:        z.Name(),
		Description: z.Description(),
		Boundary:    boundary,
		BaseTariff:  z.BaseTariff(),
		Active:      z.IsActive(),
		CreatedAt:   z.CreatedAt(),
		UpdatedAt:   z.UpdatedAt(),
	}
}

func toDomain(dto ZoneDTO) (*zone.Zone, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	boundary, err := BoundaryToDomain(dto.Boundary)
	if err != nil {
		return nil, err
	}

	return zone.RestoreZone(id, dto.Name, dto.Description, boundary, dto.BaseTariff, dto.Active,
		dto.CreatedAt, dto.UpdatedAt)
}

// BoundaryToDomain converts stored vertices into a polygon.
func BoundaryToDomain(vertices []VertexDTO) (kernel.Polygon, error) {
	locations := make([]kernel.Location, 0, len(vertices))
	for _, v := range vertices {
		loc, err := kernel.NewLocation(v.Latitude, v.Longitude)
		if err != nil {
			return kernel.Polygon{}, err
		}
		locations = append(locations, loc)
	}

	return kernel.NewPolygon(locations)
}
