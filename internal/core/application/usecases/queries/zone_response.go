package queries

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
)

// ZoneResponse is the zone read model.
type ZoneResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Boundary    []kernel.Location
	BaseTariff  decimal.Decimal
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewZoneResponse builds the read model from a loaded aggregate.
func NewZoneResponse(z *zone.Zone) ZoneResponse {
	return ZoneResponse{
		ID:          z.ID(),
		Name:        z.Name(),
		Description: z.Description(),
		Boundary:    z.Boundary().Vertices(),
		BaseTariff:  z.BaseTariff(),
		Active:      z.IsActive(),
		CreatedAt:   z.CreatedAt(),
		UpdatedAt:   z.UpdatedAt(),
	}
}

const zoneColumns = `id, name, description, boundary, base_tariff, active, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// boundaryVertex mirrors one element of the zones.boundary jsonb array.
type boundaryVertex struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func scanZone(row rowScanner) (ZoneResponse, error) {
	var (
		response ZoneResponse
		id       uuid.UUID
		boundary []byte
	)

	if err := row.Scan(
		&id,
		&response.Name,
		&response.Description,
		&boundary,
		&response.BaseTariff,
		&response.Active,
		&response.CreatedAt,
		&response.UpdatedAt,
	); err != nil {
		return ZoneResponse{}, err
	}

	zoneID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return ZoneResponse{}, err
	}
	response.ID = zoneID

	response.Boundary, err = decodeBoundary(boundary)
	if err != nil {
		return ZoneResponse{}, fmt.Errorf("zone %s: %w", zoneID, err)
	}

	return response, nil
}

func decodeBoundary(raw []byte) ([]kernel.Location, error) {
	var vertices []boundaryVertex
	if err := json.Unmarshal(raw, &vertices); err != nil {
		return nil, err
	}

	locations := make([]kernel.Location, 0, len(vertices))
	for _, v := range vertices {
		loc, err := kernel.NewLocation(v.Latitude, v.Longitude)
		if err != nil {
			return nil, err
		}
		locations = append(locations, loc)
	}

	return locations, nil
}
