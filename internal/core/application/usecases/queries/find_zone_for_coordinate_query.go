package queries

import (
	"context"
	"errors"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/services"
	"zonedelivery/internal/pkg/guard"
)

var ErrFindZoneForCoordinateQueryIsNotConstructed = errors.New(
	"FindZoneForCoordinateQuery must be created via NewFindZoneForCoordinateQuery constructor",
)

type FindZoneForCoordinateQuery struct { //nolint:recvcheck //using for validation
	location kernel.Location

	guard guard.ConstructorGuard
}

// NewFindZoneForCoordinateQuery fails with an out-of-range error for
// coordinates outside [-90,90] x [-180,180].
func NewFindZoneForCoordinateQuery(latitude, longitude float64) (FindZoneForCoordinateQuery, error) {
	loc, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return FindZoneForCoordinateQuery{}, err
	}

	return FindZoneForCoordinateQuery{
		location: loc,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q FindZoneForCoordinateQuery) Validate() error {
	return q.guard.Validate(ErrFindZoneForCoordinateQueryIsNotConstructed)
}

func (q FindZoneForCoordinateQuery) Location() kernel.Location {
	return q.location
}

// FindZoneForCoordinateQueryHandler resolves a point to the zone serving it.
//
// Only active zones are considered, in name order; when zones overlap the
// first one in that order wins.
type FindZoneForCoordinateQueryHandler struct {
	zones   ZoneReader
	locator services.ZoneLocator
}

func NewFindZoneForCoordinateQueryHandler(zones ZoneReader) FindZoneForCoordinateQueryHandler {
	return FindZoneForCoordinateQueryHandler{
		zones:   zones,
		locator: services.NewZoneLocator(),
	}
}

// Handle returns nil without error when no active zone contains the point.
func (h FindZoneForCoordinateQueryHandler) Handle(
	ctx context.Context,
	query FindZoneForCoordinateQuery,
) (*ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones, err := h.zones.List(ctx, true)
	if err != nil {
		return nil, err
	}

	match := h.locator.Locate(query.Location(), zones)
	if match == nil {
		return nil, nil //nolint:nilnil // no zone is a valid answer
	}

	response := NewZoneResponse(match)
	return &response, nil
}
