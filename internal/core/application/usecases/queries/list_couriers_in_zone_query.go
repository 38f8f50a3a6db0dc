package queries

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var ErrListCouriersInZoneQueryIsNotConstructed = errors.New(
	"ListCouriersInZoneQuery must be created via NewListCouriersInZoneQuery constructor",
)

// ListCouriersInZoneQuery lists the couriers assigned to one zone.
//
// Example:
//
//	query, _ := NewListCouriersInZoneQuery(zoneID)
//	couriers, err := handler.Handle(ctx, query)
//	for _, c := range couriers {
//	    fmt.Printf("%s rated %.1f\n", c.Name, c.Rating)
//	}
type ListCouriersInZoneQuery struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListCouriersInZoneQuery(zoneID kernel.UUID) (ListCouriersInZoneQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return ListCouriersInZoneQuery{}, err
	}

	return ListCouriersInZoneQuery{
		zoneID: zoneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q ListCouriersInZoneQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersInZoneQueryIsNotConstructed)
}

func (q ListCouriersInZoneQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

// CourierPositionResponse is a courier with its last reported position.
// Location is nil when the courier never reported one.
type CourierPositionResponse struct {
	ID       kernel.UUID
	Name     string
	Location *kernel.Location
	Rating   float64
}

type ListCouriersInZoneQueryHandler struct {
	db *gorm.DB
}

func NewListCouriersInZoneQueryHandler(db *gorm.DB) ListCouriersInZoneQueryHandler {
	return ListCouriersInZoneQueryHandler{db: db}
}

// Handle returns couriers by rating, highest first, ties by id. A missing
// zone fails with NotFound; an existing zone without couriers yields an empty
// slice.
func (h ListCouriersInZoneQueryHandler) Handle(
	ctx context.Context,
	query ListCouriersInZoneQuery,
) ([]CourierPositionResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	db := h.db.WithContext(ctx)
	zoneID := query.ZoneID().Bytes()

	var exists bool
	if err := db.Raw(`SELECT EXISTS (SELECT 1 FROM zones WHERE id = ?)`, zoneID).Row().Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.NewObjectNotFoundError("zone", query.ZoneID().String())
	}

	couriers := make([]CourierPositionResponse, 0)

	rows, err := db.Raw(`
		SELECT
			id,
			name,
			latitude,
			longitude,
			rating
		FROM couriers
		WHERE zone_id = ?
		ORDER BY rating DESC, id
	`, zoneID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c        CourierPositionResponse
			id       uuid.UUID
			lat, lon sql.NullFloat64
		)

		if err = rows.Scan(&id, &c.Name, &lat, &lon, &c.Rating); err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		c.ID = courierID

		if lat.Valid && lon.Valid {
			loc, locErr := kernel.NewLocation(lat.Float64, lon.Float64)
			if locErr != nil {
				return nil, locErr
			}
			c.Location = &loc
		}

		couriers = append(couriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return couriers, nil
}
