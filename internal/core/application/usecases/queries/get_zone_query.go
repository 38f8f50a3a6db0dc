package queries

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
	"zonedelivery/internal/pkg/guard"
)

var ErrGetZoneQueryIsNotConstructed = errors.New(
	"GetZoneQuery must be created via NewGetZoneQuery constructor",
)

type GetZoneQuery struct { //nolint:recvcheck //using for validation
	zoneID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetZoneQuery(zoneID kernel.UUID) (GetZoneQuery, error) {
	if err := zoneID.Validate(); err != nil {
		return GetZoneQuery{}, err
	}

	return GetZoneQuery{
		zoneID: zoneID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetZoneQuery) Validate() error {
	return q.guard.Validate(ErrGetZoneQueryIsNotConstructed)
}

func (q GetZoneQuery) ZoneID() kernel.UUID {
	return q.zoneID
}

type GetZoneQueryHandler struct {
	db *gorm.DB
}

func NewGetZoneQueryHandler(db *gorm.DB) GetZoneQueryHandler {
	return GetZoneQueryHandler{db: db}
}

// Handle fails with NotFound when the zone does not exist.
func (h GetZoneQueryHandler) Handle(ctx context.Context, query GetZoneQuery) (ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return ZoneResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT `+zoneColumns+`
		FROM zones
		WHERE id = ?
	`, query.ZoneID().Bytes()).Row()

	z, err := scanZone(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ZoneResponse{}, errs.NewObjectNotFoundError("zone", query.ZoneID().String())
	}
	if err != nil {
		return ZoneResponse{}, err
	}

	return z, nil
}
