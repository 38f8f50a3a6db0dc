package queries

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"zonedelivery/internal/pkg/guard"
)

var ErrListZonesQueryIsNotConstructed = errors.New(
	"ListZonesQuery must be created via NewListZonesQuery constructor",
)

// ListZonesQuery lists zones by name, optionally active ones only.
type ListZonesQuery struct {
	activeOnly bool

	guard guard.ConstructorGuard
}

func NewListZonesQuery(activeOnly bool) ListZonesQuery {
	return ListZonesQuery{
		activeOnly: activeOnly,
		guard:      guard.NewConstructorGuard(),
	}
}

func (q ListZonesQuery) Validate() error {
	return q.guard.Validate(ErrListZonesQueryIsNotConstructed)
}

func (q ListZonesQuery) ActiveOnly() bool {
	return q.activeOnly
}

type ListZonesQueryHandler struct {
	db *gorm.DB
}

func NewListZonesQueryHandler(db *gorm.DB) ListZonesQueryHandler {
	return ListZonesQueryHandler{db: db}
}

// Handle returns zones ordered by name ascending. This is the same order
// zone lookup walks, so the first listed zone containing a point is the one
// lookup returns.
func (h ListZonesQueryHandler) Handle(ctx context.Context, query ListZonesQuery) ([]ZoneResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	zones := make([]ZoneResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT `+zoneColumns+`
		FROM zones
		WHERE active OR NOT ?
		ORDER BY name
	`, query.ActiveOnly()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		z, scanErr := scanZone(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		zones = append(zones, z)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return zones, nil
}
