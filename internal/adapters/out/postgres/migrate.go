package postgres

import (
	"gorm.io/gorm"

	"zonedelivery/internal/adapters/out/postgres/courierrepo"
	"zonedelivery/internal/adapters/out/postgres/orderrepo"
	"zonedelivery/internal/adapters/out/postgres/zonerepo"
)

// Migrate creates or updates the zones, couriers and orders tables. Zones come
// first so the couriers foreign key can reference them.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&zonerepo.ZoneDTO{},
		&courierrepo.CourierDTO{},
		&orderrepo.OrderDTO{},
	)
}
