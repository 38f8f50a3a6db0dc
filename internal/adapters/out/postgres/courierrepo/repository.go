package courierrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zonedelivery/internal/adapters/out/postgres/pgerrors"
	"zonedelivery/internal/core/domain/model/courier"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/pkg/errs"
)

// GormCourierRepository implements ports.CourierRepository using GORM.
type GormCourierRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormCourierRepository(db *gorm.DB, tracker aggregateTracker) *GormCourierRepository {
	return &GormCourierRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx), id)
}

// GetForUpdate locks the courier row, serializing concurrent assignments of the
// same courier.
func (r *GormCourierRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}), id)
}

// Update writes the zone assignment only; the rest of the row belongs to the
// vendor directory.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	var zoneID any
	if id, ok := aggregate.AssignedZoneID(); ok {
		zoneID = id.Bytes()
	}

	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", aggregate.ID().Bytes()).
		Update("zone_id", zoneID)
	if result.Error != nil {
		if pgerrors.IsForeignKeyViolation(result.Error) {
			return errs.NewObjectNotFoundErrorWithCause("zone", zoneID, result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormCourierRepository) CountAssignedTo(ctx context.Context, zoneID kernel.UUID) (int64, error) {
	if err := zoneID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("zone_id = ?", zoneID.Bytes()).
		Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (r *GormCourierRepository) ListUnassignedWithPosition(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).
		Where("zone_id IS NULL AND latitude IS NOT NULL AND longitude IS NOT NULL").
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

func (r *GormCourierRepository) find(db *gorm.DB, id kernel.UUID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
