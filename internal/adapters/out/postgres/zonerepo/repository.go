package zonerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"zonedelivery/internal/adapters/out/postgres/pgerrors"
	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/zone"
	"zonedelivery/internal/core/ports"
	"zonedelivery/internal/pkg/errs"
)

var updatableColumns = []string{"name", "description", "boundary", "base_tariff", "active", "updated_at"}

// GormZoneRepository implements ports.ZoneRepository using GORM.
type GormZoneRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormZoneRepository(db *gorm.DB, tracker aggregateTracker) *GormZoneRepository {
	return &GormZoneRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new zone. The unique index on name turns a race between two
// creates into a Conflict for the loser.
func (r *GormZoneRepository) Add(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return translateWriteError(err, aggregate)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update overwrites every mutable column, including zero values.
func (r *GormZoneRepository) Update(ctx context.Context, aggregate *zone.Zone) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&dto).Select(updatableColumns).Updates(&dto)
	if result.Error != nil {
		return translateWriteError(result.Error, aggregate)
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("zone", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormZoneRepository) Get(ctx context.Context, id kernel.UUID) (*zone.Zone, error) {
	return r.find(r.db.WithContext(ctx), id)
}

func (r *GormZoneRepository) Lock(ctx context.Context, id kernel.UUID, mode ports.LockMode) (*zone.Zone, error) {
	strength := clause.LockingStrengthShare
	if mode == ports.LockExclusive {
		strength = clause.LockingStrengthUpdate
	}

	return r.find(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: strength}), id)
}

func (r *GormZoneRepository) NameTaken(ctx context.Context, name string, exceptID kernel.UUID) (bool, error) {
	query := r.db.WithContext(ctx).Model(&ZoneDTO{}).Where("name = ?", name)
	if exceptID.Validate() == nil {
		query = query.Where("id <> ?", exceptID.Bytes())
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes the zone row. Couriers still pointing at the zone make the
// foreign key reject the delete, which is reported as a Conflict.
func (r *GormZoneRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ZoneDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		if pgerrors.IsForeignKeyViolation(result.Error) {
			return errs.NewConflictErrorWithCause("zone", id.String(), "couriers are assigned to the zone", result.Error)
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("zone", id.String())
	}

	return nil
}

func (r *GormZoneRepository) List(ctx context.Context, activeOnly bool) ([]*zone.Zone, error) {
	query := r.db.WithContext(ctx).Order("name ASC")
	if activeOnly {
		query = query.Where("active = ?", true)
	}

	var dtos []ZoneDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	zones := make([]*zone.Zone, 0, len(dtos))
	for _, dto := range dtos {
		z, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}

	return zones, nil
}

func (r *GormZoneRepository) find(db *gorm.DB, id kernel.UUID) (*zone.Zone, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ZoneDTO
	if err := db.First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("zone", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func translateWriteError(err error, aggregate *zone.Zone) error {
	if pgerrors.IsUniqueViolation(err) {
		return errs.NewConflictErrorWithCause("zone name", aggregate.Name(), "name is already taken", err)
	}
	if pgerrors.IsNumericOverflow(err) {
		return errs.NewValueIsOutOfRangeErrorWithCause("base tariff", aggregate.BaseTariff().String(),
			"0", zone.MaxBaseTariff.String(), err)
	}
	return err
}
