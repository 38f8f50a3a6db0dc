package orderrepo

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"zonedelivery/internal/core/domain/model/kernel"
	"zonedelivery/internal/core/domain/model/route"
	"zonedelivery/internal/pkg/errs"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// GetDeliveryPoints loads all ids in one query and returns the points in the
// order the ids were given. The first unknown id fails the call.
func (r *GormOrderRepository) GetDeliveryPoints(ctx context.Context, ids []kernel.UUID) ([]route.DeliveryPoint, error) {
	if len(ids) == 0 {
		return []route.DeliveryPoint{}, nil
	}

	rawIDs := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		rawIDs = append(rawIDs, id.Bytes())
	}

	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", rawIDs).Find(&dtos).Error; err != nil {
		return nil, err
	}

	byID := make(map[uuid.UUID]OrderDTO, len(dtos))
	for _, dto := range dtos {
		byID[dto.ID] = dto
	}

	points := make([]route.DeliveryPoint, 0, len(ids))
	for i, id := range ids {
		dto, ok := byID[rawIDs[i]]
		if !ok {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}

		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, nil
}
