package kitrepo

import (
	"context"
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"
	"aiddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormKitRepository implements KitRepository using GORM.
type GormKitRepository struct {
	db *gorm.DB
}

// NewGormKitRepository creates a new GORM kit repository.
func NewGormKitRepository(db *gorm.DB) *GormKitRepository {
	return &GormKitRepository{db: db}
}

// Get retrieves a kit with its components by ID.
func (r *GormKitRepository) Get(ctx context.Context, id kernel.UUID) (*kit.Kit, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto KitDTO
	err := r.db.WithContext(ctx).Preload("Components").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("kit", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
