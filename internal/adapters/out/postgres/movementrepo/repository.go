package movementrepo

import (
	"context"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"

	"gorm.io/gorm"
)

// GormMovementRepository implements MovementRepository using GORM.
type GormMovementRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMovementRepository creates a new GORM stock movement repository.
func NewGormMovementRepository(db *gorm.DB, tracker aggregateTracker) *GormMovementRepository {
	return &GormMovementRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add appends a movement to the ledger.
func (r *GormMovementRepository) Add(ctx context.Context, movement *stock.Movement) error {
	dto := fromDomain(movement)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(movement.ID(), movement)
	return nil
}

// ListByReference retrieves the movements of one type recorded against a
// business operation, in occurrence order. An unreferenced operation yields
// an empty slice, not an error.
func (r *GormMovementRepository) ListByReference(
	ctx context.Context, reference kernel.UUID, movementType stock.MovementType,
) ([]*stock.Movement, error) {
	if err := reference.Validate(); err != nil {
		return nil, err
	}
	if err := movementType.Validate(); err != nil {
		return nil, err
	}

	var dtos []MovementDTO
	err := r.db.WithContext(ctx).
		Where("reference = ? AND movement_type = ?", reference.Bytes(), movementType.String()).
		Order("occurred_at, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	movements := make([]*stock.Movement, 0, len(dtos))
	for _, dto := range dtos {
		movement, movementErr := toDomain(dto)
		if movementErr != nil {
			return nil, movementErr
		}
		movements = append(movements, movement)
	}

	return movements, nil
}
