package requestrepo

import (
	"context"
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/request"
	"aiddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRequestRepository implements RequestRepository using GORM.
type GormRequestRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRequestRepository creates a new GORM aid request repository.
func NewGormRequestRepository(db *gorm.DB, tracker aggregateTracker) *GormRequestRepository {
	return &GormRequestRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a request with its lines by ID.
func (r *GormRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RequestDTO
	err := r.db.WithContext(ctx).Preload("Lines").First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("request", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update persists the request's fulfillment state under optimistic locking:
// the status and version of the request row, and the delivered quantity of
// each line. Line sets are owned by the request CRUD collaborator and are
// never changed here.
func (r *GormRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	result := db.Model(&RequestDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":  aggregate.Status().String(),
			"version": aggregate.Version() + 1,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("request", aggregate.ID().String())
	}

	for _, line := range aggregate.Lines() {
		lineQuery := db.Model(&RequestLineDTO{}).
			Where("request_id = ?", aggregate.ID().Bytes())
		if productID := line.ProductID(); productID != nil {
			lineQuery = lineQuery.Where("product_id = ?", productID.Bytes())
		} else {
			lineQuery = lineQuery.Where("kit_id = ?", line.KitID().Bytes())
		}

		if err := lineQuery.Update("delivered", line.Delivered().Value()).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
