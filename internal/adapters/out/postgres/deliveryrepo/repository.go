package deliveryrepo

import (
	"context"
	"errors"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDeliveryRepository implements DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new delivery with its lines and creation history entry.
// A duplicate key, in particular the partial unique index guarding one open
// delivery per request, comes back as a ConflictError.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewConflictError("open delivery for request", aggregate.RequestID().String())
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing delivery under optimistic locking. The row is
// written only when the stored version still matches the version the
// aggregate was read with; otherwise nothing changes and a ConflictError is
// returned. Child rows (lines, draws, history) are replaced wholesale.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1
	lines, history := dto.Lines, dto.History
	dto.Lines, dto.History = nil, nil

	db := r.db.WithContext(ctx)
	result := db.Model(&DeliveryDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("delivery", aggregate.ID().String())
	}

	if err := r.replaceChildren(db, dto.ID, lines, history); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// replaceChildren rewrites the line, draw, and history rows of a delivery.
func (r *GormDeliveryRepository) replaceChildren(
	db *gorm.DB, deliveryID uuid.UUID, lines []LineDTO, history []HistoryDTO,
) error {
	lineIDs := db.Model(&LineDTO{}).Select("id").Where("delivery_id = ?", deliveryID)
	if err := db.Where("line_id IN (?)", lineIDs).Delete(&LotDrawDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("delivery_id = ?", deliveryID).Delete(&LineDTO{}).Error; err != nil {
		return err
	}
	if err := db.Where("delivery_id = ?", deliveryID).Delete(&HistoryDTO{}).Error; err != nil {
		return err
	}

	if len(lines) > 0 {
		if err := db.Create(&lines).Error; err != nil {
			return err
		}
	}
	if len(history) > 0 {
		if err := db.Create(&history).Error; err != nil {
			return err
		}
	}
	return nil
}

// Get retrieves a delivery by ID with its lines, draws, and history.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.preloaded(ctx).First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetOpenByRequestID retrieves the request's delivery still in a non-terminal
// status. A request holds at most one open delivery at a time.
func (r *GormDeliveryRepository) GetOpenByRequestID(ctx context.Context, requestID kernel.UUID) (*delivery.Delivery, error) {
	if err := requestID.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.preloaded(ctx).
		First(&dto, "request_id = ? AND status NOT IN ?",
			requestID.Bytes(), []int{int(delivery.Delivered), int(delivery.Cancelled)}).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("open delivery for request", requestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func (r *GormDeliveryRepository) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Lines.Draws").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		})
}
