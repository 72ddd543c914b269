package lotrepo

import (
	"context"
	"errors"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormLotRepository implements LotRepository using GORM.
type GormLotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormLotRepository creates a new GORM product lot repository.
func NewGormLotRepository(db *gorm.DB, tracker aggregateTracker) *GormLotRepository {
	return &GormLotRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new product lot to the database.
func (r *GormLotRepository) Add(ctx context.Context, lot *stock.ProductLot) error {
	if err := lot.Validate(); err != nil {
		return err
	}

	dto := fromDomain(lot)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(lot.ID(), lot)
	return nil
}

// Get retrieves a lot by ID.
func (r *GormLotRepository) Get(ctx context.Context, id kernel.UUID) (*stock.ProductLot, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LotDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productLot", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByProduct retrieves the product's active lots holding stock, in
// FEFO order: expiry ascending with non-expiring lots last, then entry date
// ascending.
func (r *GormLotRepository) GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*stock.ProductLot, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dtos []LotDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND active AND quantity > 0", productID.Bytes()).
		Order("expires_at ASC NULLS LAST, entered_at ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	lots := make([]*stock.ProductLot, 0, len(dtos))
	for _, dto := range dtos {
		lot, lotErr := toDomain(dto)
		if lotErr != nil {
			return nil, lotErr
		}
		lots = append(lots, lot)
	}

	return lots, nil
}

// Decrement removes quantity units from a lot with an in-database guard on
// the stored quantity. A lot that no longer holds enough units yields a
// ConflictError and stays unchanged, forcing the caller to re-plan.
func (r *GormLotRepository) Decrement(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&LotDTO{}).
		Where("id = ? AND quantity >= ?", id.Bytes(), quantity.Value()).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity - ?", quantity.Value()),
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewConflictError("productLot", id.String())
	}

	return nil
}

// Increment adds quantity units back to a lot, used by the compensating
// returns of a cancelled delivery.
func (r *GormLotRepository) Increment(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&LotDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{
			"quantity": gorm.Expr("quantity + ?", quantity.Value()),
			"version":  gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("productLot", id.String())
	}

	return nil
}
