// Package lotrepo provides data transfer objects and mapping functions for
// product lot persistence. Lot quantities are mutated with conditional
// in-database deltas rather than snapshot writes so concurrent allocations
// cannot oversell a lot.
package lotrepo

import (
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// LotDTO represents the database structure for persisting product lots.
// ExpiresAt is nullable for products that do not expire.
type LotDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;index"`
	LotCode   string
	Quantity  int
	ExpiresAt *time.Time
	EnteredAt time.Time
	Active    bool
	Version   int
}

// TableName specifies the database table name for product lots.
func (LotDTO) TableName() string {
	return "product_lots"
}

// fromDomain converts a product lot to its database representation.
func fromDomain(lot *stock.ProductLot) LotDTO {
	return LotDTO{
		ID:        lot.ID().Bytes(),
		ProductID: lot.ProductID().Bytes(),
		LotCode:   lot.LotCode(),
		Quantity:  lot.Quantity().Value(),
		ExpiresAt: lot.ExpiresAt(),
		EnteredAt: lot.EnteredAt(),
		Active:    lot.IsActive(),
		Version:   lot.Version(),
	}
}

// toDomain converts a database DTO to a product lot using RestoreProductLot.
func toDomain(dto LotDTO) (*stock.ProductLot, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	return stock.RestoreProductLot(
		id, productID, dto.LotCode, quantity, dto.ExpiresAt, dto.EnteredAt, dto.Active, dto.Version)
}
