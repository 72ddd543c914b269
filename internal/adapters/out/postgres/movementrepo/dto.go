// Package movementrepo provides data transfer objects and mapping functions
// for the append-only stock ledger. Ledger rows are only ever inserted;
// there is no update or delete path.
package movementrepo

import (
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"

	"github.com/google/uuid"
)

// MovementDTO represents one stock ledger row. The movement type is stored
// in its wire form ("ENTRY", "EXIT", "ADJUSTMENT", "RETURN") and the
// quantity keeps its sign.
type MovementDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID    uuid.UUID `gorm:"type:uuid;index"`
	LotID        uuid.UUID `gorm:"type:uuid;index"`
	MovementType string    `gorm:"index"`
	Quantity     int
	Reason       string
	Reference    *uuid.UUID `gorm:"type:uuid;index"`
	Actor        uuid.UUID  `gorm:"type:uuid"`
	OccurredAt   time.Time  `gorm:"index"`
}

// TableName specifies the database table name for stock movements.
func (MovementDTO) TableName() string {
	return "stock_movements"
}

// fromDomain converts a movement to its database representation.
func fromDomain(movement *stock.Movement) MovementDTO {
	var reference *uuid.UUID
	if ref := movement.Reference(); ref != nil {
		raw := ref.Bytes()
		reference = &raw
	}

	return MovementDTO{
		ID:           movement.ID().Bytes(),
		ProductID:    movement.ProductID().Bytes(),
		LotID:        movement.LotID().Bytes(),
		MovementType: movement.Type().String(),
		Quantity:     movement.Quantity(),
		Reason:       movement.Reason(),
		Reference:    reference,
		Actor:        movement.Actor().Bytes(),
		OccurredAt:   movement.OccurredAt(),
	}
}

// toDomain converts a database DTO to a movement via NewMovement, which
// re-validates the type and sign invariants on the way out of storage.
func toDomain(dto MovementDTO) (*stock.Movement, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}
	lotID, err := kernel.UUIDFromBytes(dto.LotID[:])
	if err != nil {
		return nil, err
	}
	actor, err := kernel.UUIDFromBytes(dto.Actor[:])
	if err != nil {
		return nil, err
	}
	movementType, err := stock.MovementTypeFromString(dto.MovementType)
	if err != nil {
		return nil, err
	}

	var reference *kernel.UUID
	if dto.Reference != nil {
		ref, refErr := kernel.UUIDFromBytes((*dto.Reference)[:])
		if refErr != nil {
			return nil, refErr
		}
		reference = &ref
	}

	return stock.NewMovement(
		id, productID, lotID, movementType, dto.Quantity,
		dto.Reason, reference, actor, dto.OccurredAt)
}
