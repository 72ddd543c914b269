// Package kitrepo provides read-only access to kit compositions. Kits are
// maintained by the catalog collaborator; the delivery core only expands
// them into product demands during allocation.
package kitrepo

import (
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"

	"github.com/google/uuid"
)

// KitDTO represents the database structure for kit compositions.
type KitDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string

	Components []ComponentDTO `gorm:"foreignKey:KitID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for kits.
func (KitDTO) TableName() string {
	return "kits"
}

// ComponentDTO represents one product inside a kit with its per-kit
// quantity.
type ComponentDTO struct {
	KitID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int
}

// TableName specifies the database table name for kit components.
func (ComponentDTO) TableName() string {
	return "kit_components"
}

// toDomain converts a database DTO to a kit using NewKit, which re-checks
// the non-empty and no-duplicate component invariants.
func toDomain(dto KitDTO) (*kit.Kit, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	components := make([]kit.Component, 0, len(dto.Components))
	for _, componentDTO := range dto.Components {
		productID, componentErr := kernel.UUIDFromBytes(componentDTO.ProductID[:])
		if componentErr != nil {
			return nil, componentErr
		}
		quantity, componentErr := kernel.NewPositiveQuantity(componentDTO.Quantity)
		if componentErr != nil {
			return nil, componentErr
		}
		component, componentErr := kit.NewComponent(productID, quantity)
		if componentErr != nil {
			return nil, componentErr
		}
		components = append(components, component)
	}

	return kit.NewKit(id, dto.Name, components)
}
