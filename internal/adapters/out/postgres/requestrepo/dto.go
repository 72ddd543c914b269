// Package requestrepo provides data transfer objects and mapping functions
// for aid request persistence as far as the delivery core owns it: reading
// a request with its lines and writing back fulfillment state.
package requestrepo

import (
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for aid requests. The status
// is stored in its wire form because the table is shared with the request
// CRUD collaborator.
type RequestDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status  string    `gorm:"index"`
	Version int

	Lines []RequestLineDTO `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for aid requests.
func (RequestDTO) TableName() string {
	return "aid_requests"
}

// RequestLineDTO represents one requested product or kit with its delivered
// quantity so far. Exactly one of ProductID or KitID is set.
type RequestLineDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RequestID uuid.UUID  `gorm:"type:uuid;index"`
	ProductID *uuid.UUID `gorm:"type:uuid"`
	KitID     *uuid.UUID `gorm:"type:uuid"`
	Requested int
	Delivered int
}

// TableName specifies the database table name for request lines.
func (RequestLineDTO) TableName() string {
	return "request_lines"
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// toDomain converts a database DTO to a request aggregate using
// RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := request.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	lines := make([]*request.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		productID, lineErr := optionalUUID(lineDTO.ProductID)
		if lineErr != nil {
			return nil, lineErr
		}
		kitID, lineErr := optionalUUID(lineDTO.KitID)
		if lineErr != nil {
			return nil, lineErr
		}
		requested, lineErr := kernel.NewQuantity(lineDTO.Requested)
		if lineErr != nil {
			return nil, lineErr
		}
		delivered, lineErr := kernel.NewQuantity(lineDTO.Delivered)
		if lineErr != nil {
			return nil, lineErr
		}
		line, lineErr := request.RestoreLine(productID, kitID, requested, delivered)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	return request.RestoreRequest(id, status, lines, dto.Version)
}
