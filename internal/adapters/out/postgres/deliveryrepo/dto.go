// Package deliveryrepo provides data transfer objects and mapping functions
// for delivery persistence. This package implements the repository pattern
// for the delivery aggregate, handling the conversion between the aggregate
// (with its lines, lot draws, and transition history) and its relational
// representation.
package deliveryrepo

import (
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DeliveryDTO represents the database structure for persisting delivery
// aggregates. Actor columns are nullable because they are filled one by one
// as the workflow advances. The version column backs optimistic locking.
//
// The partial unique index on request_id enforces at most one open delivery
// per request at the database level; statuses from Delivered (6) upward are
// terminal and excluded, so concurrent creates cannot both slip past the
// handler's existence check. A lost race surfaces as a unique violation on
// insert.
type DeliveryDTO struct {
	ID                   uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Code                 string     `gorm:"uniqueIndex"`
	RequestID            uuid.UUID  `gorm:"type:uuid;uniqueIndex:uniq_open_delivery_per_request,where:status < 6"`
	Status               int        `gorm:"index"`
	CreatedBy            uuid.UUID  `gorm:"type:uuid"`
	AuthorizedBy         *uuid.UUID `gorm:"type:uuid"`
	WarehouseReceivedBy  *uuid.UUID `gorm:"type:uuid"`
	PreparedBy           *uuid.UUID `gorm:"type:uuid"`
	DeliveredBy          *uuid.UUID `gorm:"type:uuid"`
	PartialAuthorization bool
	ReceiverName         *string
	ReceiverDocument     *string
	CancelReason         *string
	CreatedAt            time.Time
	Version              int

	Lines   []LineDTO    `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
	History []HistoryDTO `gorm:"foreignKey:DeliveryID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// LineDTO represents one delivery line. Exactly one of ProductID or KitID is
// set. Line rows are replaced wholesale on aggregate updates, so their IDs
// are not stable across updates.
type LineDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	DeliveryID         uuid.UUID  `gorm:"type:uuid;index"`
	ProductID          *uuid.UUID `gorm:"type:uuid"`
	KitID              *uuid.UUID `gorm:"type:uuid"`
	Quantity           int
	AuthorizedQuantity *int

	Draws []LotDrawDTO `gorm:"foreignKey:LineID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for delivery lines.
func (LineDTO) TableName() string {
	return "delivery_lines"
}

// LotDrawDTO represents one recorded lot draw of a delivery line.
type LotDrawDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	LineID    uuid.UUID `gorm:"type:uuid;index"`
	LotID     uuid.UUID `gorm:"type:uuid"`
	ProductID uuid.UUID `gorm:"type:uuid"`
	Quantity  int
}

// TableName specifies the database table name for lot draws.
func (LotDrawDTO) TableName() string {
	return "lot_draws"
}

// HistoryDTO represents one transition record. The position column preserves
// the append order of the aggregate's history.
type HistoryDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	FromStatus int
	ToStatus   int
	Actor      uuid.UUID `gorm:"type:uuid"`
	Notes      string
	OccurredAt time.Time
}

// TableName specifies the database table name for delivery history records.
func (HistoryDTO) TableName() string {
	return "delivery_history"
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// fromDomain converts a delivery aggregate to its database representation,
// including line, draw, and history child rows.
func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	dto := DeliveryDTO{
		ID:                   aggregate.ID().Bytes(),
		Code:                 aggregate.Code(),
		RequestID:            aggregate.RequestID().Bytes(),
		Status:               int(aggregate.Status()),
		CreatedBy:            aggregate.CreatedBy().Bytes(),
		AuthorizedBy:         optionalBytes(aggregate.AuthorizedBy()),
		WarehouseReceivedBy:  optionalBytes(aggregate.WarehouseReceivedBy()),
		PreparedBy:           optionalBytes(aggregate.PreparedBy()),
		DeliveredBy:          optionalBytes(aggregate.DeliveredBy()),
		PartialAuthorization: aggregate.IsPartiallyAuthorized(),
		CancelReason:         optionalString(aggregate.CancelReason()),
		CreatedAt:            aggregate.CreatedAt(),
		Version:              aggregate.Version(),
	}

	if receiver := aggregate.Receiver(); receiver != nil {
		dto.ReceiverName = optionalString(receiver.Name())
		dto.ReceiverDocument = optionalString(receiver.Document())
	}

	for _, line := range aggregate.Lines() {
		lineDTO := LineDTO{
			ID:         uuid.New(),
			DeliveryID: dto.ID,
			ProductID:  optionalBytes(line.ProductID()),
			KitID:      optionalBytes(line.KitID()),
			Quantity:   line.Quantity().Value(),
		}
		if authorized := line.AuthorizedQuantity(); authorized != nil {
			value := authorized.Value()
			lineDTO.AuthorizedQuantity = &value
		}
		for _, draw := range line.Draws() {
			lineDTO.Draws = append(lineDTO.Draws, LotDrawDTO{
				ID:        uuid.New(),
				LineID:    lineDTO.ID,
				LotID:     draw.LotID().Bytes(),
				ProductID: draw.ProductID().Bytes(),
				Quantity:  draw.Quantity().Value(),
			})
		}
		dto.Lines = append(dto.Lines, lineDTO)
	}

	for position, entry := range aggregate.History() {
		dto.History = append(dto.History, HistoryDTO{
			DeliveryID: dto.ID,
			Position:   position,
			FromStatus: int(entry.FromStatus()),
			ToStatus:   int(entry.ToStatus()),
			Actor:      entry.Actor().Bytes(),
			Notes:      entry.Notes(),
			OccurredAt: entry.OccurredAt(),
		})
	}

	return dto
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

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDomainLine(dto LineDTO) (*delivery.LineItem, error) {
	productID, err := optionalUUID(dto.ProductID)
	if err != nil {
		return nil, err
	}
	kitID, err := optionalUUID(dto.KitID)
	if err != nil {
		return nil, err
	}
	quantity, err := kernel.NewPositiveQuantity(dto.Quantity)
	if err != nil {
		return nil, err
	}

	var authorized *kernel.Quantity
	if dto.AuthorizedQuantity != nil {
		q, authErr := kernel.NewPositiveQuantity(*dto.AuthorizedQuantity)
		if authErr != nil {
			return nil, authErr
		}
		authorized = &q
	}

	draws := make([]delivery.LotDraw, 0, len(dto.Draws))
	for _, drawDTO := range dto.Draws {
		lotID, drawErr := kernel.UUIDFromBytes(drawDTO.LotID[:])
		if drawErr != nil {
			return nil, drawErr
		}
		drawProductID, drawErr := kernel.UUIDFromBytes(drawDTO.ProductID[:])
		if drawErr != nil {
			return nil, drawErr
		}
		drawQuantity, drawErr := kernel.NewPositiveQuantity(drawDTO.Quantity)
		if drawErr != nil {
			return nil, drawErr
		}
		draw, drawErr := delivery.NewLotDraw(lotID, drawProductID, drawQuantity)
		if drawErr != nil {
			return nil, drawErr
		}
		draws = append(draws, draw)
	}

	return delivery.RestoreLineItem(productID, kitID, quantity, authorized, draws)
}

func toDomainHistory(dtos []HistoryDTO) ([]delivery.HistoryEntry, error) {
	history := make([]delivery.HistoryEntry, 0, len(dtos))
	for _, dto := range dtos {
		actor, err := kernel.UUIDFromBytes(dto.Actor[:])
		if err != nil {
			return nil, err
		}
		entry, err := delivery.NewHistoryEntry(
			delivery.Status(dto.FromStatus),
			delivery.Status(dto.ToStatus),
			actor,
			dto.Notes,
			dto.OccurredAt,
		)
		if err != nil {
			return nil, err
		}
		history = append(history, entry)
	}
	return history, nil
}

// toDomain converts a database DTO to a delivery aggregate using
// RestoreDelivery, reconstructing lines, draws, and history.
func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	requestID, err := kernel.UUIDFromBytes(dto.RequestID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}

	authorizedBy, err := optionalUUID(dto.AuthorizedBy)
	if err != nil {
		return nil, err
	}
	warehouseReceivedBy, err := optionalUUID(dto.WarehouseReceivedBy)
	if err != nil {
		return nil, err
	}
	preparedBy, err := optionalUUID(dto.PreparedBy)
	if err != nil {
		return nil, err
	}
	deliveredBy, err := optionalUUID(dto.DeliveredBy)
	if err != nil {
		return nil, err
	}

	lines := make([]*delivery.LineItem, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		line, lineErr := toDomainLine(lineDTO)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	history, err := toDomainHistory(dto.History)
	if err != nil {
		return nil, err
	}

	var receiver *delivery.Receiver
	if dto.ReceiverName != nil && dto.ReceiverDocument != nil {
		r, receiverErr := delivery.NewReceiver(*dto.ReceiverName, *dto.ReceiverDocument)
		if receiverErr != nil {
			return nil, receiverErr
		}
		receiver = &r
	}

	return delivery.RestoreDelivery(
		id,
		dto.Code,
		requestID,
		delivery.Status(dto.Status),
		lines,
		createdBy,
		authorizedBy, warehouseReceivedBy, preparedBy, deliveredBy,
		dto.PartialAuthorization,
		receiver,
		stringValue(dto.CancelReason),
		dto.CreatedAt,
		dto.Version,
		history,
	)
}
