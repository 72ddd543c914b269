// Package queries contains read-side operations of the CQRS architecture.
// Query handlers bypass the aggregates and read directly from the database
// with raw SQL, returning flat read models.
package queries

import (
	"errors"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery with its lines, recorded lot
// draws, and full transition history.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for one delivery by its identifier.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// DeliveryLineResponse is one line of the delivery read model. Exactly one
// of ProductID or KitID is set. AuthorizedQuantity is nil unless a partial
// authorization reduced the line.
type DeliveryLineResponse struct {
	ID                 kernel.UUID
	ProductID          *kernel.UUID
	KitID              *kernel.UUID
	Quantity           int
	AuthorizedQuantity *int
	Draws              []LotDrawResponse
}

// LotDrawResponse is one recorded lot draw of a delivery line.
type LotDrawResponse struct {
	LotID     kernel.UUID
	ProductID kernel.UUID
	Quantity  int
}

// DeliveryHistoryResponse is one transition record of the delivery read
// model, in workflow order.
type DeliveryHistoryResponse struct {
	FromStatus string
	ToStatus   string
	Actor      kernel.UUID
	Notes      string
	OccurredAt time.Time
}

// GetDeliveryQueryResponse is the full delivery read model.
type GetDeliveryQueryResponse struct {
	ID                   kernel.UUID
	Code                 string
	RequestID            kernel.UUID
	Status               string
	CreatedBy            kernel.UUID
	AuthorizedBy         *kernel.UUID
	WarehouseReceivedBy  *kernel.UUID
	PreparedBy           *kernel.UUID
	DeliveredBy          *kernel.UUID
	PartialAuthorization bool
	ReceiverName         string
	ReceiverDocument     string
	CancelReason         string
	CreatedAt            time.Time
	Version              int
	Lines                []DeliveryLineResponse
	History              []DeliveryHistoryResponse
}
