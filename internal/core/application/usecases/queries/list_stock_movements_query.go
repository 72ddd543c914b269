package queries

import (
	"errors"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/pkg/errs"
	"aiddelivery/internal/pkg/guard"
)

var ErrListStockMovementsQueryIsNotConstructed = errors.New(
	"ListStockMovementsQuery must be created via NewListStockMovementsQuery constructor",
)

// ListStockMovementsQuery retrieves ledger entries, optionally filtered by
// product, movement type, and occurrence window. All filters are optional
// and combine with AND.
type ListStockMovementsQuery struct {
	productID    *kernel.UUID
	movementType *stock.MovementType
	from         *time.Time
	to           *time.Time

	guard guard.ConstructorGuard
}

// NewListStockMovementsQuery creates a movement listing query. movementType
// is the wire form of the filter ("ENTRY", "EXIT", "ADJUSTMENT", "RETURN")
// or empty for no filter.
func NewListStockMovementsQuery(
	productID *kernel.UUID,
	movementType string,
	from *time.Time,
	to *time.Time,
) (ListStockMovementsQuery, error) {
	if productID != nil {
		if err := productID.Validate(); err != nil {
			return ListStockMovementsQuery{}, err
		}
	}

	var typeFilter *stock.MovementType
	if movementType != "" {
		parsed, err := stock.MovementTypeFromString(movementType)
		if err != nil {
			return ListStockMovementsQuery{}, err
		}
		typeFilter = &parsed
	}

	if from != nil && to != nil && to.Before(*from) {
		return ListStockMovementsQuery{}, errs.NewValueIsInvalidError("to")
	}

	return ListStockMovementsQuery{
		productID:    productID,
		movementType: typeFilter,
		from:         from,
		to:           to,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q ListStockMovementsQuery) Validate() error {
	return q.guard.Validate(ErrListStockMovementsQueryIsNotConstructed)
}

// ProductID returns the product filter or nil.
func (q ListStockMovementsQuery) ProductID() *kernel.UUID {
	return q.productID
}

// MovementType returns the type filter or nil.
func (q ListStockMovementsQuery) MovementType() *stock.MovementType {
	return q.movementType
}

// From returns the inclusive lower bound of the occurrence window or nil.
func (q ListStockMovementsQuery) From() *time.Time {
	return q.from
}

// To returns the inclusive upper bound of the occurrence window or nil.
func (q ListStockMovementsQuery) To() *time.Time {
	return q.to
}

// StockMovementResponse is one ledger entry of the movement read model.
// Reference is nil for movements not tied to a delivery.
type StockMovementResponse struct {
	ID         kernel.UUID
	ProductID  kernel.UUID
	LotID      kernel.UUID
	Type       string
	Quantity   int
	Reason     string
	Reference  *kernel.UUID
	Actor      kernel.UUID
	OccurredAt time.Time
}

// ListStockMovementsQueryResponse is the movement listing read model,
// ordered by occurrence time.
type ListStockMovementsQueryResponse struct {
	Movements []StockMovementResponse
}
