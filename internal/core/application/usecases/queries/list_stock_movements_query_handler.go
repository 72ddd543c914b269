package queries

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListStockMovementsQueryHandler reads the stock ledger directly from the
// database.
type ListStockMovementsQueryHandler struct {
	db *gorm.DB
}

// NewListStockMovementsQueryHandler creates a handler for movement listing
// queries. Requires a GORM database connection for query execution.
func NewListStockMovementsQueryHandler(db *gorm.DB) ListStockMovementsQueryHandler {
	return ListStockMovementsQueryHandler{db: db}
}

// Handle executes the query. An empty ledger yields an empty slice, not an
// error.
func (h ListStockMovementsQueryHandler) Handle(
	ctx context.Context,
	query ListStockMovementsQuery,
) (ListStockMovementsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListStockMovementsQueryResponse{}, err
	}

	var (
		conditions []string
		params     []any
	)
	if query.ProductID() != nil {
		conditions = append(conditions, "product_id = ?")
		params = append(params, query.ProductID().Bytes())
	}
	if query.MovementType() != nil {
		conditions = append(conditions, "movement_type = ?")
		params = append(params, query.MovementType().String())
	}
	if query.From() != nil {
		conditions = append(conditions, "occurred_at >= ?")
		params = append(params, *query.From())
	}
	if query.To() != nil {
		conditions = append(conditions, "occurred_at <= ?")
		params = append(params, *query.To())
	}

	sqlText := `
		SELECT
			id,
			product_id,
			lot_id,
			movement_type,
			quantity,
			reason,
			reference,
			actor,
			occurred_at
		FROM stock_movements
	`
	if len(conditions) > 0 {
		sqlText += " WHERE " + strings.Join(conditions, " AND ")
	}
	sqlText += " ORDER BY occurred_at, id"

	rows, err := h.db.WithContext(ctx).Raw(sqlText, params...).Rows()
	if err != nil {
		return ListStockMovementsQueryResponse{}, err
	}
	defer rows.Close()

	movements := make([]StockMovementResponse, 0)
	for rows.Next() {
		var (
			movement   StockMovementResponse
			id         uuid.UUID
			productID  uuid.UUID
			lotID      uuid.UUID
			reference  uuid.NullUUID
			actor      uuid.UUID
			occurredAt time.Time
			reason     sql.NullString
		)

		err = rows.Scan(
			&id,
			&productID,
			&lotID,
			&movement.Type,
			&movement.Quantity,
			&reason,
			&reference,
			&actor,
			&occurredAt,
		)
		if err != nil {
			return ListStockMovementsQueryResponse{}, err
		}

		if movement.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListStockMovementsQueryResponse{}, err
		}
		if movement.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return ListStockMovementsQueryResponse{}, err
		}
		if movement.LotID, err = kernel.UUIDFromBytes(lotID[:]); err != nil {
			return ListStockMovementsQueryResponse{}, err
		}
		if movement.Actor, err = kernel.UUIDFromBytes(actor[:]); err != nil {
			return ListStockMovementsQueryResponse{}, err
		}
		if movement.Reference, err = optionalUUID(reference); err != nil {
			return ListStockMovementsQueryResponse{}, err
		}
		movement.Reason = reason.String
		movement.OccurredAt = occurredAt

		movements = append(movements, movement)
	}

	if err = rows.Err(); err != nil {
		return ListStockMovementsQueryResponse{}, err
	}

	return ListStockMovementsQueryResponse{Movements: movements}, nil
}
