package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDeliveryQueryHandler reads one delivery with its lines, draws, and
// history directly from the database.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for delivery detail queries.
// Requires a GORM database connection for query execution.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when no delivery
// with the given identifier exists.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (GetDeliveryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	response, err := h.readDelivery(ctx, query.DeliveryID())
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	response.Lines, err = h.readLines(ctx, query.DeliveryID())
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	response.History, err = h.readHistory(ctx, query.DeliveryID())
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return response, nil
}

func (h GetDeliveryQueryHandler) readDelivery(
	ctx context.Context, deliveryID kernel.UUID,
) (GetDeliveryQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			code,
			request_id,
			status,
			created_by,
			authorized_by,
			warehouse_received_by,
			prepared_by,
			delivered_by,
			partial_authorization,
			receiver_name,
			receiver_document,
			cancel_reason,
			created_at,
			version
		FROM deliveries
		WHERE id = ?
	`, deliveryID.Bytes()).Row()

	var (
		response     GetDeliveryQueryResponse
		id           uuid.UUID
		requestID    uuid.UUID
		createdBy    uuid.UUID
		status       int
		authorizedBy, warehouseReceivedBy, preparedBy, deliveredBy uuid.NullUUID
		receiverName, receiverDocument, cancelReason               sql.NullString
	)

	err := row.Scan(
		&id,
		&response.Code,
		&requestID,
		&status,
		&createdBy,
		&authorizedBy,
		&warehouseReceivedBy,
		&preparedBy,
		&deliveredBy,
		&response.PartialAuthorization,
		&receiverName,
		&receiverDocument,
		&cancelReason,
		&response.CreatedAt,
		&response.Version,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetDeliveryQueryResponse{}, errs.NewObjectNotFoundError("deliveryId", deliveryID.String())
	}
	if err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if response.RequestID, err = kernel.UUIDFromBytes(requestID[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if response.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	response.Status = delivery.Status(status).String()
	response.ReceiverName = receiverName.String
	response.ReceiverDocument = receiverDocument.String
	response.CancelReason = cancelReason.String

	if response.AuthorizedBy, err = optionalUUID(authorizedBy); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if response.WarehouseReceivedBy, err = optionalUUID(warehouseReceivedBy); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if response.PreparedBy, err = optionalUUID(preparedBy); err != nil {
		return GetDeliveryQueryResponse{}, err
	}
	if response.DeliveredBy, err = optionalUUID(deliveredBy); err != nil {
		return GetDeliveryQueryResponse{}, err
	}

	return response, nil
}

func (h GetDeliveryQueryHandler) readLines(
	ctx context.Context, deliveryID kernel.UUID,
) ([]DeliveryLineResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			product_id,
			kit_id,
			quantity,
			authorized_quantity
		FROM delivery_lines
		WHERE delivery_id = ?
		ORDER BY id
	`, deliveryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]DeliveryLineResponse, 0)
	for rows.Next() {
		var (
			line               DeliveryLineResponse
			id                 uuid.UUID
			productID, kitID   uuid.NullUUID
			authorizedQuantity sql.NullInt64
		)

		if err = rows.Scan(&id, &productID, &kitID, &line.Quantity, &authorizedQuantity); err != nil {
			return nil, err
		}

		if line.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if line.ProductID, err = optionalUUID(productID); err != nil {
			return nil, err
		}
		if line.KitID, err = optionalUUID(kitID); err != nil {
			return nil, err
		}
		if authorizedQuantity.Valid {
			value := int(authorizedQuantity.Int64)
			line.AuthorizedQuantity = &value
		}

		if line.Draws, err = h.readDraws(ctx, line.ID); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (h GetDeliveryQueryHandler) readDraws(
	ctx context.Context, lineID kernel.UUID,
) ([]LotDrawResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			lot_id,
			product_id,
			quantity
		FROM lot_draws
		WHERE line_id = ?
		ORDER BY id
	`, lineID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	draws := make([]LotDrawResponse, 0)
	for rows.Next() {
		var (
			draw      LotDrawResponse
			lotID     uuid.UUID
			productID uuid.UUID
		)

		if err = rows.Scan(&lotID, &productID, &draw.Quantity); err != nil {
			return nil, err
		}
		if draw.LotID, err = kernel.UUIDFromBytes(lotID[:]); err != nil {
			return nil, err
		}
		if draw.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		draws = append(draws, draw)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return draws, nil
}

func (h GetDeliveryQueryHandler) readHistory(
	ctx context.Context, deliveryID kernel.UUID,
) ([]DeliveryHistoryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			from_status,
			to_status,
			actor,
			notes,
			occurred_at
		FROM delivery_history
		WHERE delivery_id = ?
		ORDER BY position
	`, deliveryID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := make([]DeliveryHistoryResponse, 0)
	for rows.Next() {
		var (
			entry      DeliveryHistoryResponse
			fromStatus int
			toStatus   int
			actor      uuid.UUID
			notes      sql.NullString
			occurredAt time.Time
		)

		if err = rows.Scan(&fromStatus, &toStatus, &actor, &notes, &occurredAt); err != nil {
			return nil, err
		}

		entry.FromStatus = delivery.Status(fromStatus).String()
		entry.ToStatus = delivery.Status(toStatus).String()
		entry.Notes = notes.String
		entry.OccurredAt = occurredAt
		if entry.Actor, err = kernel.UUIDFromBytes(actor[:]); err != nil {
			return nil, err
		}
		history = append(history, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return history, nil
}

// optionalUUID converts a nullable database UUID into a domain UUID pointer.
func optionalUUID(value uuid.NullUUID) (*kernel.UUID, error) {
	if !value.Valid {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(value.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
