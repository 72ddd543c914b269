package queries

import (
	"context"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListPendingAuthorizationsQueryHandler reads stale pending deliveries
// directly from the database.
type ListPendingAuthorizationsQueryHandler struct {
	db *gorm.DB
}

// NewListPendingAuthorizationsQueryHandler creates a handler for the stale
// pending-authorization listing.
func NewListPendingAuthorizationsQueryHandler(db *gorm.DB) ListPendingAuthorizationsQueryHandler {
	return ListPendingAuthorizationsQueryHandler{db: db}
}

// Handle executes the query, returning deliveries oldest first.
func (h ListPendingAuthorizationsQueryHandler) Handle(
	ctx context.Context,
	query ListPendingAuthorizationsQuery,
) (ListPendingAuthorizationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return ListPendingAuthorizationsQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT id, code, created_by, created_at
		FROM deliveries
		WHERE status = ? AND created_at <= ?
		ORDER BY created_at, id
	`, int(delivery.PendingAuthorization), query.CreatedBefore()).Rows()
	if err != nil {
		return ListPendingAuthorizationsQueryResponse{}, err
	}
	defer rows.Close()

	deliveries := make([]PendingAuthorizationResponse, 0)
	for rows.Next() {
		var (
			pending   PendingAuthorizationResponse
			id        uuid.UUID
			createdBy uuid.UUID
			createdAt time.Time
		)

		if err = rows.Scan(&id, &pending.Code, &createdBy, &createdAt); err != nil {
			return ListPendingAuthorizationsQueryResponse{}, err
		}

		if pending.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return ListPendingAuthorizationsQueryResponse{}, err
		}
		if pending.CreatedBy, err = kernel.UUIDFromBytes(createdBy[:]); err != nil {
			return ListPendingAuthorizationsQueryResponse{}, err
		}
		pending.CreatedAt = createdAt

		deliveries = append(deliveries, pending)
	}

	if err = rows.Err(); err != nil {
		return ListPendingAuthorizationsQueryResponse{}, err
	}

	return ListPendingAuthorizationsQueryResponse{Deliveries: deliveries}, nil
}
