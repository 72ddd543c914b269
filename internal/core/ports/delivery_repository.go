// Package ports defines repository interfaces for the aid delivery domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
// Provides methods for storing, retrieving, and querying deliveries with their
// complete state including line items and transition history.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	// The delivery must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate using
	// optimistic locking on the aggregate's version. When the stored version
	// no longer matches, Update fails with a ConflictError and nothing is
	// written; the caller must re-read and retry.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete delivery with its lines, actors, and history.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetOpenByRequestID retrieves the request's delivery that is still in a
	// non-terminal status, or an ObjectNotFoundError when the request has
	// none. A request holds at most one open delivery at a time.
	GetOpenByRequestID(ctx context.Context, requestID kernel.UUID) (*delivery.Delivery, error)
}
