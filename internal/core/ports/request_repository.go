package ports

import (
	"context"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for aid requests as far
// as this core owns them: reading a request with its lines and writing back
// the fulfillment produced by a completed delivery.
type RequestRepository interface {
	// Get retrieves a request with its lines by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)

	// Update persists the request's fulfillment state using optimistic
	// locking on the request's version. When the stored version no longer
	// matches, Update fails with a ConflictError and nothing is written.
	Update(ctx context.Context, aggregate *request.Request) error
}
