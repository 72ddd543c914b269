package ports

import (
	"context"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
)

// LotRepository defines the persistence contract for product lots.
//
// Decrement and Increment apply quantity deltas conditionally in storage
// instead of writing back a full aggregate snapshot, so two concurrent
// allocations can never both succeed against the same units.
type LotRepository interface {
	// Add persists a new product lot to storage.
	Add(ctx context.Context, lot *stock.ProductLot) error

	// Get retrieves a lot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*stock.ProductLot, error)

	// GetActiveByProduct retrieves the product's active lots holding at
	// least one unit, in FEFO order (expiry ascending with non-expiring
	// lots last, then entry date ascending).
	GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*stock.ProductLot, error)

	// Decrement atomically removes quantity units from a lot, guarded by a
	// stored-quantity check. When the lot no longer holds enough units the
	// decrement fails with a ConflictError and nothing is written; the
	// caller must re-plan the allocation.
	Decrement(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error

	// Increment atomically adds quantity units back to a lot, used by the
	// compensating returns of a cancelled delivery.
	Increment(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error
}
