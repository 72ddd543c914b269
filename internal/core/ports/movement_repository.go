package ports

import (
	"context"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
)

// MovementRepository defines the persistence contract for the append-only
// stock ledger. Movements are only ever added, never updated or removed.
type MovementRepository interface {
	// Add appends a movement to the ledger.
	Add(ctx context.Context, movement *stock.Movement) error

	// ListByReference retrieves the movements of one type recorded against
	// a business operation, such as the EXIT movements of a delivery.
	// Used to compute the compensating returns on cancellation.
	ListByReference(ctx context.Context, reference kernel.UUID, movementType stock.MovementType) ([]*stock.Movement, error)
}
