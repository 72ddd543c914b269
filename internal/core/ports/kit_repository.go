package ports

import (
	"context"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"
)

// KitRepository defines the read contract for kit compositions. Kits are
// maintained by the catalog collaborator; this core only expands them into
// product demands during allocation.
type KitRepository interface {
	// Get retrieves a kit with its components by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*kit.Kit, error)
}
