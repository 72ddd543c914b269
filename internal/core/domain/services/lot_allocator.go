package services

import (
	"sort"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
)

// Allocation is one entry of a FEFO allocation plan: draw Quantity units of
// ProductID from LotID. ExpiresAt carries the lot's expiry so callers can
// surface it without re-reading the lot.
type Allocation struct {
	LotID     kernel.UUID
	ProductID kernel.UUID
	Quantity  kernel.Quantity
	ExpiresAt *time.Time
}

// LotAllocator is a domain service that plans first-expired-first-out
// stock allocations.
//
// Key properties:
//   - Pure planning: Allocate never mutates the lots it is given.
//     Persisting the plan (lot decrement plus EXIT movement) is the
//     caller's responsibility and must happen in the same atomic unit as
//     the read that produced the lots, or two concurrent allocations can
//     oversell one lot.
//   - FEFO order: lots are consumed by (expiry ascending, nulls last,
//     entry date ascending), so soonest-to-expire stock leaves first.
//   - All or nothing: when total availability cannot cover the demand the
//     plan fails with an InsufficientStockError reporting the shortfall,
//     and no partial plan is returned.
//
// Example usage:
//
//	allocator := services.NewLotAllocator()
//	plan, err := allocator.Allocate(productID, lots, needed)
//	if errors.Is(err, stock.ErrInsufficientStock) {
//	    // report shortfall, nothing to persist
//	}
//	for _, a := range plan {
//	    // decrement a.LotID by a.Quantity and write the EXIT movement
//	}
type LotAllocator struct{}

// NewLotAllocator creates a new LotAllocator instance.
func NewLotAllocator() LotAllocator {
	return LotAllocator{}
}

// Allocate plans how to satisfy needed units of a product from the given
// lots.
//
// Only active lots of the product holding at least one unit participate.
// The plan contains one entry per lot touched, in consumption order, and
// the entry quantities sum exactly to needed.
//
// Returns:
//   - the allocation plan on success
//   - *stock.InsufficientStockError when the participating lots hold fewer
//     units than needed; no partial plan is returned
func (a LotAllocator) Allocate(
	productID kernel.UUID,
	lots []*stock.ProductLot,
	needed kernel.Quantity,
) ([]Allocation, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	candidates := make([]*stock.ProductLot, 0, len(lots))
	available := 0
	for _, lot := range lots {
		if err := lot.Validate(); err != nil {
			return nil, err
		}
		if !lot.IsActive() || lot.Quantity().IsZero() || !lot.ProductID().IsEqual(productID) {
			continue
		}
		candidates = append(candidates, lot)
		available += lot.Quantity().Value()
	}

	if available < needed.Value() {
		return nil, stock.NewInsufficientStockError(productID, needed.Value(), available)
	}

	sortFEFO(candidates)

	plan := make([]Allocation, 0, len(candidates))
	remaining := needed
	for _, lot := range candidates {
		if remaining.IsZero() {
			break
		}

		take := remaining.Min(lot.Quantity())
		plan = append(plan, Allocation{
			LotID:     lot.ID(),
			ProductID: productID,
			Quantity:  take,
			ExpiresAt: lot.ExpiresAt(),
		})

		var err error
		remaining, err = remaining.Subtract(take)
		if err != nil {
			return nil, err
		}
	}

	return plan, nil
}

// sortFEFO orders lots by expiry ascending with non-expiring lots last,
// breaking ties by warehouse entry date ascending.
func sortFEFO(lots []*stock.ProductLot) {
	sort.SliceStable(lots, func(i, j int) bool {
		ei, ej := lots[i].ExpiresAt(), lots[j].ExpiresAt()
		switch {
		case ei == nil && ej == nil:
			return lots[i].EnteredAt().Before(lots[j].EnteredAt())
		case ei == nil:
			return false
		case ej == nil:
			return true
		case ei.Equal(*ej):
			return lots[i].EnteredAt().Before(lots[j].EnteredAt())
		default:
			return ei.Before(*ej)
		}
	})
}
