package services_test

import (
	"testing"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func newLot(t *testing.T, productID kernel.UUID, quantity int, expiresAt *time.Time, enteredAt time.Time) *stock.ProductLot {
	t.Helper()
	lot, err := stock.NewProductLot(
		kernel.NewUUID(), productID, "LOT-"+kernel.NewUUID().String()[:8], qty(t, quantity), expiresAt, enteredAt)
	require.NoError(t, err)
	return lot
}

func TestLotAllocator_Allocate(t *testing.T) {
	allocator := services.NewLotAllocator()
	entered := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("consumes the soonest-expiring lot first", func(t *testing.T) {
		productID := kernel.NewUUID()
		lotX := newLot(t, productID, 10, date(2025, time.January, 1), entered)
		lotY := newLot(t, productID, 10, date(2025, time.June, 1), entered)

		// pass lots out of FEFO order on purpose
		plan, err := allocator.Allocate(productID, []*stock.ProductLot{lotY, lotX}, qty(t, 15))

		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.True(t, plan[0].LotID.IsEqual(lotX.ID()))
		assert.Equal(t, 10, plan[0].Quantity.Value())
		assert.True(t, plan[1].LotID.IsEqual(lotY.ID()))
		assert.Equal(t, 5, plan[1].Quantity.Value())
	})

	t.Run("a single lot can satisfy the whole demand", func(t *testing.T) {
		productID := kernel.NewUUID()
		lot := newLot(t, productID, 10, date(2025, time.June, 1), entered)

		plan, err := allocator.Allocate(productID, []*stock.ProductLot{lot}, qty(t, 10))

		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.Equal(t, 10, plan[0].Quantity.Value())
	})

	t.Run("non-expiring lots are consumed last", func(t *testing.T) {
		productID := kernel.NewUUID()
		noExpiry := newLot(t, productID, 10, nil, entered)
		expiring := newLot(t, productID, 10, date(2027, time.January, 1), entered)

		plan, err := allocator.Allocate(productID, []*stock.ProductLot{noExpiry, expiring}, qty(t, 12))

		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.True(t, plan[0].LotID.IsEqual(expiring.ID()))
		assert.True(t, plan[1].LotID.IsEqual(noExpiry.ID()))
		assert.Equal(t, 2, plan[1].Quantity.Value())
	})

	t.Run("equal expiry falls back to warehouse entry order", func(t *testing.T) {
		productID := kernel.NewUUID()
		expiry := date(2026, time.March, 1)
		older := newLot(t, productID, 5, expiry, entered)
		newer := newLot(t, productID, 5, expiry, entered.AddDate(0, 2, 0))

		plan, err := allocator.Allocate(productID, []*stock.ProductLot{newer, older}, qty(t, 6))

		require.NoError(t, err)
		require.Len(t, plan, 2)
		assert.True(t, plan[0].LotID.IsEqual(older.ID()))
		assert.True(t, plan[1].LotID.IsEqual(newer.ID()))
	})

	t.Run("inactive and foreign lots never participate", func(t *testing.T) {
		productID := kernel.NewUUID()
		inactive := newLot(t, productID, 50, nil, entered)
		require.NoError(t, inactive.Deactivate())
		foreign := newLot(t, kernel.NewUUID(), 50, nil, entered)
		usable := newLot(t, productID, 5, nil, entered)

		plan, err := allocator.Allocate(productID,
			[]*stock.ProductLot{inactive, foreign, usable}, qty(t, 5))

		require.NoError(t, err)
		require.Len(t, plan, 1)
		assert.True(t, plan[0].LotID.IsEqual(usable.ID()))
	})

	t.Run("fails all or nothing when availability is short", func(t *testing.T) {
		productID := kernel.NewUUID()
		lots := []*stock.ProductLot{
			newLot(t, productID, 30, date(2025, time.March, 1), entered),
			newLot(t, productID, 10, date(2025, time.September, 1), entered),
		}

		plan, err := allocator.Allocate(productID, lots, qty(t, 100))

		require.ErrorIs(t, err, stock.ErrInsufficientStock)
		assert.Nil(t, plan)

		var stockErr *stock.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 100, stockErr.Requested)
		assert.Equal(t, 40, stockErr.Available)
		assert.Equal(t, 60, stockErr.Shortfall())
	})

	t.Run("planning never mutates the lots", func(t *testing.T) {
		productID := kernel.NewUUID()
		lot := newLot(t, productID, 10, nil, entered)

		_, err := allocator.Allocate(productID, []*stock.ProductLot{lot}, qty(t, 4))

		require.NoError(t, err)
		assert.Equal(t, 10, lot.Quantity().Value())
	})

	t.Run("plan quantities always sum to the demand", func(t *testing.T) {
		productID := kernel.NewUUID()
		lots := []*stock.ProductLot{
			newLot(t, productID, 3, date(2025, time.February, 1), entered),
			newLot(t, productID, 4, date(2025, time.April, 1), entered),
			newLot(t, productID, 9, nil, entered),
		}

		plan, err := allocator.Allocate(productID, lots, qty(t, 11))

		require.NoError(t, err)
		total := 0
		for _, a := range plan {
			total += a.Quantity.Value()
		}
		assert.Equal(t, 11, total)
	})
}
