package stock_test

import (
	"testing"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMovementTypeFromString(t *testing.T) {
	t.Run("should parse persisted representations", func(t *testing.T) {
		cases := map[string]stock.MovementType{
			"ENTRY":      stock.Entry,
			"EXIT":       stock.Exit,
			"ADJUSTMENT": stock.Adjustment,
			"RETURN":     stock.Return,
		}

		for s, expected := range cases {
			parsed, err := stock.MovementTypeFromString(s)
			require.NoError(t, err)
			assert.Equal(t, expected, parsed)
			assert.Equal(t, s, parsed.String())
		}
	})

	t.Run("should reject unknown representations", func(t *testing.T) {
		for _, s := range []string{"", "Unknown", "entry", "TRANSFER"} {
			_, err := stock.MovementTypeFromString(s)
			require.Error(t, err, s)
		}
	})
}

func TestNewMovement(t *testing.T) {
	newMovement := func(movementType stock.MovementType, quantity int) (*stock.Movement, error) {
		return stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			movementType, quantity, "delivery allocation", nil, kernel.NewUUID(), time.Now())
	}

	t.Run("should create signed ledger entries", func(t *testing.T) {
		cases := []struct {
			movementType stock.MovementType
			quantity     int
		}{
			{stock.Entry, 40},
			{stock.Exit, -15},
			{stock.Adjustment, -2},
			{stock.Adjustment, 2},
			{stock.Return, 15},
		}

		for _, c := range cases {
			m, err := newMovement(c.movementType, c.quantity)
			require.NoError(t, err, c.movementType.String())
			assert.Equal(t, c.quantity, m.Quantity())
			assert.Equal(t, c.movementType, m.Type())
		}
	})

	t.Run("quantity sign must match the movement type", func(t *testing.T) {
		cases := []struct {
			movementType stock.MovementType
			quantity     int
		}{
			{stock.Entry, -40},
			{stock.Exit, 15},
			{stock.Return, -15},
		}

		for _, c := range cases {
			_, err := newMovement(c.movementType, c.quantity)
			require.Error(t, err, c.movementType.String())
		}
	})

	t.Run("zero quantity is never a movement", func(t *testing.T) {
		for _, movementType := range []stock.MovementType{
			stock.Entry, stock.Exit, stock.Adjustment, stock.Return,
		} {
			_, err := newMovement(movementType, 0)
			require.Error(t, err, movementType.String())
		}
	})

	t.Run("reason is required", func(t *testing.T) {
		_, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			stock.Entry, 5, "", nil, kernel.NewUUID(), time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "movement reason")
	})

	t.Run("should carry the business reference", func(t *testing.T) {
		deliveryID := kernel.NewUUID()

		m, err := stock.NewMovement(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			stock.Exit, -3, "delivery allocation", &deliveryID, kernel.NewUUID(), time.Now())

		require.NoError(t, err)
		require.NotNil(t, m.Reference())
		assert.True(t, m.Reference().IsEqual(deliveryID))
	})
}
