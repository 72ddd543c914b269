package request_test

import (
	"testing"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func productLine(t *testing.T, productID kernel.UUID, requested, delivered int) *request.Line {
	t.Helper()
	line, err := request.RestoreLine(&productID, nil, qty(t, requested), qty(t, delivered))
	require.NoError(t, err)
	return line
}

func approvedRequest(t *testing.T, lines ...*request.Line) *request.Request {
	t.Helper()
	r, err := request.RestoreRequest(kernel.NewUUID(), request.Approved, lines, 0)
	require.NoError(t, err)
	return r
}

func TestStatus_CanAcceptDelivery(t *testing.T) {
	accepting := map[request.Status]bool{
		request.Registered:         false,
		request.InReview:           false,
		request.Approved:           true,
		request.Rejected:           false,
		request.Delivered:          false,
		request.PartiallyDelivered: true,
		request.Cancelled:          false,
	}

	for status, expected := range accepting {
		assert.Equal(t, expected, status.CanAcceptDelivery(), status.String())
	}
}

func TestRestoreLine(t *testing.T) {
	t.Run("should reject a line referencing both product and kit", func(t *testing.T) {
		productID := kernel.NewUUID()
		kitID := kernel.NewUUID()

		_, err := request.RestoreLine(&productID, &kitID, qty(t, 1), qty(t, 0))

		require.Error(t, err)
	})

	t.Run("should reject delivered above requested", func(t *testing.T) {
		productID := kernel.NewUUID()

		_, err := request.RestoreLine(&productID, nil, qty(t, 3), qty(t, 4))

		require.Error(t, err)
	})

	t.Run("remaining is requested minus delivered", func(t *testing.T) {
		line := productLine(t, kernel.NewUUID(), 5, 3)

		assert.Equal(t, 2, line.Remaining().Value())
		assert.False(t, line.IsFulfilled())
	})
}

func TestRequest_ApplyDelivery(t *testing.T) {
	t.Run("partial fulfillment moves the request to partially delivered", func(t *testing.T) {
		productID := kernel.NewUUID()
		r := approvedRequest(t, productLine(t, productID, 5, 0))

		err := r.ApplyDelivery(map[kernel.UUID]kernel.Quantity{
			productID: qty(t, 3),
		})

		require.NoError(t, err)
		assert.Equal(t, request.PartiallyDelivered, r.Status())
		assert.Equal(t, 2, r.RemainingFor(productID).Value())
	})

	t.Run("completing the remainder moves the request to delivered", func(t *testing.T) {
		productID := kernel.NewUUID()
		r := approvedRequest(t, productLine(t, productID, 5, 3))

		err := r.ApplyDelivery(map[kernel.UUID]kernel.Quantity{
			productID: qty(t, 2),
		})

		require.NoError(t, err)
		assert.Equal(t, request.Delivered, r.Status())
		assert.True(t, r.RemainingFor(productID).IsZero())
		assert.True(t, r.LineByRef(productID).IsFulfilled())
	})

	t.Run("one unfulfilled line keeps the request partially delivered", func(t *testing.T) {
		productA := kernel.NewUUID()
		productB := kernel.NewUUID()
		r := approvedRequest(t,
			productLine(t, productA, 5, 0),
			productLine(t, productB, 2, 0),
		)

		err := r.ApplyDelivery(map[kernel.UUID]kernel.Quantity{
			productA: qty(t, 5),
		})

		require.NoError(t, err)
		assert.Equal(t, request.PartiallyDelivered, r.Status())
	})

	t.Run("delivering more than requested is rejected", func(t *testing.T) {
		productID := kernel.NewUUID()
		r := approvedRequest(t, productLine(t, productID, 5, 3))

		err := r.ApplyDelivery(map[kernel.UUID]kernel.Quantity{
			productID: qty(t, 3),
		})

		require.Error(t, err)
		assert.Equal(t, 3, r.LineByRef(productID).Delivered().Value())
	})

	t.Run("unknown line reference is rejected", func(t *testing.T) {
		r := approvedRequest(t, productLine(t, kernel.NewUUID(), 5, 0))

		err := r.ApplyDelivery(map[kernel.UUID]kernel.Quantity{
			kernel.NewUUID(): qty(t, 1),
		})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "request line")
	})
}

func TestRequest_RemainingFor(t *testing.T) {
	t.Run("unknown reference has nothing remaining", func(t *testing.T) {
		r := approvedRequest(t, productLine(t, kernel.NewUUID(), 5, 0))

		assert.True(t, r.RemainingFor(kernel.NewUUID()).IsZero())
	})
}
