package delivery_test

import (
	"testing"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qty(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func productLine(t *testing.T, productID kernel.UUID, quantity int) *delivery.LineItem {
	t.Helper()
	line, err := delivery.NewProductLineItem(productID, qty(t, quantity))
	require.NoError(t, err)
	return line
}

func newTestDelivery(t *testing.T, createdBy kernel.UUID, lines ...*delivery.LineItem) *delivery.Delivery {
	t.Helper()
	if len(lines) == 0 {
		lines = []*delivery.LineItem{productLine(t, kernel.NewUUID(), 5)}
	}
	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "DLV-TEST", kernel.NewUUID(), createdBy, lines, time.Now())
	require.NoError(t, err)
	return d
}

// advanceToReady walks a delivery through authorize, warehouse custody,
// preparation, and allocation with distinct actors, returning the actors used.
func advanceToReady(t *testing.T, d *delivery.Delivery) (authorizer, receiver, preparer kernel.UUID) {
	t.Helper()
	authorizer = kernel.NewUUID()
	receiver = kernel.NewUUID()
	preparer = kernel.NewUUID()
	now := time.Now()

	require.NoError(t, d.Authorize(authorizer, "", nil, now))
	require.NoError(t, d.ReceiveAtWarehouse(receiver, "", now))
	require.NoError(t, d.StartPreparation(preparer, "", now))

	draws := make(map[kernel.UUID][]delivery.LotDraw)
	for _, line := range d.Lines() {
		draw, err := delivery.NewLotDraw(kernel.NewUUID(), line.Ref(), line.EffectiveQuantity())
		require.NoError(t, err)
		draws[line.Ref()] = []delivery.LotDraw{draw}
	}
	require.NoError(t, d.MarkReady(preparer, draws, now))
	return authorizer, receiver, preparer
}

func TestNewDelivery(t *testing.T) {
	t.Run("should create delivery in pending authorization with one history entry", func(t *testing.T) {
		createdBy := kernel.NewUUID()

		d := newTestDelivery(t, createdBy)

		require.NoError(t, d.Validate())
		assert.Equal(t, delivery.PendingAuthorization, d.Status())
		assert.True(t, d.CreatedBy().IsEqual(createdBy))
		assert.Nil(t, d.AuthorizedBy())
		assert.Nil(t, d.WarehouseReceivedBy())
		assert.Nil(t, d.PreparedBy())
		assert.Nil(t, d.DeliveredBy())

		require.Len(t, d.History(), 1)
		assert.Equal(t, delivery.Unknown, d.History()[0].FromStatus())
		assert.Equal(t, delivery.PendingAuthorization, d.History()[0].ToStatus())
		assert.True(t, d.History()[0].Actor().IsEqual(createdBy))
	})

	t.Run("should fail without lines", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), "DLV-1", kernel.NewUUID(), kernel.NewUUID(), nil, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "lines")
	})

	t.Run("should fail without code", func(t *testing.T) {
		_, err := delivery.NewDelivery(
			kernel.NewUUID(), "", kernel.NewUUID(), kernel.NewUUID(),
			[]*delivery.LineItem{productLine(t, kernel.NewUUID(), 1)}, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "code")
	})

	t.Run("should fail with duplicate line references", func(t *testing.T) {
		productID := kernel.NewUUID()

		_, err := delivery.NewDelivery(
			kernel.NewUUID(), "DLV-1", kernel.NewUUID(), kernel.NewUUID(),
			[]*delivery.LineItem{
				productLine(t, productID, 1),
				productLine(t, productID, 2),
			}, time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate reference")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var d delivery.Delivery

		require.ErrorIs(t, d.Validate(), delivery.ErrDeliveryIsNotConstructed)
	})
}

func TestDelivery_Authorize(t *testing.T) {
	t.Run("should authorize with a distinct actor", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		authorizer := kernel.NewUUID()

		err := d.Authorize(authorizer, "checked against request", nil, time.Now())

		require.NoError(t, err)
		assert.Equal(t, delivery.Authorized, d.Status())
		require.NotNil(t, d.AuthorizedBy())
		assert.True(t, d.AuthorizedBy().IsEqual(authorizer))
		assert.False(t, d.IsPartiallyAuthorized())

		require.Len(t, d.History(), 2)
		assert.Equal(t, "checked against request", d.History()[1].Notes())
	})

	t.Run("creator cannot authorize own delivery", func(t *testing.T) {
		creator := kernel.NewUUID()
		d := newTestDelivery(t, creator)

		err := d.Authorize(creator, "", nil, time.Now())

		require.ErrorIs(t, err, delivery.ErrSegregationViolated)

		var segErr *delivery.SegregationViolationError
		require.ErrorAs(t, err, &segErr)
		require.Len(t, segErr.Violations, 1)
		assert.Equal(t, "authorizer cannot equal creator", segErr.Violations[0].Rule)
		assert.Equal(t, delivery.PendingAuthorization, d.Status())
		assert.Len(t, d.History(), 1)
	})

	t.Run("should record partial authorization quantities", func(t *testing.T) {
		productID := kernel.NewUUID()
		d := newTestDelivery(t, kernel.NewUUID(), productLine(t, productID, 10))

		err := d.Authorize(kernel.NewUUID(), "", map[kernel.UUID]kernel.Quantity{
			productID: qty(t, 4),
		}, time.Now())

		require.NoError(t, err)
		assert.True(t, d.IsPartiallyAuthorized())
		line := d.Lines()[0]
		require.NotNil(t, line.AuthorizedQuantity())
		assert.Equal(t, 4, line.AuthorizedQuantity().Value())
		assert.Equal(t, 4, line.EffectiveQuantity().Value())
		assert.Equal(t, 10, line.Quantity().Value())
	})

	t.Run("partial quantity above the line quantity is rejected", func(t *testing.T) {
		productID := kernel.NewUUID()
		d := newTestDelivery(t, kernel.NewUUID(), productLine(t, productID, 10))

		err := d.Authorize(kernel.NewUUID(), "", map[kernel.UUID]kernel.Quantity{
			productID: qty(t, 11),
		}, time.Now())

		require.Error(t, err)
		assert.Equal(t, delivery.PendingAuthorization, d.Status())
	})

	t.Run("partial quantity for an unknown line is rejected", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())

		err := d.Authorize(kernel.NewUUID(), "", map[kernel.UUID]kernel.Quantity{
			kernel.NewUUID(): qty(t, 1),
		}, time.Now())

		require.Error(t, err)
	})

	t.Run("authorizing twice is an invalid transition", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, d.Authorize(kernel.NewUUID(), "", nil, time.Now()))

		err := d.Authorize(kernel.NewUUID(), "", nil, time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
		assert.Len(t, d.History(), 2)
	})
}

func TestDelivery_WarehouseSteps(t *testing.T) {
	t.Run("authorizer cannot receive at warehouse", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		authorizer := kernel.NewUUID()
		require.NoError(t, d.Authorize(authorizer, "", nil, time.Now()))

		err := d.ReceiveAtWarehouse(authorizer, "", time.Now())

		require.ErrorIs(t, err, delivery.ErrSegregationViolated)
		assert.Contains(t, err.Error(), "warehouse receiver cannot equal authorizer")
	})

	t.Run("authorizer cannot prepare", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		authorizer := kernel.NewUUID()
		require.NoError(t, d.Authorize(authorizer, "", nil, time.Now()))
		require.NoError(t, d.ReceiveAtWarehouse(kernel.NewUUID(), "", time.Now()))

		err := d.StartPreparation(authorizer, "", time.Now())

		require.ErrorIs(t, err, delivery.ErrSegregationViolated)
		assert.Contains(t, err.Error(), "preparer cannot equal authorizer")
	})

	t.Run("receive before authorization is an invalid transition", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())

		err := d.ReceiveAtWarehouse(kernel.NewUUID(), "", time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_MarkReady(t *testing.T) {
	t.Run("records draws per line and transitions to ready", func(t *testing.T) {
		productID := kernel.NewUUID()
		d := newTestDelivery(t, kernel.NewUUID(), productLine(t, productID, 5))
		authorizer, _, preparer := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		now := time.Now()
		require.NoError(t, d.Authorize(authorizer, "", nil, now))
		require.NoError(t, d.ReceiveAtWarehouse(kernel.NewUUID(), "", now))
		require.NoError(t, d.StartPreparation(preparer, "", now))

		lotID := kernel.NewUUID()
		draw, err := delivery.NewLotDraw(lotID, productID, qty(t, 5))
		require.NoError(t, err)

		err = d.MarkReady(preparer, map[kernel.UUID][]delivery.LotDraw{
			productID: {draw},
		}, now)

		require.NoError(t, err)
		assert.Equal(t, delivery.Ready, d.Status())
		require.Len(t, d.Draws(), 1)
		assert.True(t, d.Draws()[0].LotID().IsEqual(lotID))
	})

	t.Run("a line without allocation is rejected", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		now := time.Now()
		require.NoError(t, d.Authorize(kernel.NewUUID(), "", nil, now))
		require.NoError(t, d.ReceiveAtWarehouse(kernel.NewUUID(), "", now))
		require.NoError(t, d.StartPreparation(kernel.NewUUID(), "", now))

		err := d.MarkReady(kernel.NewUUID(), nil, now)

		require.Error(t, err)
		assert.Equal(t, delivery.InPreparation, d.Status())
	})

	t.Run("marking ready twice is an invalid transition", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		advanceToReady(t, d)

		draws := map[kernel.UUID][]delivery.LotDraw{}
		for _, line := range d.Lines() {
			draw, err := delivery.NewLotDraw(kernel.NewUUID(), line.Ref(), line.EffectiveQuantity())
			require.NoError(t, err)
			draws[line.Ref()] = []delivery.LotDraw{draw}
		}

		err := d.MarkReady(kernel.NewUUID(), draws, time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_Deliver(t *testing.T) {
	receiverIdentity := func(t *testing.T) delivery.Receiver {
		t.Helper()
		r, err := delivery.NewReceiver("Maria Lopez", "CC-1042")
		require.NoError(t, err)
		return r
	}

	t.Run("completes handoff with an independent actor", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		advanceToReady(t, d)
		deliverer := kernel.NewUUID()

		err := d.Deliver(deliverer, receiverIdentity(t), "", time.Now())

		require.NoError(t, err)
		assert.Equal(t, delivery.Delivered, d.Status())
		require.NotNil(t, d.DeliveredBy())
		assert.True(t, d.DeliveredBy().IsEqual(deliverer))
		require.NotNil(t, d.Receiver())
		assert.Equal(t, "Maria Lopez", d.Receiver().Name())
	})

	t.Run("authorizer and preparer are both rejected with full violation list", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		authorizer, _, preparer := advanceToReady(t, d)

		err := d.Deliver(authorizer, receiverIdentity(t), "", time.Now())
		require.ErrorIs(t, err, delivery.ErrSegregationViolated)
		assert.Contains(t, err.Error(), "deliverer cannot equal authorizer")

		err = d.Deliver(preparer, receiverIdentity(t), "", time.Now())
		require.ErrorIs(t, err, delivery.ErrSegregationViolated)
		assert.Contains(t, err.Error(), "deliverer cannot equal preparer")
	})

	t.Run("missing receiver identity never constructs", func(t *testing.T) {
		_, err := delivery.NewReceiver("", "CC-1")
		require.Error(t, err)

		_, err = delivery.NewReceiver("Maria", "")
		require.Error(t, err)
	})

	t.Run("deliver before ready is an invalid transition", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())

		err := d.Deliver(kernel.NewUUID(), receiverIdentity(t), "", time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_Cancel(t *testing.T) {
	t.Run("cancellation requires a reason", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())

		err := d.Cancel(kernel.NewUUID(), "", time.Now())

		require.Error(t, err)
		assert.Contains(t, err.Error(), "cancel reason")
	})

	t.Run("cancellation is terminal but not a deletion", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())

		err := d.Cancel(kernel.NewUUID(), "beneficiary relocated", time.Now())

		require.NoError(t, err)
		assert.Equal(t, delivery.Cancelled, d.Status())
		assert.Equal(t, "beneficiary relocated", d.CancelReason())
		assert.Len(t, d.History(), 2)
	})

	t.Run("a delivered delivery cannot be cancelled", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		advanceToReady(t, d)
		r, err := delivery.NewReceiver("Maria Lopez", "CC-1042")
		require.NoError(t, err)
		require.NoError(t, d.Deliver(kernel.NewUUID(), r, "", time.Now()))

		err = d.Cancel(kernel.NewUUID(), "too late", time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})

	t.Run("a cancelled delivery cannot advance", func(t *testing.T) {
		d := newTestDelivery(t, kernel.NewUUID())
		require.NoError(t, d.Cancel(kernel.NewUUID(), "duplicate entry", time.Now()))

		err := d.Authorize(kernel.NewUUID(), "", nil, time.Now())

		require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	})
}

func TestDelivery_HistoryFormsAPath(t *testing.T) {
	d := newTestDelivery(t, kernel.NewUUID())
	advanceToReady(t, d)
	r, err := delivery.NewReceiver("Maria Lopez", "CC-1042")
	require.NoError(t, err)
	require.NoError(t, d.Deliver(kernel.NewUUID(), r, "", time.Now()))

	history := d.History()
	require.Len(t, history, 6)

	assert.Equal(t, delivery.Unknown, history[0].FromStatus())
	for i := 1; i < len(history); i++ {
		// each entry continues exactly where the previous one ended
		assert.Equal(t, history[i-1].ToStatus(), history[i].FromStatus())
		assert.True(t, history[i-1].FromStatus().CanTransitionTo(history[i-1].ToStatus()) ||
			history[i-1].FromStatus() == delivery.Unknown)
	}
	assert.Equal(t, delivery.Delivered, history[len(history)-1].ToStatus())
}

func TestDelivery_DeliveredQuantities(t *testing.T) {
	productA := kernel.NewUUID()
	productB := kernel.NewUUID()
	d := newTestDelivery(t, kernel.NewUUID(),
		productLine(t, productA, 10),
		productLine(t, productB, 3),
	)

	require.NoError(t, d.Authorize(kernel.NewUUID(), "", map[kernel.UUID]kernel.Quantity{
		productA: qty(t, 6),
	}, time.Now()))

	quantities := d.DeliveredQuantities()

	require.Len(t, quantities, 2)
	assert.Equal(t, 6, quantities[productA].Value())
	assert.Equal(t, 3, quantities[productB].Value())
}
