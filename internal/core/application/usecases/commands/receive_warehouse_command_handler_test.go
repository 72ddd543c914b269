package commands_test

import (
	"testing"

	"aiddelivery/internal/core/application/usecases/commands"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewReceiveWarehouseCommand(t *testing.T) {
	t.Run("should create command", func(t *testing.T) {
		cmd, err := commands.NewReceiveWarehouseCommand(kernel.NewUUID(), kernel.NewUUID(), "pallet 3")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "pallet 3", cmd.Notes())
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.ReceiveWarehouseCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrReceiveWarehouseCommandIsNotConstructed)
	})
}

func TestReceiveWarehouseCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	authorized := testDelivery(t, delivery.Authorized)
	cmd, err := commands.NewReceiveWarehouseCommand(authorized.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, authorized.ID()).Return(authorized, nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewReceiveWarehouseCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.ReceivedWarehouse, authorized.Status())
	deliveryRepo.AssertExpectations(t)
}

func TestReceiveWarehouseCommandHandler_Handle_AuthorizerRejected(t *testing.T) {
	ctx := t.Context()

	pending := testDelivery(t, delivery.PendingAuthorization)
	authorizer := kernel.NewUUID()
	require.NoError(t, pending.Authorize(authorizer, "", nil, pending.CreatedAt()))

	cmd, err := commands.NewReceiveWarehouseCommand(pending.ID(), authorizer, "")
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, pending.ID()).Return(pending, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	handler := commands.NewReceiveWarehouseCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrSegregationViolated)
	require.Len(t, publisher.Audits, 1)
	assert.Equal(t, "receiveWarehouse", publisher.Audits[0].Action)
}
