package commands_test

import (
	"testing"
	"time"

	"aiddelivery/internal/core/application/usecases/commands"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"
	"aiddelivery/internal/core/domain/model/stock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLot(t *testing.T, productID kernel.UUID, quantity int, expiresAt *time.Time) *stock.ProductLot {
	t.Helper()
	lot, err := stock.NewProductLot(
		kernel.NewUUID(), productID, "LOT-TEST", mustQuantity(t, quantity), expiresAt, time.Now())
	require.NoError(t, err)
	return lot
}

func TestMarkReadyCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	inPreparation := testDelivery(t, delivery.InPreparation, testProductLine(t, productID, 5))
	cmd, err := commands.NewMarkReadyCommand(inPreparation.ID(), kernel.NewUUID())
	require.NoError(t, err)

	soon := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	later := time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC)
	lotA := testLot(t, productID, 3, &soon)
	lotB := testLot(t, productID, 10, &later)

	deliveryRepo := new(MockDeliveryRepository)
	lotRepo := new(MockLotRepository)
	movementRepo := new(MockMovementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, inPreparation.ID()).Return(inPreparation, nil).Once(),
		uow.On("LotRepository").Return(lotRepo).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		lotRepo.On("GetActiveByProduct", ctx, productID).
			Return([]*stock.ProductLot{lotA, lotB}, nil).Once(),
		lotRepo.On("Decrement", ctx, lotA.ID(), mustQuantity(t, 3)).Return(nil).Once(),
		movementRepo.On("Add", ctx, mock.AnythingOfType("*stock.Movement")).Return(nil).Once(),
		lotRepo.On("Decrement", ctx, lotB.ID(), mustQuantity(t, 2)).Return(nil).Once(),
		movementRepo.On("Add", ctx, mock.AnythingOfType("*stock.Movement")).Return(nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	publisher := new(MockEventPublisher)
	handler := commands.NewMarkReadyCommandHandler(factory, publisher)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Ready, inPreparation.Status())
	require.Len(t, inPreparation.Draws(), 2)
	lotRepo.AssertExpectations(t)
	movementRepo.AssertExpectations(t)

	// every ledger entry is a negative EXIT referencing the delivery
	for _, call := range movementRepo.Calls {
		movement := call.Arguments[1].(*stock.Movement)
		assert.Equal(t, stock.Exit, movement.Type())
		assert.Negative(t, movement.Quantity())
		require.NotNil(t, movement.Reference())
		assert.True(t, movement.Reference().IsEqual(inPreparation.ID()))
	}

	require.Len(t, publisher.Transitions, 1)
	assert.Equal(t, delivery.Ready, publisher.Transitions[0].To)
}

func TestMarkReadyCommandHandler_Handle_KitLineExpanded(t *testing.T) {
	ctx := t.Context()

	componentID := kernel.NewUUID()
	kitID := kernel.NewUUID()
	component, err := kit.NewComponent(componentID, mustQuantity(t, 3))
	require.NoError(t, err)
	hygieneKit, err := kit.NewKit(kitID, "hygiene kit", []kit.Component{component})
	require.NoError(t, err)

	kitLine, err := delivery.NewKitLineItem(kitID, mustQuantity(t, 2))
	require.NoError(t, err)
	inPreparation := testDelivery(t, delivery.InPreparation, kitLine)

	cmd, err := commands.NewMarkReadyCommand(inPreparation.ID(), kernel.NewUUID())
	require.NoError(t, err)

	lot := testLot(t, componentID, 10, nil)

	deliveryRepo := new(MockDeliveryRepository)
	lotRepo := new(MockLotRepository)
	movementRepo := new(MockMovementRepository)
	kitRepo := new(MockKitRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, inPreparation.ID()).Return(inPreparation, nil).Once(),
		uow.On("KitRepository").Return(kitRepo).Once(),
		kitRepo.On("Get", ctx, kitID).Return(hygieneKit, nil).Once(),
		uow.On("LotRepository").Return(lotRepo).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		lotRepo.On("GetActiveByProduct", ctx, componentID).
			Return([]*stock.ProductLot{lot}, nil).Once(),
		lotRepo.On("Decrement", ctx, lot.ID(), mustQuantity(t, 6)).Return(nil).Once(),
		movementRepo.On("Add", ctx, mock.AnythingOfType("*stock.Movement")).Return(nil).Once(),
		deliveryRepo.On("Update", ctx, mock.AnythingOfType("*delivery.Delivery")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, delivery.Ready, inPreparation.Status())

	// two kits of three units each draw six units of the component
	draws := inPreparation.Draws()
	require.Len(t, draws, 1)
	assert.True(t, draws[0].ProductID().IsEqual(componentID))
	assert.Equal(t, 6, draws[0].Quantity().Value())
}

func TestMarkReadyCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	inPreparation := testDelivery(t, delivery.InPreparation, testProductLine(t, productID, 5))
	cmd, err := commands.NewMarkReadyCommand(inPreparation.ID(), kernel.NewUUID())
	require.NoError(t, err)

	lot := testLot(t, productID, 4, nil)

	deliveryRepo := new(MockDeliveryRepository)
	lotRepo := new(MockLotRepository)
	movementRepo := new(MockMovementRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, inPreparation.ID()).Return(inPreparation, nil).Once(),
		uow.On("LotRepository").Return(lotRepo).Once(),
		uow.On("MovementRepository").Return(movementRepo).Once(),
		lotRepo.On("GetActiveByProduct", ctx, productID).
			Return([]*stock.ProductLot{lot}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, stock.ErrInsufficientStock)
	assert.Equal(t, delivery.InPreparation, inPreparation.Status())
	lotRepo.AssertNotCalled(t, "Decrement")
	movementRepo.AssertNotCalled(t, "Add")
	deliveryRepo.AssertNotCalled(t, "Update")

	var stockErr *stock.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, 1, stockErr.Shortfall())
}

func TestMarkReadyCommandHandler_Handle_NotInPreparation(t *testing.T) {
	ctx := t.Context()

	productID := kernel.NewUUID()
	authorized := testDelivery(t, delivery.Authorized, testProductLine(t, productID, 5))
	cmd, err := commands.NewMarkReadyCommand(authorized.ID(), kernel.NewUUID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	lotRepo := new(MockLotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, authorized.ID()).Return(authorized, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	// rejected before any lot is touched
	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	lotRepo.AssertNotCalled(t, "GetActiveByProduct")
	lotRepo.AssertNotCalled(t, "Decrement")
	deliveryRepo.AssertNotCalled(t, "Update")
	uow.AssertNotCalled(t, "Commit")
}

func TestMarkReadyCommandHandler_Handle_RetryOnReadyDelivery(t *testing.T) {
	ctx := t.Context()

	// the first markReady drew the lots down to zero; a retry must report
	// the invalid transition, not the stock the first call consumed
	productID := kernel.NewUUID()
	ready := testDelivery(t, delivery.Ready, testProductLine(t, productID, 5))
	cmd, err := commands.NewMarkReadyCommand(ready.ID(), kernel.NewUUID())
	require.NoError(t, err)

	deliveryRepo := new(MockDeliveryRepository)
	lotRepo := new(MockLotRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("Get", ctx, ready.ID()).Return(ready, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockAllocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewMarkReadyCommandHandler(factory, new(MockEventPublisher))
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, delivery.ErrInvalidTransition)
	assert.NotErrorIs(t, err, stock.ErrInsufficientStock)

	var transitionErr *delivery.InvalidTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, delivery.Ready, transitionErr.From)
	assert.Equal(t, delivery.Ready, transitionErr.To)

	lotRepo.AssertNotCalled(t, "GetActiveByProduct")
	assert.Equal(t, delivery.Ready, ready.Status())
}
