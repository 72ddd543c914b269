package commands_test

import (
	"context"
	"testing"
	"time"

	"aiddelivery/internal/core/application/usecases/commands"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/kit"
	"aiddelivery/internal/core/domain/model/request"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Shared testify mocks for the repository ports and unit of work variants.
// Each handler test wires only the expectations its flow touches.

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

func (m *MockDeliveryRepository) GetOpenByRequestID(ctx context.Context, requestID kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Delivery), args.Error(1)
}

type MockLotRepository struct{ mock.Mock }

func (m *MockLotRepository) Add(ctx context.Context, lot *stock.ProductLot) error {
	args := m.Called(ctx, lot)
	return args.Error(0)
}

func (m *MockLotRepository) Get(ctx context.Context, id kernel.UUID) (*stock.ProductLot, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*stock.ProductLot), args.Error(1)
}

func (m *MockLotRepository) GetActiveByProduct(ctx context.Context, productID kernel.UUID) ([]*stock.ProductLot, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.ProductLot), args.Error(1)
}

func (m *MockLotRepository) Decrement(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockLotRepository) Increment(ctx context.Context, id kernel.UUID, quantity kernel.Quantity) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

type MockMovementRepository struct{ mock.Mock }

func (m *MockMovementRepository) Add(ctx context.Context, movement *stock.Movement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) ListByReference(
	ctx context.Context, reference kernel.UUID, movementType stock.MovementType,
) ([]*stock.Movement, error) {
	args := m.Called(ctx, reference, movementType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*stock.Movement), args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) Get(ctx context.Context, id kernel.UUID) (*request.Request, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*request.Request), args.Error(1)
}

func (m *MockRequestRepository) Update(ctx context.Context, aggregate *request.Request) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

type MockKitRepository struct{ mock.Mock }

func (m *MockKitRepository) Get(ctx context.Context, id kernel.UUID) (*kit.Kit, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*kit.Kit), args.Error(1)
}

// MockUoW satisfies every unit of work variant used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) LotRepository() ports.LotRepository {
	args := m.Called()
	return args.Get(0).(ports.LotRepository)
}

func (m *MockUoW) MovementRepository() ports.MovementRepository {
	args := m.Called()
	return args.Get(0).(ports.MovementRepository)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) KitRepository() ports.KitRepository {
	args := m.Called()
	return args.Get(0).(ports.KitRepository)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockCreationUoWFactory struct{ mock.Mock }

func (m *MockCreationUoWFactory) Create() commands.CreationUoW {
	args := m.Called()
	return args.Get(0).(commands.CreationUoW)
}

type MockAllocationUoWFactory struct{ mock.Mock }

func (m *MockAllocationUoWFactory) Create() commands.AllocationUoW {
	args := m.Called()
	return args.Get(0).(commands.AllocationUoW)
}

type MockFulfillmentUoWFactory struct{ mock.Mock }

func (m *MockFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	args := m.Called()
	return args.Get(0).(commands.FulfillmentUoW)
}

type MockCancellationUoWFactory struct{ mock.Mock }

func (m *MockCancellationUoWFactory) Create() commands.CancellationUoW {
	args := m.Called()
	return args.Get(0).(commands.CancellationUoW)
}

// MockEventPublisher records published events without expectations; event
// publishing is fire-and-forget and never fails a handler.
type MockEventPublisher struct {
	Transitions []ports.TransitionEvent
	Audits      []ports.AuditEvent
}

func (m *MockEventPublisher) PublishTransition(_ context.Context, event ports.TransitionEvent) {
	m.Transitions = append(m.Transitions, event)
}

func (m *MockEventPublisher) PublishAudit(_ context.Context, event ports.AuditEvent) {
	m.Audits = append(m.Audits, event)
}

// Test data helpers shared across the handler tests.

func mustQuantity(t *testing.T, v int) kernel.Quantity {
	t.Helper()
	q, err := kernel.NewQuantity(v)
	require.NoError(t, err)
	return q
}

func testProductLine(t *testing.T, productID kernel.UUID, quantity int) *delivery.LineItem {
	t.Helper()
	line, err := delivery.NewProductLineItem(productID, mustQuantity(t, quantity))
	require.NoError(t, err)
	return line
}

func testDelivery(t *testing.T, status delivery.Status, lines ...*delivery.LineItem) *delivery.Delivery {
	t.Helper()
	if len(lines) == 0 {
		lines = []*delivery.LineItem{testProductLine(t, kernel.NewUUID(), 5)}
	}

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), "DLV-TEST", kernel.NewUUID(), kernel.NewUUID(), lines, time.Now())
	require.NoError(t, err)

	now := time.Now()
	if status == delivery.PendingAuthorization {
		return d
	}
	require.NoError(t, d.Authorize(kernel.NewUUID(), "", nil, now))
	if status == delivery.Authorized {
		return d
	}
	require.NoError(t, d.ReceiveAtWarehouse(kernel.NewUUID(), "", now))
	if status == delivery.ReceivedWarehouse {
		return d
	}
	require.NoError(t, d.StartPreparation(kernel.NewUUID(), "", now))
	if status == delivery.InPreparation {
		return d
	}

	draws := make(map[kernel.UUID][]delivery.LotDraw)
	for _, line := range d.Lines() {
		draw, err := delivery.NewLotDraw(kernel.NewUUID(), line.Ref(), line.EffectiveQuantity())
		require.NoError(t, err)
		draws[line.Ref()] = []delivery.LotDraw{draw}
	}
	require.NoError(t, d.MarkReady(kernel.NewUUID(), draws, now))
	require.Equal(t, delivery.Ready, status, "unsupported target status")
	return d
}

func testApprovedRequest(t *testing.T, id kernel.UUID, productID kernel.UUID, requested, delivered int) *request.Request {
	t.Helper()
	line, err := request.RestoreLine(&productID, nil, mustQuantity(t, requested), mustQuantity(t, delivered))
	require.NoError(t, err)
	r, err := request.RestoreRequest(id, request.Approved, []*request.Line{line}, 0)
	require.NoError(t, err)
	return r
}
