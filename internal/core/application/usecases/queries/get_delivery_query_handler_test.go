package queries_test

import (
	"context"
	"testing"
	"time"

	"aiddelivery/internal/adapters/out/postgres/deliveryrepo"
	"aiddelivery/internal/core/application/usecases/queries"
	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker is a no-op tracker for seeding test data through the
// repositories.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ interface{}) {}

type GetDeliveryQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetDeliveryQueryHandler
	deliveryRepo *deliveryrepo.GormDeliveryRepository
}

func (suite *GetDeliveryQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.LineDTO{},
		&deliveryrepo.LotDrawDTO{},
		&deliveryrepo.HistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.handler = queries.NewGetDeliveryQueryHandler(db)
	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, &mockAggregateTracker{})
}

func (suite *GetDeliveryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetDeliveryQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, delivery_lines, lot_draws, delivery_history").Error
	suite.Require().NoError(err)
}

func (suite *GetDeliveryQueryHandlerTestSuite) TestHandle_PendingDelivery_ReturnsReadModel() {
	ctx := context.Background()

	aggregate := suite.seedPendingDelivery(kernel.NewUUID())

	query, err := queries.NewGetDeliveryQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(aggregate.ID()))
	suite.Equal(aggregate.Code(), result.Code)
	suite.True(result.RequestID.IsEqual(aggregate.RequestID()))
	suite.Equal("PendingAuthorization", result.Status)
	suite.True(result.CreatedBy.IsEqual(aggregate.CreatedBy()))
	suite.Nil(result.AuthorizedBy)
	suite.Nil(result.DeliveredBy)
	suite.False(result.PartialAuthorization)
	suite.Empty(result.ReceiverName)
	suite.Empty(result.CancelReason)

	suite.Require().Len(result.Lines, 1)
	suite.Equal(5, result.Lines[0].Quantity)
	suite.Nil(result.Lines[0].AuthorizedQuantity)
	suite.Nil(result.Lines[0].KitID)
	suite.Empty(result.Lines[0].Draws)

	suite.Require().Len(result.History, 1)
	suite.Equal("Unknown", result.History[0].FromStatus)
	suite.Equal("PendingAuthorization", result.History[0].ToStatus)
}

func (suite *GetDeliveryQueryHandlerTestSuite) TestHandle_DeliveredDelivery_IncludesActorsDrawsAndHistory() {
	ctx := context.Background()

	productID := kernel.NewUUID()
	aggregate := suite.seedPendingDelivery(productID)

	now := time.Now()
	authorizer := kernel.NewUUID()
	partial, err := kernel.NewPositiveQuantity(4)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Authorize(authorizer, "reduced",
		map[kernel.UUID]kernel.Quantity{productID: partial}, now))
	suite.Require().NoError(aggregate.ReceiveAtWarehouse(kernel.NewUUID(), "", now))
	suite.Require().NoError(aggregate.StartPreparation(kernel.NewUUID(), "", now))

	lotID := kernel.NewUUID()
	draw, err := delivery.NewLotDraw(lotID, productID, partial)
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.MarkReady(kernel.NewUUID(),
		map[kernel.UUID][]delivery.LotDraw{productID: {draw}}, now))

	receiver, err := delivery.NewReceiver("Maria Lopez", "CC-1042")
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.Deliver(kernel.NewUUID(), receiver, "handed over", now))
	suite.Require().NoError(suite.deliveryRepo.Update(ctx, aggregate))

	query, err := queries.NewGetDeliveryQuery(aggregate.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal("Delivered", result.Status)
	suite.Require().NotNil(result.AuthorizedBy)
	suite.True(result.AuthorizedBy.IsEqual(authorizer))
	suite.NotNil(result.WarehouseReceivedBy)
	suite.NotNil(result.PreparedBy)
	suite.NotNil(result.DeliveredBy)
	suite.True(result.PartialAuthorization)
	suite.Equal("Maria Lopez", result.ReceiverName)
	suite.Equal("CC-1042", result.ReceiverDocument)

	suite.Require().Len(result.Lines, 1)
	suite.Require().NotNil(result.Lines[0].AuthorizedQuantity)
	suite.Equal(4, *result.Lines[0].AuthorizedQuantity)
	suite.Require().Len(result.Lines[0].Draws, 1)
	suite.True(result.Lines[0].Draws[0].LotID.IsEqual(lotID))
	suite.Equal(4, result.Lines[0].Draws[0].Quantity)

	suite.Require().Len(result.History, 6)
	suite.Equal("PendingAuthorization", result.History[0].ToStatus)
	suite.Equal("Delivered", result.History[5].ToStatus)
	suite.Equal("reduced", result.History[1].Notes)
}

func (suite *GetDeliveryQueryHandlerTestSuite) TestHandle_NonExistentDelivery_ReturnsNotFoundError() {
	query, err := queries.NewGetDeliveryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetDeliveryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetDeliveryQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetDeliveryQuery constructor")
}

// seedPendingDelivery persists a delivery with one product line of five units.
func (suite *GetDeliveryQueryHandlerTestSuite) seedPendingDelivery(productID kernel.UUID) *delivery.Delivery {
	quantity, err := kernel.NewPositiveQuantity(5)
	suite.Require().NoError(err)
	line, err := delivery.NewProductLineItem(productID, quantity)
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	aggregate, err := delivery.NewDelivery(
		id, "DLV-"+id.String()[:8], kernel.NewUUID(), kernel.NewUUID(),
		[]*delivery.LineItem{line}, time.Now())
	suite.Require().NoError(err)

	suite.Require().NoError(suite.deliveryRepo.Add(context.Background(), aggregate))
	return aggregate
}

func TestGetDeliveryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetDeliveryQueryHandlerTestSuite))
}
