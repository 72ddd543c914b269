package cmd

import (
	"log/slog"

	"aiddelivery/internal/adapters/out/eventlog"
	"aiddelivery/internal/adapters/out/postgres"
	"aiddelivery/internal/core/application/usecases/commands"
	"aiddelivery/internal/core/application/usecases/queries"
	"aiddelivery/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.EventPublisher
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  eventlog.NewSlogEventPublisher(logger),
	}
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.CreationUoWFactory = FuncCreationUoWFactory(func() commands.CreationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateAuthorizeDeliveryCommandHandler() commands.AuthorizeDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAuthorizeDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateReceiveWarehouseCommandHandler() commands.ReceiveWarehouseCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReceiveWarehouseCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreatePrepareDeliveryCommandHandler() commands.PrepareDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPrepareDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateMarkReadyCommandHandler() commands.MarkReadyCommandHandler {
	var f commands.AllocationUoWFactory = FuncAllocationUoWFactory(func() commands.AllocationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkReadyCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateCancelDeliveryCommandHandler() commands.CancelDeliveryCommandHandler {
	var f commands.CancellationUoWFactory = FuncCancellationUoWFactory(func() commands.CancellationUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelDeliveryCommandHandler(f, c.publisher)
}

func (c *CompositionRoot) CreateGetDeliveryQueryHandler() queries.GetDeliveryQueryHandler {
	return queries.NewGetDeliveryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStockMovementsQueryHandler() queries.ListStockMovementsQueryHandler {
	return queries.NewListStockMovementsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListPendingAuthorizationsQueryHandler() queries.ListPendingAuthorizationsQueryHandler {
	return queries.NewListPendingAuthorizationsQueryHandler(c.gormDB)
}

type FuncCreationUoWFactory func() commands.CreationUoW

func (f FuncCreationUoWFactory) Create() commands.CreationUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncAllocationUoWFactory func() commands.AllocationUoW

func (f FuncAllocationUoWFactory) Create() commands.AllocationUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncCancellationUoWFactory func() commands.CancellationUoW

func (f FuncCancellationUoWFactory) Create() commands.CancellationUoW {
	return f()
}
