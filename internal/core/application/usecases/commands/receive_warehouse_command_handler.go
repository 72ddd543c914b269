package commands

import (
	"context"
	"time"

	"aiddelivery/internal/core/ports"
)

// ReceiveWarehouseCommandHandler records warehouse custody of an authorized
// delivery. The aggregate rejects the authorizer taking custody of what they
// approved.
type ReceiveWarehouseCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewReceiveWarehouseCommandHandler creates a handler for warehouse custody
// operations.
func NewReceiveWarehouseCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) ReceiveWarehouseCommandHandler {
	return ReceiveWarehouseCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the warehouse custody command.
func (h ReceiveWarehouseCommandHandler) Handle(ctx context.Context, cmd ReceiveWarehouseCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.ReceiveAtWarehouse(cmd.ActorID(), cmd.Notes(), now); err != nil {
		auditSegregation(ctx, h.publisher, aggregate, "receiveWarehouse", err, now)
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishLastTransition(ctx, h.publisher, aggregate)
	return nil
}
