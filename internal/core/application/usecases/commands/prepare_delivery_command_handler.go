package commands

import (
	"context"
	"time"

	"aiddelivery/internal/core/ports"
)

// PrepareDeliveryCommandHandler starts the preparation of a delivery held in
// warehouse custody. The aggregate rejects the authorizer preparing what
// they approved.
type PrepareDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewPrepareDeliveryCommandHandler creates a handler for preparation
// operations.
func NewPrepareDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) PrepareDeliveryCommandHandler {
	return PrepareDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the preparation command.
func (h PrepareDeliveryCommandHandler) Handle(ctx context.Context, cmd PrepareDeliveryCommand) error {
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
	if err = aggregate.StartPreparation(cmd.ActorID(), cmd.Notes(), now); err != nil {
		auditSegregation(ctx, h.publisher, aggregate, "prepare", err, now)
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
