package commands

import (
	"context"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/ports"
)

// CompleteDeliveryCommandHandler completes the physical handoff of a ready
// delivery and applies the delivered quantities to the owning request, all
// in one transaction. The aggregate rejects the authorizer and the preparer
// as delivering actors.
type CompleteDeliveryCommandHandler struct {
	uowFactory FulfillmentUoWFactory
	publisher  ports.EventPublisher
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion operations.
func NewCompleteDeliveryCommandHandler(
	uowFactory FulfillmentUoWFactory,
	publisher ports.EventPublisher,
) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the completion command. The owning request moves to
// Delivered when every line is fully delivered, PartiallyDelivered
// otherwise.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	receiver, err := delivery.NewReceiver(cmd.ReceiverName(), cmd.ReceiverDocument())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	requestRepo := uow.RequestRepository()

	aggregate, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	now := time.Now()
	if err = aggregate.Deliver(cmd.ActorID(), receiver, cmd.Notes(), now); err != nil {
		auditSegregation(ctx, h.publisher, aggregate, "deliver", err, now)
		return err
	}

	aidRequest, err := requestRepo.Get(ctx, aggregate.RequestID())
	if err != nil {
		return err
	}
	if err = aidRequest.ApplyDelivery(aggregate.DeliveredQuantities()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, aggregate); err != nil {
		return err
	}
	if err = requestRepo.Update(ctx, aidRequest); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishLastTransition(ctx, h.publisher, aggregate)
	return nil
}
