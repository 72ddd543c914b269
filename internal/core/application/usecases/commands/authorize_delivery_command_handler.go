package commands

import (
	"context"
	"time"

	"aiddelivery/internal/core/ports"
)

// AuthorizeDeliveryCommandHandler handles the approval of pending
// deliveries, including partial authorization of line quantities.
// Segregation of duties is enforced by the aggregate: the authorizing actor
// must not be the delivery's creator.
type AuthorizeDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	publisher  ports.EventPublisher
}

// NewAuthorizeDeliveryCommandHandler creates a handler for delivery
// authorization operations.
func NewAuthorizeDeliveryCommandHandler(
	uowFactory DeliveryUoWFactory,
	publisher ports.EventPublisher,
) AuthorizeDeliveryCommandHandler {
	return AuthorizeDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the authorization command. Rejected segregation attempts
// are published as audit events before the error is returned.
func (h AuthorizeDeliveryCommandHandler) Handle(ctx context.Context, cmd AuthorizeDeliveryCommand) error {
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
	if err = aggregate.Authorize(cmd.ActorID(), cmd.Notes(), cmd.PartialQuantities(), now); err != nil {
		auditSegregation(ctx, h.publisher, aggregate, "authorize", err, now)
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
