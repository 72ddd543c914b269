package commands

import (
	"context"
	"fmt"
	"time"

	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/core/ports"
)

// CancelDeliveryCommandHandler terminates a delivery from any non-terminal
// state. When stock was already drawn (the delivery reached Ready) the
// handler reverses every EXIT ledger entry of the delivery: each lot gets
// its units back and a RETURN entry is appended, in the same transaction as
// the cancellation itself. The delivery record is never deleted.
type CancelDeliveryCommandHandler struct {
	uowFactory CancellationUoWFactory
	publisher  ports.EventPublisher
}

// NewCancelDeliveryCommandHandler creates a handler for cancellation
// operations.
func NewCancelDeliveryCommandHandler(
	uowFactory CancellationUoWFactory,
	publisher ports.EventPublisher,
) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
func (h CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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
	if err = aggregate.Cancel(cmd.ActorID(), cmd.Reason(), now); err != nil {
		return err
	}

	if err = h.returnDrawnStock(ctx, uow, aggregate.ID(), aggregate.Code(), cmd.ActorID(), now); err != nil {
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

// returnDrawnStock reverses the delivery's EXIT movements: every drawn lot
// is incremented back and a RETURN ledger entry records the reversal. A
// delivery that never reached Ready has no EXIT movements and nothing to
// reverse.
func (h CancelDeliveryCommandHandler) returnDrawnStock(
	ctx context.Context,
	uow CancellationUoW,
	deliveryID kernel.UUID,
	code string,
	actor kernel.UUID,
	now time.Time,
) error {
	lotRepo := uow.LotRepository()
	movementRepo := uow.MovementRepository()

	exits, err := movementRepo.ListByReference(ctx, deliveryID, stock.Exit)
	if err != nil {
		return err
	}

	for _, exit := range exits {
		quantity, err := kernel.NewPositiveQuantity(-exit.Quantity())
		if err != nil {
			return err
		}

		if err = lotRepo.Increment(ctx, exit.LotID(), quantity); err != nil {
			return err
		}

		movement, err := stock.NewMovement(
			kernel.NewUUID(),
			exit.ProductID(),
			exit.LotID(),
			stock.Return,
			quantity.Value(),
			fmt.Sprintf("return for cancelled delivery %s", code),
			&deliveryID,
			actor,
			now,
		)
		if err != nil {
			return err
		}
		if err = movementRepo.Add(ctx, movement); err != nil {
			return err
		}
	}

	return nil
}
