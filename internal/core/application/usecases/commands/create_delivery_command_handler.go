package commands

import (
	"context"
	"errors"
	"strings"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/request"
	"aiddelivery/internal/core/ports"
	"aiddelivery/internal/pkg/errs"
)

var (
	// ErrRequestNotAcceptingDeliveries indicates the owning request is not in
	// a status that allows opening a new delivery.
	ErrRequestNotAcceptingDeliveries = errors.New("request is not accepting deliveries")

	// ErrRequestHasOpenDelivery indicates the owning request already has a
	// delivery in a non-terminal status.
	ErrRequestHasOpenDelivery = errors.New("request already has an open delivery")
)

// CreateDeliveryCommandHandler handles the business logic for opening a
// delivery against an approved aid request.
//
// Preconditions checked against the request:
//   - the request status accepts deliveries (approved or partially delivered)
//   - the request has no other open delivery
//   - every line quantity fits within the request's remaining quantities
type CreateDeliveryCommandHandler struct {
	uowFactory CreationUoWFactory
	publisher  ports.EventPublisher
}

// NewCreateDeliveryCommandHandler creates a handler for delivery creation.
// Requires a CreationUoWFactory for transactional persistence.
func NewCreateDeliveryCommandHandler(
	uowFactory CreationUoWFactory,
	publisher ports.EventPublisher,
) CreateDeliveryCommandHandler {
	return CreateDeliveryCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the delivery creation command.
// Creates the delivery in PendingAuthorization status with a generated
// delivery code. Uses a transaction so the request checks and the insert see
// one consistent state.
func (h CreateDeliveryCommandHandler) Handle(ctx context.Context, cmd CreateDeliveryCommand) error {
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

	requestRepo := uow.RequestRepository()
	deliveryRepo := uow.DeliveryRepository()

	aidRequest, err := requestRepo.Get(ctx, cmd.RequestID())
	if err != nil {
		return err
	}
	if !aidRequest.Status().CanAcceptDelivery() {
		return ErrRequestNotAcceptingDeliveries
	}

	_, err = deliveryRepo.GetOpenByRequestID(ctx, cmd.RequestID())
	switch {
	case err == nil:
		return ErrRequestHasOpenDelivery
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	lines, err := buildLineItems(aidRequest, cmd.Lines())
	if err != nil {
		return err
	}

	newDelivery, err := delivery.NewDelivery(
		cmd.DeliveryID(),
		generateDeliveryCode(cmd.DeliveryID()),
		cmd.RequestID(),
		cmd.ActorID(),
		lines,
		time.Now(),
	)
	if err != nil {
		return err
	}

	if err = deliveryRepo.Add(ctx, newDelivery); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	publishLastTransition(ctx, h.publisher, newDelivery)
	return nil
}

// buildLineItems maps the command lines onto domain line items, checking
// every quantity against the request's remaining quantities.
func buildLineItems(aidRequest *request.Request, inputs []LineInput) ([]*delivery.LineItem, error) {
	lines := make([]*delivery.LineItem, 0, len(inputs))
	for _, input := range inputs {
		quantity, err := kernel.NewPositiveQuantity(input.Quantity)
		if err != nil {
			return nil, err
		}

		var line *delivery.LineItem
		switch {
		case input.ProductID != nil && input.KitID == nil:
			line, err = delivery.NewProductLineItem(*input.ProductID, quantity)
		case input.KitID != nil && input.ProductID == nil:
			line, err = delivery.NewKitLineItem(*input.KitID, quantity)
		default:
			err = delivery.ErrLineItemReferenceIsAmbiguous
		}
		if err != nil {
			return nil, err
		}

		remaining := aidRequest.RemainingFor(line.Ref())
		if remaining.LessThan(quantity) {
			return nil, errs.NewValueIsOutOfRangeError(
				"line quantity", quantity.Value(), 1, remaining.Value())
		}

		lines = append(lines, line)
	}

	return lines, nil
}

// generateDeliveryCode derives the human-readable code from the delivery id.
func generateDeliveryCode(id kernel.UUID) string {
	return "DLV-" + strings.ToUpper(id.String()[:8])
}
