package commands

import (
	"context"
	"fmt"
	"time"

	"aiddelivery/internal/core/domain/model/delivery"
	"aiddelivery/internal/core/domain/model/kernel"
	"aiddelivery/internal/core/domain/model/stock"
	"aiddelivery/internal/core/domain/services"
	"aiddelivery/internal/core/ports"
)

// MarkReadyCommandHandler allocates stock to a delivery in preparation and
// moves it to Ready.
//
// The whole allocation is one transaction: reading the lots, decrementing
// them, appending the EXIT ledger entries, and the delivery's own transition
// commit or roll back together. Lot decrements are conditional in storage,
// so a concurrent allocation that consumed the same units surfaces as a
// ConflictError and the transaction rolls back without overselling.
//
// Kit lines are expanded into their component product demands before
// allocation; the resulting draws are recorded under the kit line.
type MarkReadyCommandHandler struct {
	uowFactory AllocationUoWFactory
	publisher  ports.EventPublisher
	allocator  services.LotAllocator
	expander   services.KitExpander
}

// NewMarkReadyCommandHandler creates a handler for stock allocation
// operations.
func NewMarkReadyCommandHandler(
	uowFactory AllocationUoWFactory,
	publisher ports.EventPublisher,
) MarkReadyCommandHandler {
	return MarkReadyCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		allocator:  services.NewLotAllocator(),
		expander:   services.NewKitExpander(),
	}
}

// Handle processes the allocation command. Fails without writing anything
// when any product's availability cannot cover its demand
// (InsufficientStockError reports the shortfall). A delivery that cannot
// move to Ready is rejected before any lot is read, so retrying an already
// allocated delivery reports the invalid transition, not whatever the lots
// look like after the first allocation.
func (h MarkReadyCommandHandler) Handle(ctx context.Context, cmd MarkReadyCommand) error {
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
	if !aggregate.Status().CanTransitionTo(delivery.Ready) {
		return delivery.NewInvalidTransitionError(aggregate.Status(), delivery.Ready)
	}

	now := time.Now()
	drawsByLine, err := h.allocateLines(ctx, uow, aggregate, cmd.ActorID(), now)
	if err != nil {
		return err
	}

	if err = aggregate.MarkReady(cmd.ActorID(), drawsByLine, now); err != nil {
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

// allocateLines plans and persists the FEFO allocation for every line,
// returning the draws keyed by line reference.
func (h MarkReadyCommandHandler) allocateLines(
	ctx context.Context,
	uow AllocationUoW,
	aggregate *delivery.Delivery,
	actor kernel.UUID,
	now time.Time,
) (map[kernel.UUID][]delivery.LotDraw, error) {
	drawsByLine := make(map[kernel.UUID][]delivery.LotDraw, len(aggregate.Lines()))

	for _, line := range aggregate.Lines() {
		demands, err := h.lineDemands(ctx, uow, line)
		if err != nil {
			return nil, err
		}

		for _, demand := range demands {
			draws, err := h.allocateDemand(ctx, uow, aggregate, demand, actor, now)
			if err != nil {
				return nil, err
			}
			drawsByLine[line.Ref()] = append(drawsByLine[line.Ref()], draws...)
		}
	}

	return drawsByLine, nil
}

// lineDemands maps a line onto the product demands its allocation requires.
// Product lines demand themselves; kit lines expand into their components.
func (h MarkReadyCommandHandler) lineDemands(
	ctx context.Context,
	uow AllocationUoW,
	line *delivery.LineItem,
) ([]services.ProductDemand, error) {
	if !line.IsKit() {
		return []services.ProductDemand{{
			ProductID: *line.ProductID(),
			Quantity:  line.EffectiveQuantity(),
		}}, nil
	}

	aidKit, err := uow.KitRepository().Get(ctx, *line.KitID())
	if err != nil {
		return nil, err
	}

	return h.expander.Expand(aidKit, line.EffectiveQuantity())
}

// allocateDemand plans one product demand, applies the conditional lot
// decrements, and appends one EXIT ledger entry per lot touched.
func (h MarkReadyCommandHandler) allocateDemand(
	ctx context.Context,
	uow AllocationUoW,
	aggregate *delivery.Delivery,
	demand services.ProductDemand,
	actor kernel.UUID,
	now time.Time,
) ([]delivery.LotDraw, error) {
	lotRepo := uow.LotRepository()
	movementRepo := uow.MovementRepository()

	lots, err := lotRepo.GetActiveByProduct(ctx, demand.ProductID)
	if err != nil {
		return nil, err
	}

	plan, err := h.allocator.Allocate(demand.ProductID, lots, demand.Quantity)
	if err != nil {
		return nil, err
	}

	deliveryID := aggregate.ID()
	draws := make([]delivery.LotDraw, 0, len(plan))
	for _, allocation := range plan {
		if err = lotRepo.Decrement(ctx, allocation.LotID, allocation.Quantity); err != nil {
			return nil, err
		}

		movement, err := stock.NewMovement(
			kernel.NewUUID(),
			allocation.ProductID,
			allocation.LotID,
			stock.Exit,
			-allocation.Quantity.Value(),
			fmt.Sprintf("allocation for delivery %s", aggregate.Code()),
			&deliveryID,
			actor,
			now,
		)
		if err != nil {
			return nil, err
		}
		if err = movementRepo.Add(ctx, movement); err != nil {
			return nil, err
		}

		draw, err := delivery.NewLotDraw(allocation.LotID, allocation.ProductID, allocation.Quantity)
		if err != nil {
			return nil, err
		}
		draws = append(draws, draw)
	}

	return draws, nil
}
